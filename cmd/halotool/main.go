/*Command halotool evaluates analytic NFW halo profiles and generates Monte
Carlo realizations of radial particle positions within them.*/
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nehapjoshi/halotools/logging"
)

// Version is the semantic version of the source code.
const Version = "0.1.0"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "halotool",
	Short: "Analytic NFW halo profiles and Monte Carlo halo realizations",
	Long: `halotool evaluates dark-matter halo properties under the
Navarro-Frenk-White density profile (density, enclosed mass, circular
velocity, Vmax) and draws Monte Carlo radial positions from the profile's
mass distribution for building mock halo catalogs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.Mode = logging.Performance
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("halotool version %s (%s)\n", Version, runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", "", "YAML cosmology file (default Planck15)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "report timing and memory usage",
	)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(profCmd)
	rootCmd.AddCommand(sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
