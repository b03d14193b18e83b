package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/nehapjoshi/halotools/halo"
	"github.com/nehapjoshi/halotools/nfw"
)

var (
	profMass float64
	profConc float64
	profMdef string
	profZ    float64
	profN    int
	profRMin float64
	profRMax float64
	profOut  string
)

// profRow is one radius of the profile table. Radii are in Mpc/h, masses in
// MSun/h, densities in MSun/h (Mpc/h)^-3, velocities in km/s.
type profRow struct {
	Radius           float64 `csv:"radius"`
	Density          float64 `csv:"density"`
	EnclosedMass     float64 `csv:"enclosed_mass"`
	CircularVelocity float64 `csv:"v_circ"`
}

var profCmd = &cobra.Command{
	Use:   "prof",
	Short: "Tabulate density, enclosed mass and circular velocity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profN < 2 {
			return fmt.Errorf("--n must be at least 2, got %d", profN)
		}
		if profRMin <= 0 || profRMax <= profRMin {
			return fmt.Errorf("need 0 < --rmin < --rmax, got %g and %g",
				profRMin, profRMax)
		}
		c, err := loadCosmology(configPath)
		if err != nil {
			return err
		}
		mdef, err := halo.ParseMassDef(profMdef)
		if err != nil {
			return err
		}
		prof, err := nfw.NewProfile(c, profZ, mdef)
		if err != nil {
			return err
		}

		rh, err := prof.HaloMassToHaloRadius(profMass)
		if err != nil {
			return err
		}
		rs := make([]float64, profN)
		floats.LogSpan(rs, profRMin*rh, profRMax*rh)

		rhos, err := prof.MassDensityAll(rs, profMass, profConc)
		if err != nil {
			return err
		}
		ms, err := prof.EnclosedMassAll(rs, profMass, profConc)
		if err != nil {
			return err
		}
		vs, err := prof.CircularVelocityAll(rs, profMass, profConc)
		if err != nil {
			return err
		}

		rows := make([]profRow, profN)
		for i := range rows {
			rows[i] = profRow{rs[i], rhos[i], ms[i], vs[i]}
		}
		return writeCSV(profOut, &rows)
	},
}

func init() {
	profCmd.Flags().Float64Var(&profMass, "mass", 1e12, "halo mass in MSun/h")
	profCmd.Flags().Float64Var(&profConc, "conc", 10, "NFW concentration")
	profCmd.Flags().StringVar(&profMdef, "mdef", "200c", "mass definition")
	profCmd.Flags().Float64Var(&profZ, "z", 0, "redshift")
	profCmd.Flags().IntVar(&profN, "n", 100, "number of radii")
	profCmd.Flags().Float64Var(&profRMin, "rmin", 0.01, "innermost radius, in halo radii")
	profCmd.Flags().Float64Var(&profRMax, "rmax", 1, "outermost radius, in halo radii")
	profCmd.Flags().StringVarP(&profOut, "out", "o", "", "output CSV file (default stdout)")
}

// writeCSV marshals rows to path, or to stdout if path is empty.
func writeCSV(path string, rows interface{}) error {
	if path == "" {
		return gocsv.Marshal(rows, os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
