package rand

import (
	"testing"
)

func testDeterminism(gt GeneratorType, t *testing.T) {
	xs, ys := make([]float64, 1000), make([]float64, 1000)
	New(gt, 43).UniformAt(0, 1, xs)
	New(gt, 43).UniformAt(0, 1, ys)

	for i := range xs {
		if xs[i] != ys[i] {
			t.Fatalf("Same seed diverged at index %d: %g vs %g.", i, xs[i], ys[i])
		}
	}

	New(gt, 44).UniformAt(0, 1, ys)
	same := 0
	for i := range xs {
		if xs[i] == ys[i] {
			same++
		}
	}
	if same == len(xs) {
		t.Errorf("Seeds 43 and 44 produced identical sequences.")
	}
}

func TestDeterminismGolang(t *testing.T)   { testDeterminism(Golang, t) }
func TestDeterminismXorshift(t *testing.T) { testDeterminism(Xorshift, t) }

func testRange(gt GeneratorType, t *testing.T) {
	xs := make([]float64, 100000)
	New(gt, 1).UniformAt(0, 1, xs)
	for i, x := range xs {
		if x < 0 || x >= 1 {
			t.Fatalf("Value %d = %g outside [0, 1).", i, x)
		}
	}

	gen := New(gt, 1)
	for i := 0; i < 1000; i++ {
		x := gen.Uniform(3, 7)
		if x < 3 || x >= 7 {
			t.Fatalf("Uniform(3, 7) = %g.", x)
		}
		n := gen.UniformInt(3, 7)
		if n < 3 || n >= 7 {
			t.Fatalf("UniformInt(3, 7) = %d.", n)
		}
	}
}

func TestRangeGolang(t *testing.T)   { testRange(Golang, t) }
func TestRangeXorshift(t *testing.T) { testRange(Xorshift, t) }

func benchmarkUniform(gt GeneratorType, b *testing.B) {
	gen := NewTimeSeed(gt)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = gen.Uniform(0, 13)
	}
}

func benchmarkUniformAt(gt GeneratorType, tLen int, b *testing.B) {
	gen := NewTimeSeed(gt)
	b.ResetTimer()

	target := make([]float64, tLen)

	n := 0
	for n < b.N {
		if n+tLen > b.N {
			target = target[0 : b.N-n]
		}
		gen.UniformAt(0, 13, target)
		n += tLen
	}
}

func BenchmarkUniformGolang(b *testing.B)   { benchmarkUniform(Golang, b) }
func BenchmarkUniformXorshift(b *testing.B) { benchmarkUniform(Xorshift, b) }

func BenchmarkUniformAtGolang(b *testing.B)   { benchmarkUniformAt(Golang, 1<<10, b) }
func BenchmarkUniformAtXorshift(b *testing.B) { benchmarkUniformAt(Xorshift, 1<<10, b) }
