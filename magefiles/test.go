//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// The SIMD kernel is only compiled with the simd experiment enabled.
const simdExperiment = "GOEXPERIMENT=simd"

// Each strategy runs the same test suite under a different build.
var strategies = []struct {
	name string
	env  []string
	tags []string
}{
	{"simd", []string{simdExperiment}, nil},
	{"scalar", nil, []string{"gmath_nosimd"}},
	{"depth-zo", []string{simdExperiment}, []string{"gmath_depth_zo"}},
	{"noformat", []string{simdExperiment}, []string{"gmath_noformat"}},
	{"scalar+depth-zo+noformat", nil, []string{"gmath_nosimd", "gmath_depth_zo", "gmath_noformat"}},
}

func goTest(env []string, tags ...string) error {
	args := []string{"test", "-count=1"}
	if len(tags) > 0 {
		args = append(args, "-tags", strings.Join(tags, ","))
	}
	args = append(args, "./...")
	return executeCmd("go", withArgs(args...), withEnv(env...), withStream())
}

func goBench(env []string, tags ...string) error {
	args := []string{"test", "-run", "^$", "-bench", ".", "-benchmem"}
	if len(tags) > 0 {
		args = append(args, "-tags", strings.Join(tags, ","))
	}
	args = append(args, "./math")
	return executeCmd("go", withArgs(args...), withEnv(env...), withStream())
}

// Runs the tests with the SIMD kernel compiled in (amd64 with AVX2; other targets fall back to scalar).
func (Test) SIMD() error {
	return goTest([]string{simdExperiment})
}

// Runs the tests against the portable scalar kernel.
func (Test) Scalar() error {
	return goTest(nil, "gmath_nosimd")
}

// Runs the tests with projections mapping depth to [0, 1].
func (Test) DepthZO() error {
	return goTest([]string{simdExperiment}, "gmath_depth_zo")
}

// Runs the tests with the text formatting layer compiled out.
func (Test) NoFormat() error {
	return goTest([]string{simdExperiment}, "gmath_noformat")
}

// Runs the kernel benchmarks for the SIMD and the scalar build.
func (Test) Bench() error {
	fmt.Println("Benchmarks, simd build...")
	if err := goBench([]string{simdExperiment}); err != nil {
		return err
	}
	fmt.Println("Benchmarks, scalar build...")
	return goBench(nil, "gmath_nosimd")
}

// Runs every strategy in turn, stopping at the first failure, then the benchmarks.
func (Test) All() error {
	for _, s := range strategies {
		fmt.Printf("Strategy %s...\n", s.name)
		if err := goTest(s.env, s.tags...); err != nil {
			return fmt.Errorf("strategy %s: %w", s.name, err)
		}
	}
	return Test{}.Bench()
}

// Runs go vet under the SIMD and the scalar build.
func (Test) Vet() error {
	if err := executeCmd("go", withArgs("vet", "./..."), withEnv(simdExperiment), withStream()); err != nil {
		return err
	}
	return executeCmd("go", withArgs("vet", "-tags", "gmath_nosimd", "./..."), withStream())
}

// Runs only the math package tests, from inside its directory.
func (Test) Math() error {
	return executeCmd("go", withArgs("test", "-count=1", "."), withEnv(simdExperiment), withDir("math"), withStream())
}
