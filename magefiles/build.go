//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads modules and vets the tree.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("mod", "download")); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the wankel binary into bin/.
func (Build) Binary() error {
	mg.Deps(Build.Vet)
	_, err := executeCmd("go", withArgs("build", "-o", "bin/wankel", "."), withStream())
	return err
}

type Test mg.Namespace

// Runs the unit tests with the race detector.
func (Test) Unit() error {
	// the race detector needs cgo
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withEnv("CGO_ENABLED=1"), withStream())
	return err
}

// Runs the math and job system benchmarks.
func (Test) Bench() error {
	_, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", ".", "./engine/math/...", "./engine/systems/..."), withStream())
	return err
}
