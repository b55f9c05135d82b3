//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Evaluates the scene in $SCENE, or the testbed scene.
func (Run) Engine() error {
	args := []string{"run", "."}
	if scene := os.Getenv("SCENE"); scene != "" {
		args = append(args, scene)
	}
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
