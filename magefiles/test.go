//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs all test suites
func (t Test) All() error {
	mg.Deps(t.Unit, t.Race)
	return nil
}

// Runs the unit tests
func (Test) Unit() error {
	fmt.Println("running unit tests")
	return goTest("./...", "-tags", "ci", "-timeout", "10m")
}

// Runs the unit tests under the race detector
func (Test) Race() error {
	fmt.Println("running unit tests with race detection")
	return goTest("./...", "-tags", "ci", "-race", "-timeout", "15m")
}
