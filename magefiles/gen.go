//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

// Run all generators in parallel
func (g Gen) All() error {
	mg.Deps(g.Go, g.Docs)
	return nil
}

// Run go codegen
func (Gen) Go() error {
	fmt.Println("generating go")
	return sh.RunV("go", "generate", "./...")
}

// Regenerate the CLI reference
func (Gen) Docs() error {
	fmt.Println("generating docs")
	return sh.RunV("go", "run", "./cmd/docs")
}
