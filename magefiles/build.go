//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Binary Build the hogwash binary
func (Build) Binary() error {
	mg.Deps(Gen{}.Go)
	return sh.RunV("go", "build", "-o", "dist/hogwash", "./cmd/hogwash")
}
