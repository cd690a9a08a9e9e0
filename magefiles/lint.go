//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Lint mg.Namespace

// All Run all linters
func (l Lint) All() error {
	err := Gen{}.All()
	if err != nil {
		return err
	}
	mg.Deps(l.Gofumpt, l.Golangcilint, l.Vulncheck)
	return nil
}

// Gofumpt Run gofumpt
func (Lint) Gofumpt() error {
	fmt.Println("formatting go")
	return RunSh("go", Tool())("run", "mvdan.cc/gofumpt", "-l", "-w", "..")
}

// Golangcilint Run golangci-lint
func (Lint) Golangcilint() error {
	if !hasBinary("golangci-lint") {
		return fmt.Errorf("golangci-lint must be installed to lint")
	}
	fmt.Println("running golangci-lint")
	return RunSh("golangci-lint", WithV())("run", "--fix")
}

// Vulncheck Run vulncheck
func (Lint) Vulncheck() error {
	if !hasBinary("govulncheck") {
		return fmt.Errorf("govulncheck must be installed to scan")
	}
	fmt.Println("running vulncheck")
	return RunSh("govulncheck", WithV())("./...")
}
