//go:build mage

package main

var Aliases = map[string]any{
	"build":    Build.Binary,
	"test":     Test.Unit,
	"generate": Gen.All,
	"lint":     Lint.All,
	"scan":     Lint.Vulncheck,
}
