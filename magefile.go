//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs a full build.
var Default = Build

// Build compiles the scriptvocab and scriptvocabd binaries.
func Build() error {
	if err := sh.RunV("go", "build", "-o", "scriptvocab", "./cmd/scriptvocab"); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", "scriptvocabd", "./cmd/scriptvocabd")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install runs the tests and installs both binaries.
func Install() error {
	mg.Deps(Test)

	if err := sh.RunV("go", "install", "./cmd/scriptvocab"); err != nil {
		return err
	}
	return sh.RunV("go", "install", "./cmd/scriptvocabd")
}

// Clean removes built binaries.
func Clean() error {
	if err := sh.Rm("scriptvocab"); err != nil {
		return err
	}
	return sh.Rm("scriptvocabd")
}
