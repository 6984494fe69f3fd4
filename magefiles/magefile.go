//go:build mage

// Package main provides build targets for meby using Mage.
//
// Usage:
//
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage cover          Write coverage.out and print the per-function summary
//	mage lint           Run golangci-lint
//	mage examples       Run every program under examples/
//	mage clean          Remove coverage artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	binLint      = "golangci-lint"
	coverProfile = "coverage.out"
	examplesDir  = "examples"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test in the module.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs every test with the race detector enabled.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover writes a coverage profile and prints the per-function summary.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Examples runs each demo program under examples/.
func Examples() error {
	mg.Deps(Test.All)
	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := "./" + filepath.Join(examplesDir, e.Name())
		fmt.Println("==>", dir)
		if err := sh.RunV(binGo, "run", dir); err != nil {
			return fmt.Errorf("example %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Clean removes coverage artifacts.
func Clean() error {
	return sh.Rm(coverProfile)
}
