package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Package groups exercised by each test target. Integration tests build the
// binary themselves, so they live apart from the library packages.
var (
	unitPkgs        = []string{"./pkg/...", "./internal/...", "./cmd/..."}
	integrationPkgs = []string{"./tests/integration/..."}
)

// Test groups test targets (all, unit, integration, cover).
type Test mg.Namespace

// All runs unit tests, then integration tests.
func (Test) All() {
	mg.SerialDeps(Test.Unit, Test.Integration)
}

// Unit runs the library and CLI package tests.
func (Test) Unit() error {
	return goTest(unitPkgs...)
}

// Integration builds the addressbook binary, then runs the end-to-end suite.
func (Test) Integration() error {
	mg.Deps(Build)
	return goTest(integrationPkgs...)
}

// Cover runs unit tests with a coverage profile written to bin/cover.out.
func (Test) Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "cover.out")
	args := append([]string{"test", "-coverprofile=" + profile}, unitPkgs...)
	if err := sh.RunV(binGo, args...); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+profile)
}

func goTest(pkgs ...string) error {
	args := append([]string{"test", "-v"}, pkgs...)
	return sh.RunV(binGo, args...)
}
