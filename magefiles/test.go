// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit, mysql).
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the package tests.
func (Test) Unit() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var unitPkgs []string
	for pkg := range strings.SplitSeq(pkgs, "\n") {
		if pkg != "" {
			unitPkgs = append(unitPkgs, pkg)
		}
	}
	if len(unitPkgs) == 0 {
		fmt.Println("No unit test packages found.")
		return nil
	}
	args := append([]string{"test", "-v"}, unitPkgs...)
	return sh.RunV(binGo, args...)
}

// MySQL builds the binary and runs "attrschema ensure" twice against the
// database named by ATTRSCHEMA_DSN, checking the second pass is a no-op.
func (Test) MySQL() error {
	dsn := os.Getenv("ATTRSCHEMA_DSN")
	if dsn == "" {
		return errors.New("ATTRSCHEMA_DSN is not set")
	}
	mg.Deps(Build)
	bin := "./" + binaryDir + "/" + binaryName
	for range 2 {
		if err := sh.RunV(bin, "ensure", "--dialect", "mysql", "--prefix", "mage_", "--log-level", "debug"); err != nil {
			return err
		}
	}
	return nil
}
