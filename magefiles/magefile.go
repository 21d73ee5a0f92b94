// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the attrschema project using Mage.
//
// Usage:
//
//	mage build          Compile attrschema binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests that need no external database
//	mage test:mysql     Provision a live MySQL database named by ATTRSCHEMA_DSN
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install attrschema to GOPATH/bin
package main
