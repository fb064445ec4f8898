// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// lpushgo is the main package for the lpush command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
