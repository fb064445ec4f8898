// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package command wires the CLI surface: flag definitions, argument
// validation, and the deploy and setup actions.
package command
