// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package output renders the archive manifest in the formats selected by the
// global --output, --color and --titles flags.
package output
