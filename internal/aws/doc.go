// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package aws contains AWS-related helpers and adapters used by the deploy
// and setup flows.
package aws
