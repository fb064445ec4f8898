// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is stamped at build time via -ldflags. The default marks
// unofficial builds.
var Version = "0.0.0-dev"
