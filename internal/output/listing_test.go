// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lpushgo/internal/archive"
)

func render(t *testing.T, m archive.Manifest, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cli.Command{
		Name: "render",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			SpitManifest(m, cmd, &buf)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"render"}, args...)))
	return buf.String()
}

var manifest = archive.Manifest{
	{Name: "handler.py", Size: 120},
	{Name: "utils/helper.py", Size: 2048},
}

func TestSpitManifest_Text(t *testing.T) {
	out := render(t, manifest)

	assert.Contains(t, out, "handler.py")
	assert.Contains(t, out, "utils/helper.py")
	assert.Contains(t, out, "2 files")
	assert.Contains(t, out, "2.1 KiB total")
}

func TestSpitManifest_TextTitles(t *testing.T) {
	out := render(t, manifest, "--titles")

	assert.Contains(t, out, "Entry")
	assert.Contains(t, out, "Size")
}

func TestSpitManifest_JSON(t *testing.T) {
	out := render(t, manifest, "--output", "json")

	var decoded archive.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, manifest, decoded)
}

func TestSpitManifest_YAML(t *testing.T) {
	out := render(t, manifest, "--output", "yaml")

	assert.Contains(t, out, "name: handler.py")
	assert.Contains(t, out, "size: 2048")
}

func TestSpitManifest_Empty(t *testing.T) {
	out := render(t, archive.Manifest{})
	assert.Empty(t, out)
}
