// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/lambdapush/lpushgo/internal/archive"
	"github.com/lambdapush/lpushgo/internal/config"
)

// SpitManifest renders the archive manifest per the command's output flags.
func SpitManifest(m archive.Manifest, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(m)
		if err != nil {
			log.Errorf("failed to marshal manifest: %v", err)
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(m)
		if err != nil {
			log.Errorf("failed to marshal manifest: %v", err)
			return
		}
		fmt.Fprint(w, string(yamlOutput))
	default:
		tableWriter(m, cmd, w)
	}
}

// tableWriter renders the manifest in tabular form honoring color, titles
// and padding options.
func tableWriter(m archive.Manifest, cmd *cli.Command, w io.Writer) {
	if len(m) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, e := range m {
		rows = append(rows, []string{e.Name, humanize.IBytes(uint64(e.Size))})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			pad, _ := config.GetInt("padding", 2)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		t = t.Headers("Entry", "Size").BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	fmt.Fprintf(w, "%d files, %s total\n", len(m), humanize.IBytes(uint64(m.TotalSize())))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
