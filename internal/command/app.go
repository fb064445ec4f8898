// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lpushgo/internal/config"
	"github.com/lambdapush/lpushgo/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, _ := config.Load()
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		RootDir: wd,
	}

	app := &cli.Command{
		Name:      "lpush",
		Usage:     "Package and deploy source files to AWS Lambda",
		UsageText: `lpush FUNCTION_NAME [options]` + "\n" + `lpush --setup`,
		ArgsUsage: "[FUNCTION_NAME]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "lpush version info",
				HideDefault: true,
			},
			setupFlag,
			dryFlag,
			includeFlag,
			publishFlag,
			yesFlag,
		}, append(NewDeployFlags(), NewGlobalFlags()...)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return RootAction(ctx, cmd)
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
