// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lpushgo/internal/config"
	"github.com/lambdapush/lpushgo/internal/creds"
)

func init() {
	cfg, _ = config.Load()
}

var (
	cfg config.Type

	setupFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "setup",
		Usage:       "interactively configure AWS credentials, then exit",
		HideDefault: true,
	}

	dryFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "dry",
		Aliases:     []string{"d"},
		Usage:       "package only; write FUNCTION_NAME.zip locally and skip deployment",
		HideDefault: true,
	}

	includeFlag *cli.StringSliceFlag = &cli.StringSliceFlag{
		Name:    "include",
		Aliases: []string{"i"},
		Usage:   "glob pattern to include (repeatable). Example: -i '*.py' -i 'modules/**/*.py'",
		Validator: func(patterns []string) error {
			return validatePatterns(patterns)
		},
	}

	publishFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "publish",
		Usage:       "publish a new version after the code update",
		HideDefault: true,
	}

	yesFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "yes",
		Aliases:     []string{"y"},
		Usage:       "skip the deployment confirmation prompt",
		HideDefault: true,
	}
)

// NewDeployFlags constructs the flags that control credential resolution.
// Values fall back to the env and then the lpush config file.
func NewDeployFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "shared config profile to deploy with",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LPUSH_PROFILE"),
				yaml.YAML("profile", altsrc.StringSourcer(cfg.Source)),
			),
			Value: creds.DefaultProfile,
		},
		&cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "region override. Defaults to the profile/env chain",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LPUSH_REGION"),
				yaml.YAML("region", altsrc.StringSourcer(cfg.Source)),
			),
		},
	}
}

// NewGlobalFlags constructs the output-rendering flags shared by every run.
func NewGlobalFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}
