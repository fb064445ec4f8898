// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lpushgo/internal/archive"
	awsx "github.com/lambdapush/lpushgo/internal/aws"
	"github.com/lambdapush/lpushgo/internal/config"
	"github.com/lambdapush/lpushgo/internal/creds"
	"github.com/lambdapush/lpushgo/internal/lambda"
	"github.com/lambdapush/lpushgo/internal/matcher"
	"github.com/lambdapush/lpushgo/internal/output"
)

// codeUpdater abstracts the deployer so tests can intercept the one
// irreversible action.
type codeUpdater interface {
	Deploy(ctx context.Context, functionName string, archive []byte, publish bool) (*lambda.Result, error)
}

// Test seams. Production values are installed here; tests swap them.
var (
	newUpdater = func(cfg awsv2.Config) codeUpdater {
		return lambda.NewDeployer(cfg)
	}
	validateCreds = func(ctx context.Context, cfg awsv2.Config) (*awsx.Identity, error) {
		return awsx.ValidateCredentials(ctx, cfg, awsx.NewSTS(cfg))
	}
	deployPrompter creds.Prompter
)

// RootAction is the single top-level action: setup, dry-run packaging, or a
// full deploy.
func RootAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("setup") {
		return SetupAction(ctx, cmd)
	}

	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	functionName := strings.TrimSpace(cmd.Args().First())
	if functionName == "" {
		return errors.New("FUNCTION_NAME is required unless --setup is given")
	}

	patterns := includePatterns(cmd)
	log.Debugf("include patterns: %v", patterns)

	files, err := matcher.Resolve(m.RootDir, patterns)
	if err != nil {
		return err
	}
	log.Debugf("resolved %d files", len(files))

	if cmd.Bool("dry") {
		return dryRun(m.RootDir, functionName, files, cmd)
	}

	opts := []awsx.Option{}
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsx.WithRegion(r))
	}

	cfg, err := awsx.LoadConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	id, err := validateCreds(ctx, cfg)
	if err != nil {
		return err
	}
	log.Debugf("deploying as %s", id.Arn)

	var buf bytes.Buffer
	manifest, err := archive.Build(m.RootDir, files, &buf)
	if err != nil {
		return err
	}

	output.SpitManifest(manifest, cmd, os.Stdout)

	if !cmd.Bool("yes") {
		ok, err := confirmDeploy(functionName)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Deployment cancelled.")
			return nil
		}
	}

	result, err := newUpdater(cfg).Deploy(ctx, functionName, buf.Bytes(), cmd.Bool("publish"))
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s: sha256 %s, version %s, %s, modified %s\n",
		result.FunctionName,
		result.CodeSha256,
		result.Version,
		humanize.IBytes(uint64(result.CodeSize)),
		result.LastModified)

	return nil
}

// includePatterns merges the --include flags with the config file fallback.
// An empty result defers to the matcher's default pattern.
func includePatterns(cmd *cli.Command) []string {
	patterns := cmd.StringSlice("include")
	if len(patterns) == 0 {
		patterns, _ = config.GetStringSlice("include")
	}

	trimmed := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return trimmed
}

// dryRun writes FUNCTION_NAME.zip next to the invocation dir and stops. A
// prior artifact with the same name is overwritten.
func dryRun(root string, functionName string, files []string, cmd *cli.Command) error {
	path := filepath.Join(root, functionName+".zip")

	manifest, err := archive.BuildFile(root, files, path)
	if err != nil {
		return err
	}

	output.SpitManifest(manifest, cmd, os.Stdout)
	fmt.Printf("Dry run: wrote %s. No deployment was made.\n", path)

	return nil
}

func confirmDeploy(functionName string) (bool, error) {
	p := deployPrompter
	if p == nil {
		p = creds.NewTerminalPrompter()
	}

	answer, err := p.ReadLine(fmt.Sprintf("Deploy to %s? (y/n): ", functionName))
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}
