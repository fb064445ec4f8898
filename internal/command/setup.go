// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/lambdapush/lpushgo/internal/aws"
	"github.com/lambdapush/lpushgo/internal/creds"
)

// SetupFlow collects, validates and persists AWS credentials. Each
// collaborator is injectable so the control flow is testable without a
// terminal or network.
type SetupFlow struct {
	Prompter creds.Prompter
	Store    creds.Store
	Validate func(ctx context.Context, c creds.Credentials) (*awsx.Identity, error)
}

// SetupAction handles `lpush --setup`.
func SetupAction(ctx context.Context, cmd *cli.Command) error {
	store, err := creds.NewFileStore()
	if err != nil {
		return err
	}

	flow := &SetupFlow{
		Prompter: creds.NewTerminalPrompter(),
		Store:    store,
		Validate: validateStatic,
	}

	return flow.Run(ctx, cmd.String("profile"))
}

// Run walks the interactive setup: prompt, validate against AWS, save only
// on success.
func (f *SetupFlow) Run(ctx context.Context, profile string) error {
	fmt.Println("Setting up AWS credentials...")

	accessKey, err := f.Prompter.ReadLine("Enter AWS Access Key ID: ")
	if err != nil {
		return &creds.SetupError{Reason: fmt.Sprintf("input aborted: %v", err)}
	}
	secretKey, err := f.Prompter.ReadSecret("Enter AWS Secret Access Key: ")
	if err != nil {
		return &creds.SetupError{Reason: fmt.Sprintf("input aborted: %v", err)}
	}
	region, err := f.Prompter.ReadLine("Enter AWS Region (e.g., us-east-1): ")
	if err != nil {
		return &creds.SetupError{Reason: fmt.Sprintf("input aborted: %v", err)}
	}

	if accessKey == "" || secretKey == "" || region == "" {
		return &creds.SetupError{Reason: "all credential fields are required"}
	}

	c := creds.Credentials{
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		Region:          region,
		Output:          "json",
	}

	fmt.Println("Validating credentials...")
	id, err := f.Validate(ctx, c)
	if err != nil {
		return &creds.SetupError{Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	log.Debugf("validated as %s", id.Arn)

	if err := f.Store.Write(profile, c); err != nil {
		return &creds.SetupError{Reason: err.Error()}
	}

	fmt.Printf("Credentials validated and saved.\n  Account: %s\n  ARN: %s\n", id.Account, id.Arn)

	return nil
}

// validateStatic checks candidate key material against STS before anything
// is written to disk.
func validateStatic(ctx context.Context, c creds.Credentials) (*awsx.Identity, error) {
	cfg, err := awsx.StaticConfig(ctx, c.AccessKeyID, c.SecretAccessKey, c.SessionToken, c.Region)
	if err != nil {
		return nil, err
	}
	return awsx.ValidateCredentials(ctx, cfg, awsx.NewSTS(cfg))
}
