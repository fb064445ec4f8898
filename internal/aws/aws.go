// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrNoCredentials signals that the credential chain resolved nothing. The
// deploy flow checks this before any Lambda call goes out.
var ErrNoCredentials = errors.New("no AWS credentials resolvable; run --setup or configure the environment")

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// LoadConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retryer without changing callers.
func LoadConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// StaticConfig builds a config from explicit key material, used by the setup
// flow to validate credentials before they are saved anywhere.
func StaticConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (awsv2.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken)),
		config.WithRegion(region),
	)
}

// Identity is the caller identity reported by STS.
type Identity struct {
	Account string
	Arn     string
	UserID  string
}

// STSAPI is the slice of the STS client the validator needs.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// NewSTS constructs an STS client from the provided config.
func NewSTS(cfg awsv2.Config) *sts.Client {
	return sts.NewFromConfig(cfg)
}

// ValidateCredentials checks that the config resolves usable credentials and
// that AWS accepts them. Resolution failure maps to ErrNoCredentials so
// callers can distinguish "nothing configured" from a rejected call.
func ValidateCredentials(ctx context.Context, cfg awsv2.Config, api STSAPI) (*Identity, error) {
	if cfg.Credentials == nil {
		return nil, ErrNoCredentials
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return nil, ErrNoCredentials
	}
	log.Debugf("resolved access key %.5s...", creds.AccessKeyID)

	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("credentials rejected by AWS: %w", err)
	}

	id := &Identity{}
	if out.Account != nil {
		id.Account = *out.Account
	}
	if out.Arn != nil {
		id.Arn = *out.Arn
	}
	if out.UserId != nil {
		id.UserID = *out.UserId
	}

	return id, nil
}
