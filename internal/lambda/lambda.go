// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package lambda wraps the update-function-code call. The client is consumed
// through the FunctionAPI interface so tests can substitute a fake.
package lambda

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// FunctionAPI is the slice of the Lambda client the deployer needs.
type FunctionAPI interface {
	UpdateFunctionCode(ctx context.Context, params *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error)
}

// RemoteError wraps a non-success response from the Lambda service. The
// provider's error detail is surfaced verbatim, not reinterpreted.
type RemoteError struct {
	FunctionName string
	Err          error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("failed to update function %s: %v", e.FunctionName, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Result carries the metadata returned by a successful code update.
type Result struct {
	FunctionName string
	CodeSha256   string
	CodeSize     int64
	Version      string
	LastModified string
	State        string
}

// Deployer pushes archive bytes to a named function.
type Deployer struct {
	api FunctionAPI
}

// NewDeployer constructs a Deployer backed by a real Lambda client.
func NewDeployer(cfg awsv2.Config) *Deployer {
	return &Deployer{api: lambda.NewFromConfig(cfg)}
}

// NewDeployerFromAPI constructs a Deployer around any FunctionAPI.
func NewDeployerFromAPI(api FunctionAPI) *Deployer {
	return &Deployer{api: api}
}

// Deploy uploads the archive as the function's new code. It blocks until the
// service acknowledges; no retry loop beyond what the SDK transport does.
func (d *Deployer) Deploy(ctx context.Context, functionName string, archive []byte, publish bool) (*Result, error) {
	start := time.Now()

	out, err := d.api.UpdateFunctionCode(ctx, &lambda.UpdateFunctionCodeInput{
		FunctionName: &functionName,
		ZipFile:      archive,
		Publish:      publish,
	})
	if err != nil {
		return nil, &RemoteError{FunctionName: functionName, Err: err}
	}

	log.Debugf("update-function-code took %s", time.Since(start))

	result := &Result{FunctionName: functionName}
	if out.FunctionName != nil {
		result.FunctionName = *out.FunctionName
	}
	if out.CodeSha256 != nil {
		result.CodeSha256 = *out.CodeSha256
	}
	result.CodeSize = out.CodeSize
	if out.Version != nil {
		result.Version = *out.Version
	}
	if out.LastModified != nil {
		result.LastModified = *out.LastModified
	}
	result.State = string(out.State)

	return result, nil
}
