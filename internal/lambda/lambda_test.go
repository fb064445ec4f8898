// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package lambda

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFunctionAPI struct {
	input *awslambda.UpdateFunctionCodeInput
	out   *awslambda.UpdateFunctionCodeOutput
	err   error
}

func (f *fakeFunctionAPI) UpdateFunctionCode(ctx context.Context, params *awslambda.UpdateFunctionCodeInput, optFns ...func(*awslambda.Options)) (*awslambda.UpdateFunctionCodeOutput, error) {
	f.input = params
	return f.out, f.err
}

func TestDeploy_Success(t *testing.T) {
	api := &fakeFunctionAPI{
		out: &awslambda.UpdateFunctionCodeOutput{
			FunctionName: awsv2.String("myfn"),
			CodeSha256:   awsv2.String("abc123"),
			CodeSize:     42,
			Version:      awsv2.String("7"),
			LastModified: awsv2.String("2026-08-31T00:00:00.000+0000"),
			State:        types.StateActive,
		},
	}

	result, err := NewDeployerFromAPI(api).Deploy(context.Background(), "myfn", []byte("zipbytes"), true)
	require.NoError(t, err)

	assert.Equal(t, "myfn", result.FunctionName)
	assert.Equal(t, "abc123", result.CodeSha256)
	assert.Equal(t, int64(42), result.CodeSize)
	assert.Equal(t, "7", result.Version)
	assert.Equal(t, "Active", result.State)

	require.NotNil(t, api.input)
	assert.Equal(t, "myfn", *api.input.FunctionName)
	assert.Equal(t, []byte("zipbytes"), api.input.ZipFile)
	assert.True(t, api.input.Publish)
}

func TestDeploy_RemoteError(t *testing.T) {
	cause := errors.New("ResourceNotFoundException: function not found")
	api := &fakeFunctionAPI{err: cause}

	_, err := NewDeployerFromAPI(api).Deploy(context.Background(), "missing", []byte("z"), false)

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "missing", re.FunctionName)
	// The provider detail is surfaced verbatim.
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ResourceNotFoundException")
}
