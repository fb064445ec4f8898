// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package creds persists AWS credentials the way the AWS CLI lays them out:
// an INI profile in ~/.aws/credentials plus region/output in ~/.aws/config.
// Existing sections in either file are preserved.
package creds

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"gopkg.in/ini.v1"
)

// DefaultProfile is used when the caller does not name one.
const DefaultProfile = "default"

// SetupError reports an aborted or invalid credential setup.
type SetupError struct {
	Reason string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("credential setup failed: %s", e.Reason)
}

// Credentials is the material collected during setup.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
	Output          string
}

// Store persists credentials for later resolution by the standard chain.
type Store interface {
	Write(profile string, c Credentials) error
}

// FileStore writes the AWS shared credentials and config files under Dir
// (default ~/.aws).
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at ~/.aws.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return &FileStore{Dir: filepath.Join(home, ".aws")}, nil
}

// Write updates the profile section in both shared files, creating the
// directory and files as needed.
func (s *FileStore) Write(profile string, c Credentials) error {
	if profile == "" {
		profile = DefaultProfile
	}

	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Dir, err)
	}

	if c.AccessKeyID != "" || c.SecretAccessKey != "" || c.SessionToken != "" {
		if err := s.writeCredentials(profile, c); err != nil {
			return err
		}
	}

	if c.Region != "" || c.Output != "" {
		if err := s.writeConfig(profile, c); err != nil {
			return err
		}
	}

	return nil
}

func (s *FileStore) writeCredentials(profile string, c Credentials) error {
	path := filepath.Join(s.Dir, "credentials")
	f := loadOrEmpty(path)

	section := f.Section(profile)
	if c.AccessKeyID != "" {
		section.Key("aws_access_key_id").SetValue(c.AccessKeyID)
	}
	if c.SecretAccessKey != "" {
		section.Key("aws_secret_access_key").SetValue(c.SecretAccessKey)
	}
	if c.SessionToken != "" {
		section.Key("aws_session_token").SetValue(c.SessionToken)
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debugf("updated credentials for profile %q in %s", profile, path)

	return os.Chmod(path, 0o600)
}

func (s *FileStore) writeConfig(profile string, c Credentials) error {
	path := filepath.Join(s.Dir, "config")
	f := loadOrEmpty(path)

	// The config file prefixes non-default profile sections with "profile".
	name := profile
	if profile != DefaultProfile {
		name = "profile " + profile
	}

	section := f.Section(name)
	if c.Region != "" {
		section.Key("region").SetValue(c.Region)
	}
	if c.Output != "" {
		section.Key("output").SetValue(c.Output)
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debugf("updated config for profile %q in %s", profile, path)

	return nil
}

func loadOrEmpty(path string) *ini.File {
	f, err := ini.Load(path)
	if err != nil {
		return ini.Empty()
	}
	return f
}
