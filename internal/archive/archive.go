// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

// Package archive builds the zip artifact that gets shipped to Lambda.
// Entry names are the slash-separated relative paths of the input files, so
// unpacking the archive anywhere reproduces the original layout.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
)

// Entry describes one file written into the archive.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Size int64  `json:"size" yaml:"size"`
}

// Manifest lists the archive entries in the order they were written.
type Manifest []Entry

// TotalSize returns the sum of the uncompressed entry sizes.
func (m Manifest) TotalSize() (total int64) {
	for _, e := range m {
		total += e.Size
	}
	return
}

// FileUnavailableError reports a file that was in the resolved set but could
// not be read at archive-build time.
type FileUnavailableError struct {
	Path string
	Err  error
}

func (e *FileUnavailableError) Error() string {
	return fmt.Sprintf("file unavailable: %s: %v", e.Path, e.Err)
}

func (e *FileUnavailableError) Unwrap() error { return e.Err }

// Build writes a zip archive of the given files to w. Paths are relative to
// root and are written in sorted order so identical inputs produce identical
// entry ordering. The returned Manifest mirrors the written entries.
func Build(root string, files []string, w io.Writer) (Manifest, error) {
	ordered := make([]string, len(files))
	copy(ordered, files)
	sort.Strings(ordered)

	zw := zip.NewWriter(w)

	var manifest Manifest
	for _, rel := range ordered {
		entry, err := writeEntry(zw, root, rel)
		if err != nil {
			zw.Close()
			return nil, err
		}
		manifest = append(manifest, entry)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	log.Debugf("archived %d files, %d bytes", len(manifest), manifest.TotalSize())

	return manifest, nil
}

// BuildFile creates (or truncates) path and writes the archive there.
// Overwriting an existing artifact from a prior run is intentional.
func BuildFile(root string, files []string, path string) (Manifest, error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	manifest, err := Build(root, files, out)
	if err != nil {
		out.Close()
		return nil, err
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return manifest, nil
}

func writeEntry(zw *zip.Writer, root string, rel string) (Entry, error) {
	src := filepath.Join(root, filepath.FromSlash(rel))

	f, err := os.Open(src)
	if err != nil {
		return Entry{}, &FileUnavailableError{Path: rel, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Entry{}, &FileUnavailableError{Path: rel, Err: err}
	}

	hdr := &zip.FileHeader{
		Name:   filepath.ToSlash(rel),
		Method: zip.Deflate,
	}
	hdr.Modified = info.ModTime()

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to create archive entry %s: %w", rel, err)
	}

	n, err := io.Copy(dst, f)
	if err != nil {
		return Entry{}, &FileUnavailableError{Path: rel, Err: err}
	}

	return Entry{Name: hdr.Name, Size: n}, nil
}
