// Copyright (c) 2026 The lpush authors.
// SPDX-License-Identifier: Apache-2.0

package creds

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter abstracts the interactive reads the setup flow needs, so the
// orchestrator's control flow is testable without a real terminal.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

// TerminalPrompter reads from stdin, suppressing echo for secrets.
type TerminalPrompter struct {
	reader *bufio.Reader
}

// NewTerminalPrompter returns a Prompter bound to os.Stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{reader: bufio.NewReader(os.Stdin)}
}

func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *TerminalPrompter) ReadSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
