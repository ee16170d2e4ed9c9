// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tfctl/awsops/internal/meta"
)

// ErrAborted is returned when the user declines a destructive operation.
var ErrAborted = errors.New("aborted")

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirm asks before a destructive operation. Without a terminal there is
// nobody to ask, so it refuses.
func confirm(m meta.Meta, operation string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("%s is destructive: use --force when stdin is not a terminal", operation)
	}

	fmt.Fprintf(m.Stderr, "%s cannot be undone. Continue? [y/N] ", operation)

	in := m.Stdin
	if in == nil {
		in = os.Stdin
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return ErrAborted
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	}
	return ErrAborted
}
