// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cidl/internal/types"
)

const PROMPT = ">> "

// Start reads one C type spelling per line and prints its wire layout.
// It returns at end of input or on ":quit".
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	registry := types.NewRegistry()

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return
		}

		fmt.Fprintln(out, Describe(registry.Lookup(line)))
	}
}

// Describe renders a layout as "type size N align N".
func Describe(l types.Layout) string {
	return fmt.Sprintf("%s size %s align %d", l.Type, l.Size, l.Align)
}
