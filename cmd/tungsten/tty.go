package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// autoSwitch resolves an auto|on|off flag value; auto follows whether f is a terminal.
func autoSwitch(flag, value string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return f != nil && isTerminal(f), nil
	}
	return false, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// colorEnabled resolves --color for output written to f.
func colorEnabled(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return autoSwitch("color", value, f)
}
