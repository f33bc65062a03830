package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("manifest file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve manifest path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("manifest file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("manifest path %s is a directory", abs)
	}

	return nil
}

var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// terminalWidth returns the width of writer when it is a terminal.
func terminalWidth(writer any) (int, bool) {
	file, ok := writer.(*os.File)
	if !ok || !isTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
