package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lox/handhistory/cmd/handhistory/shared"
	"github.com/lox/handhistory/internal/parser"
)

// HandCmd parses a single hand's text and prints the canonical render.
type HandCmd struct {
	File  string `arg:"" optional:"" name:"file" help:"Path to a file holding one hand's text (stdin when omitted)"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *HandCmd) Run() error {
	logger := zerolog.Nop()
	if c.Debug {
		logger = shared.SetupLogger("debug")
	}

	text, err := c.readInput()
	if err != nil {
		return err
	}

	h, err := parser.New(logger).ParseOne(text)
	if err != nil {
		return err
	}
	if h.IsZero() {
		return fmt.Errorf("input contained no parseable hand")
	}

	fmt.Print(h.Render())
	return nil
}

func (c *HandCmd) readInput() (string, error) {
	if c.File == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filepath.Clean(c.File))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
