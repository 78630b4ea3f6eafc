// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/mattes3/mcp4ddd/src/internal/helper/gc"
)

// Level is the severity attached to a structured log entry.
type Level string

const (
	// LevelInfo marks routine events such as a completed generation.
	LevelInfo Level = "info"
	// LevelError marks failed tool invocations and startup problems.
	LevelError Level = "error"
)

// Logger defines the interface for logging operations.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stdout, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Errorf prints an error message prefixed with "error: ".
func (c *CLILogger) Errorf(format string, v ...any) {
	c.logger.Printf("error: "+format, v...)
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// MCPLogger implements Logger for [MCP] server mode.
// Each entry is a single JSON object per line. Stdout carries the protocol,
// so callers pass stderr or a file as the writer.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu        sync.Mutex
	writer    io.Writer
	silent    bool
	component string
}

// NewMCPLogger creates a new [MCP] logger.
// Set silent=true to suppress all output, for example in tests.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

// Named returns a logger sharing the destination of m that tags every entry
// with the given component name.
func (m *MCPLogger) Named(component string) *MCPLogger {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &MCPLogger{
		writer:    m.writer,
		silent:    m.silent,
		component: component,
	}
}

// Printf formats and logs an info entry.
func (m *MCPLogger) Printf(format string, v ...any) {
	m.write(LevelInfo, fmt.Sprintf(format, v...))
}

// Println logs an info entry built with fmt.Sprint semantics.
func (m *MCPLogger) Println(v ...any) { m.write(LevelInfo, fmt.Sprint(v...)) }

// Errorf formats and logs an error entry.
func (m *MCPLogger) Errorf(format string, v ...any) {
	m.write(LevelError, fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the MCP logger.
// A nil writer discards output.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}

type entry struct {
	Level     Level  `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

func (m *MCPLogger) write(level Level, msg string) {
	if m.silent {
		return
	}

	line, err := gc.Capture(nil, func(w gc.Buffer) error {
		return json.NewEncoder(w).Encode(entry{Level: level, Component: m.component, Message: msg})
	})
	if err != nil {
		return
	}

	m.mu.Lock()
	io.WriteString(m.writer, line)
	m.mu.Unlock()
}
