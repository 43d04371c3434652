// Package output provides operator-facing message formatting for the
// makessl CLI. Messages go to stdout with colored status markers; the
// logger package owns diagnostic output on stderr.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	stepColor    = color.New(color.FgCyan, color.Bold)
)

// JSON outputs data as indented JSON.
func JSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success prints a success message.
func Success(format string, args ...interface{}) {
	_, _ = successColor.Printf("✓ "+format+"\n", args...)
}

// Error prints an error message.
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Printf("✗ "+format+"\n", args...)
}

// Warn prints a warning message.
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Printf("! "+format+"\n", args...)
}

// Info prints an info message.
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Printf("→ "+format+"\n", args...)
}

// Step prints a numbered pipeline stage header.
func Step(n int, format string, args ...interface{}) {
	_, _ = stepColor.Printf(fmt.Sprintf("\n[%d] ", n)+format+"\n", args...)
}

// Print prints a plain message.
func Print(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Block prints a multi-line text block verbatim, without color or
// markers, for configuration snippets the operator pastes elsewhere.
func Block(text string) {
	fmt.Println(text)
}

// List prints items as a bulleted list.
func List(items []string) {
	for _, item := range items {
		fmt.Printf("  * %s\n", item)
	}
}
