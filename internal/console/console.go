// Package console decorates human-facing output. It is a stateless
// formatting utility: every function takes a message and returns the
// decorated string, so callers own all counters and writers themselves.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

const headerWidth = 60

// Success decorates msg with an [OK] tag.
func Success(msg string) string {
	return successStyle.Render("[OK]") + " " + msg
}

// Info decorates msg with an [INFO] tag.
func Info(msg string) string {
	return infoStyle.Render("[INFO]") + " " + msg
}

// Warn decorates msg with a [WARN] tag.
func Warn(msg string) string {
	return warnStyle.Render("[WARN]") + " " + msg
}

// Error decorates msg with an [ERROR] tag.
func Error(msg string) string {
	return errorStyle.Render("[ERROR]") + " " + msg
}

// Successf is Success with printf formatting.
func Successf(format string, args ...any) string {
	return Success(fmt.Sprintf(format, args...))
}

// Infof is Info with printf formatting.
func Infof(format string, args ...any) string {
	return Info(fmt.Sprintf(format, args...))
}

// Warnf is Warn with printf formatting.
func Warnf(format string, args ...any) string {
	return Warn(fmt.Sprintf(format, args...))
}

// Errorf is Error with printf formatting.
func Errorf(format string, args ...any) string {
	return Error(fmt.Sprintf(format, args...))
}

// Header renders msg centered inside a rule, as a section banner.
func Header(msg string) string {
	rule := strings.Repeat("=", headerWidth)
	pad := headerWidth - len(msg)
	if pad < 0 {
		pad = 0
	}
	centered := strings.Repeat(" ", pad/2) + msg
	return "\n" + headerStyle.Render(rule) + "\n" +
		headerStyle.Render(centered) + "\n" +
		headerStyle.Render(rule)
}
