// Package logging builds the structured logger used by long-running
// components and prints the timestamped status lines of the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger, at debug level when debug is set
func New(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Status line colors
var (
	Info    = color.New(color.FgCyan)
	Success = color.New(color.FgGreen)
	Warn    = color.New(color.FgYellow)
	Failure = color.New(color.FgRed)
	Detail  = color.New(color.FgHiBlack)
)

// Printer writes "[15:04:05] message" status lines
type Printer struct {
	Out   io.Writer
	Quiet bool
	Debug bool
	now   func() time.Time
}

// NewPrinter prints to stdout
func NewPrinter(quiet, debug bool) *Printer {
	return &Printer{Out: os.Stdout, Quiet: quiet, Debug: debug, now: time.Now}
}

func (p *Printer) Log(message string, c *color.Color) {
	if p.Quiet {
		return
	}
	now := time.Now
	if p.now != nil {
		now = p.now
	}
	timestamp := now().Format("15:04:05")
	if c == nil {
		fmt.Fprintf(p.Out, "[%s] %s\n", timestamp, message)
		return
	}
	c.Fprintf(p.Out, "[%s] %s\n", timestamp, message)
}

// Debugf prints only when debug output is enabled
func (p *Printer) Debugf(format string, args ...interface{}) {
	if !p.Debug {
		return
	}
	p.Log(fmt.Sprintf(format, args...), Detail)
}
