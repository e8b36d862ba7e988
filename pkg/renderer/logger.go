package renderer

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SilentLogger implements core.Logger by discarding all output
type SilentLogger struct{}

func (sl *SilentLogger) Printf(format string, args ...interface{}) {}

// NewSilentLogger creates a logger that discards output, useful in tests
func NewSilentLogger() core.Logger {
	return &SilentLogger{}
}
