package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// logLevel is the value of the --log flag.
type logLevel zapcore.Level

var _ pflag.Value = (*logLevel)(nil)

func (l *logLevel) String() string {
	return zapcore.Level(*l).String()
}

func (l *logLevel) Set(s string) error {
	switch s {
	case "d", "debug", "10":
		*l = logLevel(zapcore.DebugLevel)
	case "i", "info", "20":
		*l = logLevel(zapcore.InfoLevel)
	case "w", "warning", "30":
		*l = logLevel(zapcore.WarnLevel)
	default:
		return fmt.Errorf("unknown log level %q, want d|debug|10, i|info|20 or w|warning|30", s)
	}
	return nil
}

func (l *logLevel) Type() string { return "level" }
