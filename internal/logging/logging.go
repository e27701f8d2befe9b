package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	Debug   = zap.NewNop().Sugar()
	Scanner = zap.NewNop().Sugar()
	Enabled bool
)

// Setup sends debug output to the file at path. Loggers stay no-ops when
// path is empty. The returned function flushes buffered output.
func Setup(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true

	base, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to open debug log")
	}

	Enabled = true
	Debug = base.Named("debug").Sugar()
	Scanner = base.Named("scanner").Sugar()

	return func() { _ = base.Sync() }, nil
}
