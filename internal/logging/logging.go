// Package logging builds the file-backed logger. The TUI owns stdout, so
// anything worth keeping goes to a log file instead; remote call failures
// are absorbed by the UI and land only here.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// fileName is the single log file under the configured directory.
const fileName = "rolodex.log"

// New returns a logger appending JSON lines to dir/rolodex.log.
// An empty dir disables logging and returns a no-op logger.
func New(dir string) (*zap.Logger, error) {
	if dir == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: opening %s: %w", path, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	return zap.New(core), nil
}
