package logutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes where and how the demo command logs.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`

	// Empty means stderr. Otherwise the file is rotated by size.
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:   zapcore.InfoLevel.String(),
		Format:  "console",
		MaxSize: 64,
	}
}

func (c LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return err
	}

	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Format)
	}

	if c.MaxSize < 0 || c.MaxDays < 0 || c.MaxBackups < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}

	return nil
}

// NewLogger builds a logger from the config.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level, _ := zapcore.ParseLevel(c.Level)
	core := zapcore.NewCore(getLoggerEncoder(c.Format), getLoggerSink(c), level)

	return zap.New(core, zap.AddCaller()), nil
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getLoggerSink(c LogConfig) zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
	})
}
