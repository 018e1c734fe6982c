// Package log writes diagnostics to a size-rotated file under where.Logs().
// Nothing is written unless logs.write is enabled.
package log

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/where"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: &logrus.TextFormatter{DisableColors: true},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// Setup points the logger at the rotated log file when logs.write is on.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger.SetOutput(io.Discard)
		return nil
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		return fmt.Errorf("%s: %w", key.LogsLevel, err)
	}
	logger.SetLevel(level)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(where.Logs(), constant.App+".log"),
		MaxSize:    viper.GetInt(key.LogsMaxSize),
		MaxBackups: viper.GetInt(key.LogsMaxBackups),
		MaxAge:     viper.GetInt(key.LogsMaxAge),
	})

	return nil
}

// Enabled reports whether entries reach a file.
func Enabled() bool {
	return logger.Out != io.Discard
}

func Error(args ...any)                 { logger.Error(args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
