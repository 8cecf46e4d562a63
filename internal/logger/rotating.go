package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingWriter returns a size-rotated log file writer.
func RotatingWriter(path string, maxSizeMB, maxBackups int) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

// NewTeeLogger logs to the interactive console and a rotated file at once.
func NewTeeLogger(path string, level zerolog.Level, maxSizeMB, maxBackups int) *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: os.Stdout}
	multi := zerolog.MultiLevelWriter(console, RotatingWriter(path, maxSizeMB, maxBackups))
	return NewZerolog(multi, level)
}
