package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger логгер сервиса с printf-интерфейсом поверх slog
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// New создает логгер, пишущий в файл path (или в stdout, если path пустой)
func New(path string, level string) (*Logger, error) {
	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
		}
		out = io.MultiWriter(os.Stdout, f)
		file = f
	}

	return &Logger{
		slog: slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: ParseLevel(level)})),
		file: file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного io.Writer (удобно в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	return &Logger{
		slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})),
	}
}

// ParseLevel переводит строковый уровень в slog.Level, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	l.slog.Log(ctx, level, fmt.Sprintf(format, v...))
}
