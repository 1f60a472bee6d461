package dlog

import (
	slogmulti "github.com/samber/slog-multi"
	"log/slog"
	"os"
	"path/filepath"
)

// Log fans out to a pretty console handler and, when LOG_DIR is set, a
// JSON file sink.
var Log *slog.Logger

func init() {
	Log = createLogger()
}

func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

func createLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
	}

	handlers := []slog.Handler{NewPrettyHandler(os.Stdout, opts)}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		handlers = append(handlers, getJsonHandler(dir, opts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func getJsonHandler(dir string, opts *slog.HandlerOptions) slog.Handler {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		panic(err)
	}
	fileJson, err := os.OpenFile(filepath.Join(dir, "default.json"), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		panic(err)
	}
	return slog.NewJSONHandler(fileJson, opts)
}
