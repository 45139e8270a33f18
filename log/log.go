package log

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/motemen/go-loghttp"
)

// DebugEnv enables debug logging when set to any non-empty value
const DebugEnv = "SITEMAPGEN_DEBUG"

// Logger is the global logger instance
var Logger *slog.Logger

// Transport logs every request and response at debug level.
// Clients that talk to search engines should use it instead of http.DefaultTransport.
var Transport = &loghttp.Transport{
	Transport: http.DefaultTransport,
	LogRequest: func(req *http.Request) {
		Debug("HTTP request",
			"method", req.Method,
			"url", req.URL.String(),
			"content_length", req.ContentLength,
		)
	},
	LogResponse: func(resp *http.Response) {
		Debug("HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL.String(),
			"status_code", resp.StatusCode,
		)
	},
}

// InitLogger initializes the global logger.
// The level is Debug when SITEMAPGEN_DEBUG is set, Info otherwise.
func InitLogger() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if os.Getenv(DebugEnv) != "" {
		opts.Level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(Logger)
}

func init() {
	InitLogger()
}

// EnableGlobalHTTP routes http.DefaultTransport through Transport
func EnableGlobalHTTP() {
	http.DefaultTransport = Transport
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
