package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/nicholasprowse/sudoku-solver/internal/adapters/http"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newServeCmd() *cobra.Command {
	var (
		addr       string
		persist    string
		levelStr   string
		solverKind string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: parseLevel(levelStr),
			}))
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}
			uc := newService(solverKind, persist)

			mux := http.NewServeMux()
			httpadapter.New(uc).Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist, "solver", solverKind)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&solverKind, "solver", "bitmask", "solver to use: bitmask|backtrack")
	return cmd
}
