package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
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

// requestLogger logs method, path, status, bytes, and duration per request.
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
	}
	return slog.LevelInfo
}

func openStorage(kind, path string) (ports.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "fs":
		return storage.NewFS(path), nil
	case "sqlite":
		return storage.NewSQLite(path)
	}
	return nil, fmt.Errorf("unknown storage %q (fs|sqlite)", kind)
}

func newServeCommand() *cobra.Command {
	var (
		addr        string
		backend     string
		storeKind   string
		persistPath string
		levelStr    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(levelStr)}))

			s, err := pickSolver(backend)
			if err != nil {
				return err
			}
			st, err := openStorage(storeKind, persistPath)
			if err != nil {
				return err
			}
			defer st.Close()

			uc := usecase.NewService(s, validator.New(), hint.NewSingles(), st)
			mux := http.NewServeMux()
			httpadapter.New(uc).Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "storage", storeKind, "persist", persistPath, "solver", backend)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&backend, "solver", "rules", "solver backend: rules|backtrack|sat")
	cmd.Flags().StringVar(&storeKind, "storage", "fs", "storage backend: fs|sqlite")
	cmd.Flags().StringVar(&persistPath, "persist-path", "./data", "save directory (fs) or database file (sqlite)")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	return cmd
}
