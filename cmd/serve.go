package cmd

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "github.com/jonswain/sudsolve/internal/adapters/http"
	"github.com/jonswain/sudsolve/internal/hint"
	"github.com/jonswain/sudsolve/internal/infrastructure/storage"
	"github.com/jonswain/sudsolve/internal/solver"
	"github.com/jonswain/sudsolve/internal/usecase"
	"github.com/jonswain/sudsolve/internal/verifier"
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON solving API over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

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
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := viper.GetString("addr")
	dataDir := viper.GetString("data_dir")

	uc := usecase.NewService(
		solver.NewPropagation(),
		verifier.New(),
		hint.NewSingles(),
		storage.NewFS(dataDir),
	)
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{"addr": addr, "data_dir": dataDir}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
