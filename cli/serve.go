package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ka2n/sitemapgen/generate"
	"github.com/ka2n/sitemapgen/log"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve generated sitemaps over HTTP",
	Long: `Serve exposes sitemapindex.xml and sitemap_N.xml from the output directory
under --prefix. Run build first.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("out", "o", ".", "Directory holding the generated files")
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("prefix", "/", "URL path prefix of the sitemap files")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           generate.NewHandler(cfg.OutputDir, cfg.Serve.Prefix),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("serving sitemaps", "addr", cfg.Serve.Addr, "dir", cfg.OutputDir, "prefix", cfg.Serve.Prefix)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return failure.Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return failure.Wrap(err)
	}
	log.Info("server stopped")
	return nil
}
