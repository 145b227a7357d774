package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <events-file>",
	Short: "Serve one recording's pulses over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		addr := cfg.Serve.HTTPAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		source, res, err := loadRecording(cfg, args[0])
		if err != nil {
			return err
		}

		srv := web.New(addr, web.NewView(source, res))
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		log.Printf("serving %s on %s", source, addr)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		s := <-sigCh
		log.Printf("received %v, shutting down", s)

		return srv.Shutdown(context.Background())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "http", "", "HTTP listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
