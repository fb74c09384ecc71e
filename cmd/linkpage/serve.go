package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveFilter string

var serveCmd = &cobra.Command{
	Use:   "serve [document]",
	Short: "Serve the link page over HTTP",
	Long: `Start an HTTP server that renders the page on every request.

Each request runs its own render, so document edits show up on reload.
Routes:
  /            the page (?format=json or ?format=yaml for data)
  /data.json   the raw document, when it is a local file
  /healthz     liveness probe`,
	Example: `  linkpage serve data.json
  linkpage serve https://example.com --addr :8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: withContainer(runServe),
}

func init() {
	serveCmd.Flags().String(keyServerAddr, "", "listen address (default 127.0.0.1:8080)")
	serveCmd.Flags().String(keyRenderTimeout, "", "per-request render timeout (e.g. 10s)")
	serveCmd.Flags().StringVar(&serveFilter, "filter", "", "Link filter expression applied to every render")

	_ = viper.BindPFlag(keyServerAddr, serveCmd.Flags().Lookup(keyServerAddr))
	_ = viper.BindPFlag(keyRenderTimeout, serveCmd.Flags().Lookup(keyRenderTimeout))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cc *CommandContext, _ *cobra.Command, _ []string) error {
	opts := CommonOptions{Filter: serveFilter}
	filter, err := opts.CompileFilter()
	if err != nil {
		return err
	}

	srv, err := cc.Container.Server(filter)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cc.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cc.Logger.Info("serving link page",
		"addr", cc.Container.SystemConfig().Server.Addr,
		"document", cc.Container.DocumentSource().Location())

	return srv.ListenAndServe(ctx)
}
