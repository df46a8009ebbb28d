package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/infra/logger"
	"github.com/aalvaropc/formdraft/internal/infra/workspacefinder"
	"github.com/aalvaropc/formdraft/internal/server"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var addr string
	var metricsAddr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the submission endpoint (POST " + server.SubmitPath + ")",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkspaceRoot(g.workspace)
			if err != nil {
				return err
			}

			cfg, err := workspacefinder.LoadConfig(root)
			if err != nil && !domain.IsKind(err, domain.KindNotFound) {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("metrics-addr") {
				cfg.Server.MetricsAddr = metricsAddr
			}

			cleanup, lerr := logger.Setup(logger.Config{
				Root:    root,
				Debug:   g.debug,
				Console: cmd.ErrOrStderr(),
			})
			if lerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: file logging disabled: %v\n", lerr)
			}
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.WithLogger(logger.L()))
			return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.MetricsAddr)
		},
	}

	def := domain.DefaultConfig().Server
	c.Flags().StringVar(&addr, "addr", def.Addr, "Listen address (overrides formdraft.yaml)")
	c.Flags().StringVar(&metricsAddr, "metrics-addr", def.MetricsAddr, "Prometheus metrics listen address; empty disables")
	return c
}
