package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/config"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/metrics"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/server"
)

func serveCommand(cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Load the data file and serve it as MCP tools",
		Flags: []cli.Flag{
			dataFlag(cfg),
			&cli.StringFlag{
				Name:  "transport",
				Usage: "transport to use: stdio or sse",
				Value: cfg.Transport,
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "address to listen on when using SSE transport",
				Value: cfg.Addr,
			},
			&cli.StringFlag{
				Name:  "sse-endpoint",
				Usage: "SSE endpoint path when using SSE transport",
				Value: cfg.SSEEndpoint,
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "expose Prometheus metrics",
				Value: cfg.MetricsPrometheus,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run := *cfg
			run.DataFile = cmd.String("data")
			run.Transport = cmd.String("transport")
			run.Addr = cmd.String("addr")
			run.SSEEndpoint = cmd.String("sse-endpoint")
			run.MetricsPrometheus = cmd.Bool("metrics")
			if err := run.Validate(); err != nil {
				return err
			}

			if err := metrics.Init(run.MetricsPrometheus, run.MetricsAddr); err != nil {
				return fmt.Errorf("failed to start metrics: %w", err)
			}

			svc, err := loadService(cmd, log)
			if err != nil {
				return err
			}
			mcpServer := server.NewMCPServer(svc, log)

			log.Info("starting socialgraph MCP server",
				zap.String("transport", run.Transport),
				zap.String("data", run.DataFile),
			)
			switch run.Transport {
			case "sse":
				err = mcpServer.RunSSE(ctx, run.Addr, run.SSEEndpoint)
			default:
				err = mcpServer.Run(ctx)
			}
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("server error: %w", err)
			}
			log.Info("server stopped")
			return nil
		},
	}
}
