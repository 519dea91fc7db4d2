// Package main provides the socialgraph CLI and MCP server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/buildinfo"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/config"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, cfg, log).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logger.Sync(log)
		os.Exit(1)
	}
}

func newApp(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:    "socialgraph",
		Version: buildinfo.Version,
		Usage:   "Query a social graph of people, products and companies",
		Commands: []*cli.Command{
			peopleCommand(out, cfg, log),
			productsCommand(out, cfg, log),
			networkCommand(out, cfg, log),
			productNetworkCommand(out, cfg, log),
			companyNetworkCommand(out, cfg, log),
			statsCommand(out, cfg, log),
			serveCommand(cfg, log),
		},
	}
}

func dataFlag(cfg *config.Config) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "path of the input data file",
		Value:   cfg.DataFile,
	}
}
