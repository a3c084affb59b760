package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "kennel/internal/adapters/mcp"
	"kennel/internal/app"
	"kennel/internal/config"
	"kennel/internal/logging"
)

func main() {
	dataDir := flag.String("data-dir", "", "directory holding kennel.db (default $KENNEL_DATA_DIR or ~/.local/share/kennel)")
	flag.Parse()

	overrides := map[string]any{}
	if *dataDir != "" {
		overrides["data_dir"] = *dataDir
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		logging.Default().Fatal("kennel-mcp", "err", err)
	}

	ctx := context.Background()
	svc, err := app.Open(ctx, cfg)
	if err != nil {
		logging.Default().Fatal("kennel-mcp", "err", err)
	}

	mcpServer := server.NewMCPServer(
		"kennel-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc.Repo, svc.Prefs, svc.ListDefaults())
	mcpadapter.RegisterWriteTools(mcpServer, svc.Repo, svc.Prefs)

	err = server.ServeStdio(mcpServer)
	if cerr := svc.Close(); cerr != nil {
		svc.Logger.Warn("close failed", "err", cerr)
	}
	if err != nil {
		svc.Logger.Error("kennel-mcp", "err", err)
		os.Exit(1)
	}
}
