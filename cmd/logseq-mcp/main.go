// logseq-mcp is a stdio MCP server exposing query, read, write, and
// analyze tools over a local Logseq instance's HTTP API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vthunder/logseq-mcp/internal/config"
	"github.com/vthunder/logseq-mcp/internal/logging"
	"github.com/vthunder/logseq-mcp/internal/logseq"
	"github.com/vthunder/logseq-mcp/internal/tools"
)

const version = "1.0.0"

func main() {
	loadDotenv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logging.Info("main", "logseq-mcp %s, API at %s", version, cfg.APIURL())

	client := logseq.NewClient(cfg)

	s := server.NewMCPServer(
		"logseq-mcp",
		version,
		server.WithToolCapabilities(true),
	)
	tools.Register(s, client)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotenv loads the first .env found next to the executable's parent
// dir, the executable itself, or the working directory. MCP hosts launch
// the binary from arbitrary directories, so cwd alone is not enough.
func loadDotenv() {
	envPaths := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		envPaths = append([]string{
			filepath.Join(filepath.Dir(exeDir), ".env"),
			filepath.Join(exeDir, ".env"),
		}, envPaths...)
	}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}
}
