package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/plandigit/line-tools-mcp/internal/config"
	"github.com/plandigit/line-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("line-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("line-tools-mcp - MCP server for line extraction from raster images")
			fmt.Println()
			fmt.Println("Usage: line-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LINE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  LINE_MCP_CONFIG=<path>      YAML file with detection defaults")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Logging goes to stderr; stdout is reserved for the MCP protocol.
	log.SetOutput(os.Stderr)
	if level, err := log.ParseLevel(os.Getenv("LINE_MCP_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.WithFields(log.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("starting line-tools-mcp")

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
