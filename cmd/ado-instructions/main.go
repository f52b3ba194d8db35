// ADO Instructions: feature-to-hierarchy MCP server
//
// An MCP server that turns meeting transcripts, requirements text, or
// structured feature records into a validated Azure DevOps work item
// hierarchy (Epics with child Tasks).
//
// Usage:
//
//	ado-instructions serve                    # Start MCP server (stdio transport)
//	ado-instructions serve --transport http   # Serve Streamable HTTP instead
//	ado-instructions update                   # Update to the latest version
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	adoserver "github.com/arroz4/ado-instruction-mcp-server/internal/server"
	"github.com/arroz4/ado-instruction-mcp-server/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("ado-instructions v%s\n", adoserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	transport := fs.String("transport", "stdio", "transport to serve on: stdio or http")
	host := fs.String("host", "127.0.0.1", "host to bind (http transport)")
	port := fs.Int("port", 8000, "port to bind (http transport)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cleanup, err := adoserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Background version check — prints to stderr so it doesn't
	// interfere with MCP's stdio transport on stdout.
	go checkForUpdates()

	switch *transport {
	case "stdio":
		return server.ServeStdio(s)
	case "http":
		return serveHTTP(s, net.JoinHostPort(*host, fmt.Sprintf("%d", *port)))
	default:
		return fmt.Errorf("unknown transport %q: expected stdio or http", *transport)
	}
}

// serveHTTP runs the Streamable HTTP transport with graceful shutdown
// on SIGINT/SIGTERM.
func serveHTTP(s *server.MCPServer, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Serving MCP over HTTP on %s\n", addr)
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	}
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. This runs in a goroutine during
// "serve" and is best-effort — network failures are silently ignored.
func checkForUpdates() {
	release, err := updater.NewClient(adoserver.Version).Latest()
	if err != nil || !release.NewerThan(adoserver.Version) {
		return
	}
	fmt.Fprintf(os.Stderr,
		"\n  📦 Update available: v%s → v%s\n"+
			"     Run: ado-instructions update\n"+
			"     Release: %s\n\n",
		adoserver.Version, release.Version, release.PageURL,
	)
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "🔍 Checking for updates...\n")

	client := updater.NewClient(adoserver.Version)
	release, err := client.Latest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Update check failed: %v\n", err)
		os.Exit(1)
	}
	if !release.NewerThan(adoserver.Version) {
		fmt.Fprintf(os.Stderr, "✅ Already at the latest version (v%s)\n", adoserver.Version)
		return
	}

	fmt.Fprintf(os.Stderr, "📦 New version available: v%s → v%s\n", adoserver.Version, release.Version)
	fmt.Fprintf(os.Stderr, "⬇️  Downloading...\n")

	if err := client.Apply(release); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n   You can download manually from:\n   %s\n", release.PageURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "✅ Updated to v%s!\n", release.Version)
	fmt.Fprintf(os.Stderr, "   Restart ado-instructions to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ADO Instructions v%s — feature-to-hierarchy MCP server

Usage:
  ado-instructions serve [--transport stdio|http] [--host HOST] [--port PORT]
                 Start the MCP server (stdio by default)
  ado-instructions update
                 Update to the latest version

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "ado-instructions": {
        "command": "ado-instructions",
        "args": ["serve"]
      }
    }
  }

Environment:
  ADO_MCP_DATA_DIR         Directory for the generation archive (default ~/.ado-instructions)
  ADO_MCP_ORG_NAME         Organization name for generated work items
  ADO_MCP_ORG_INDUSTRY     Organization industry
  ADO_MCP_ORG_FOCUS_AREAS  Comma-separated focus areas
  ADO_MCP_ORG_PLATFORM     Target platform

Learn more: https://github.com/arroz4/ado-instruction-mcp-server
`, adoserver.Version)
}
