// Command toolserver is a demo MCP server speaking stdio, exposing the tools
// in the tools package. Pair it with mcpchat:
//
//	mcpchat ./toolserver
//
// Stdout carries the protocol, so all diagnostics go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fahimudin15/mcp-client/tools"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		cancel()
	}()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "toolserver", Version: "dev"}, nil)
	if err := tools.Register(server); err != nil {
		fmt.Fprintf(os.Stderr, "register tools: %v\n", err)
		os.Exit(1)
	}

	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
