package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fahimudin15/mcp-client/internal/mcpsession"
	"github.com/fahimudin15/mcp-client/internal/provider"
	"github.com/fahimudin15/mcp-client/internal/runner"
	"github.com/fahimudin15/mcp-client/memory"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mcpchat <server-command> [args...]")
		os.Exit(1)
	}
	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	// Load the transcript log if one exists. It is a write-only record for
	// the user; nothing from it is replayed into prompts.
	persistPath := "conversation.json"
	persisted, err := memory.LoadTranscript(persistPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load transcript log: %v\n", err)
	}

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	serverCmd := os.Args[1:]
	session := mcpsession.New(serverCmd)
	defer func() {
		if err := session.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: session close: %v\n", err)
		}
	}()

	fmt.Printf("Connecting to server: %s\n", strings.Join(serverCmd, " "))
	if err := session.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to server: %v\n", err)
		os.Exit(1)
	}
	catalog, err := session.ListTools(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list server tools: %v\n", err)
		os.Exit(1)
	}
	names := make([]string, 0, len(catalog))
	for _, d := range catalog {
		names = append(names, d.Name)
	}
	fmt.Printf("Connected to server with tools: %s\n", strings.Join(names, ", "))

	r := runner.New(provider.NewModel(provider.NewClient()), session)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Type your queries or 'quit' to exit.")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94mQuery\u001b[0m: ")
		var (
			query string
			ok    bool
		)
		select {
		case <-ctx.Done():
			break outer
		case query, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			break
		}

		// Query-level failures are reported and the loop keeps accepting
		// input; only startup failures are fatal.
		transcript, err := r.ProcessQuery(ctx, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\n\u001b[93mAssistant\u001b[0m: %s\n", transcript)

		persisted = append(persisted,
			memory.Entry{Role: "user", Text: query},
			memory.Entry{Role: "assistant", Text: transcript},
		)
		if err := memory.SaveTranscript(persistPath, persisted); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save transcript log: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}
