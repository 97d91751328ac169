// Package mcpsession implements the session capability: a persistent
// connection to a tool server subprocess speaking MCP over stdio. One session
// serves the whole client lifetime and is used by one in-flight query at a
// time.
package mcpsession

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fahimudin15/mcp-client/internal/chat"
)

// transportBuilder is overridden in tests to stub the transport factory.
var transportBuilder = buildTransport

// Session wraps the official MCP SDK client. Connection is established lazily
// on first use and includes the protocol initialize handshake.
type Session struct {
	implClient *mcpsdk.Client
	session    *mcpsdk.ClientSession
	command    []string
	once       sync.Once
	connectErr error
}

// New constructs a session for the given server command argv. The subprocess
// is not spawned until Connect or the first operation.
func New(command []string) *Session {
	impl := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "mcpchat", Version: "dev"}, nil)
	return &Session{implClient: impl, command: command}
}

// Connect spawns the server subprocess and performs the initialize handshake.
func (s *Session) Connect(ctx context.Context) error {
	return s.ensureConnected(ctx)
}

func (s *Session) ensureConnected(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.once.Do(func() {
		if s.implClient == nil {
			s.connectErr = fmt.Errorf("mcpsession: nil client implementation")
			return
		}
		transport, err := transportBuilder(ctx, s.command)
		if err != nil {
			s.connectErr = fmt.Errorf("build transport: %w", err)
			return
		}
		session, err := s.implClient.Connect(ctx, transport, nil)
		if err != nil {
			s.connectErr = fmt.Errorf("connect to server: %w", err)
			return
		}
		s.session = session
	})
	return s.connectErr
}

// ListTools fetches the server's current tool list as catalog descriptors.
func (s *Session) ListTools(ctx context.Context) ([]chat.ToolDescriptor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.ensureConnected(ctx); err != nil {
		return nil, err
	}
	var catalog []chat.ToolDescriptor
	for tool, err := range s.session.Tools(ctx, nil) {
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		catalog = append(catalog, toDescriptor(tool))
	}
	return catalog, nil
}

// CallTool invokes a remote tool and returns the stringified result content.
// Tool-level failures (IsError results) are returned as errors, matching the
// fail-fast contract of the conversation loop.
func (s *Session) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.ensureConnected(ctx); err != nil {
		return "", err
	}
	result, err := s.session.CallTool(ctx, &mcpsdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return "", fmt.Errorf("call tool %s: %w", name, err)
	}
	text := resultText(result)
	if result.IsError {
		return "", fmt.Errorf("tool %s failed: %s", name, text)
	}
	return text, nil
}

// Close shuts down the underlying session, if any.
func (s *Session) Close() error {
	if s == nil || s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	return err
}

func buildTransport(ctx context.Context, command []string) (mcpsdk.Transport, error) {
	if len(command) == 0 || strings.TrimSpace(command[0]) == "" {
		return nil, fmt.Errorf("mcpsession: server command is empty")
	}
	argv := interpreterArgv(command)
	// #nosec G204 -- the server command comes from the operator's own CLI args
	cmd := exec.CommandContext(nonNilContext(ctx), argv[0], argv[1:]...)
	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

// interpreterArgv resolves script servers to their interpreters: .py runs
// under python3 and .js under node; anything else executes directly.
func interpreterArgv(command []string) []string {
	switch {
	case strings.HasSuffix(command[0], ".py"):
		return append([]string{"python3"}, command...)
	case strings.HasSuffix(command[0], ".js"):
		return append([]string{"node"}, command...)
	}
	return command
}

func nonNilContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}
