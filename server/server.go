package server

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wippyai/calculator/errors"
	"github.com/wippyai/calculator/session"
)

// Server identity reported during the MCP handshake.
const (
	Name    = "calculator"
	Version = "0.1.0"
)

// CalculatorServer serves one calculator session over MCP
type CalculatorServer struct {
	mcpServer *server.MCPServer
	session   *session.Session
	logger    *zap.Logger
}

// NewCalculatorServer creates a server backed by s. A nil logger disables logging.
func NewCalculatorServer(s *session.Session, logger *zap.Logger) *CalculatorServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	cs := &CalculatorServer{
		mcpServer: server.NewMCPServer(Name, Version, server.WithToolCapabilities(false)),
		session:   s,
		logger:    logger,
	}
	cs.registerTools()
	return cs
}

func (s *CalculatorServer) registerTools() {
	pressTool := NewPressTool(s.session)
	s.mcpServer.AddTool(pressTool.GetTool(), pressTool.Handle)

	stateTool := NewStateTool(s.session)
	s.mcpServer.AddTool(stateTool.GetTool(), stateTool.Handle)

	allClearTool := NewAllClearTool(s.session)
	s.mcpServer.AddTool(allClearTool.GetTool(), allClearTool.Handle)
}

// MCPServer returns the underlying MCP server.
func (s *CalculatorServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve reads requests from in and writes responses to out until ctx is
// cancelled or in is closed.
func (s *CalculatorServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	if s.session == nil {
		return errors.NotInitialized(errors.PhaseTransport, "session")
	}

	s.logger.Info("serving MCP on stdio", zap.String("session", s.session.ID()))

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return errors.Wrap(errors.PhaseTransport, errors.KindIO, err, "serve MCP")
	}

	s.logger.Info("MCP session closed", zap.String("session", s.session.ID()))
	return nil
}
