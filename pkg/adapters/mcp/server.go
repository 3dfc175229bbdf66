// Package mcp exposes icon validation and repair as Model Context
// Protocol tools, so agent hosts can lint icon trees they hold.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iconlint/iconlint"
	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/internal/scene"
	"github.com/iconlint/iconlint/pkg/adapters/memory"
	"github.com/iconlint/iconlint/pkg/domain"
)

// ValidateResponse is the structured result of the validate_icon tool.
type ValidateResponse struct {
	IsValid bool             `json:"isValid" jsonschema_description:"Whether the icon passed every validator"`
	Report  *iconlint.Report `json:"report" jsonschema_description:"Per-validator results"`
}

// RepairResponse is the structured result of the repair_icon tool.
type RepairResponse struct {
	Run    domain.RunResult `json:"run" jsonschema_description:"Pipeline outcome with completed steps"`
	Report *iconlint.Report `json:"report" jsonschema_description:"Pre-repair validation report"`
	Icon   *domain.Node     `json:"icon" jsonschema_description:"The icon tree after repair"`
}

// SuggestResponse is the structured result of the suggest_name tool.
type SuggestResponse struct {
	Suggestion string `json:"suggestion" jsonschema_description:"A conforming icon name"`
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    *iconlint.Engine
	set       *rules.Set
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(engine *iconlint.Engine, set *rules.Set, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		set:       set,
		logger:    logger,
		mcpServer: server.NewMCPServer("iconlint-mcp", strings.TrimSpace(iconlint.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server over SSE on the given port and shuts down
// when the context is canceled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("mcp server listening", "transport", "sse", "addr", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_icon",
		mcp.WithDescription("Validate an icon scene tree against the design contract: structure, sizing, stroke widths, safety zones and naming."),
		mcp.WithObject("icon", mcp.Required(), mcp.Description("The icon frame node as a JSON object")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Icon category: 'glyph' or 'spot'")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	repairTool := mcp.NewTool("repair_icon",
		mcp.WithDescription("Repair an icon scene tree: outline strokes, union same-color shapes, flatten, bind color variables and describe. Returns the repaired tree."),
		mcp.WithObject("icon", mcp.Required(), mcp.Description("The icon frame node as a JSON object")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Icon category: 'glyph' or 'spot'")),
		mcp.WithOutputSchema[RepairResponse](),
	)
	s.mcpServer.AddTool(repairTool, mcp.NewStructuredToolHandler(s.handleRepair))

	suggestTool := mcp.NewTool("suggest_name",
		mcp.WithDescription("Suggest a conforming icon name (kebab-case for glyphs, snake_case for spots)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("The candidate name")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Icon category: 'glyph' or 'spot'")),
		mcp.WithOutputSchema[SuggestResponse](),
	)
	s.mcpServer.AddTool(suggestTool, mcp.NewStructuredToolHandler(s.handleSuggest))
}

// decodeIconArgs pulls the icon tree and category out of tool arguments.
func decodeIconArgs(args map[string]interface{}) (*domain.Node, domain.Category, error) {
	raw, ok := args["icon"].(map[string]interface{})
	if !ok {
		return nil, "", fmt.Errorf("icon must be a JSON object")
	}
	node, err := scene.NodeFromMap(raw)
	if err != nil {
		return nil, "", err
	}
	categoryArg, _ := args["category"].(string)
	category, err := domain.ParseCategory(categoryArg)
	if err != nil {
		return nil, "", err
	}
	return node, category, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	node, category, err := decodeIconArgs(args)
	if err != nil {
		return ValidateResponse{}, err
	}
	report := s.engine.Validate(ctx, node, category)
	return ValidateResponse{IsValid: report.IsValid(), Report: report}, nil
}

func (s *Server) handleRepair(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RepairResponse, error) {
	node, category, err := decodeIconArgs(args)
	if err != nil {
		return RepairResponse{}, err
	}
	mut := memory.NewMutator(s.set)
	result, report, err := s.engine.Repair(ctx, node, category, mut, nil)
	if err != nil {
		return RepairResponse{}, fmt.Errorf("repair failed: %w", err)
	}
	return RepairResponse{Run: result, Report: report, Icon: node}, nil
}

func (s *Server) handleSuggest(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SuggestResponse, error) {
	name, _ := args["name"].(string)
	categoryArg, _ := args["category"].(string)
	category, err := domain.ParseCategory(categoryArg)
	if err != nil {
		return SuggestResponse{}, err
	}
	return SuggestResponse{Suggestion: s.engine.SuggestName(name, category)}, nil
}
