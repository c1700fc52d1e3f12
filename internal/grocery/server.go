package grocery

import (
	"context"

	"github.com/local-mcps/grocery-mcps/config"
	"github.com/local-mcps/grocery-mcps/internal/common"
	"github.com/local-mcps/grocery-mcps/pkg/mcp"
)

type Server struct {
	config *config.GroceryConfig
	client *Client
	logger *common.Logger
}

func NewServer(cfg *config.GroceryConfig, logger *common.Logger) *Server {
	return &Server{
		config: cfg,
		client: NewClient(cfg, logger),
		logger: logger,
	}
}

func (s *Server) RegisterTools(server *mcp.Server) {
	for _, tool := range []*mcp.Tool{
		s.searchProductsTool(),
		s.getShoppingListsTool(),
		s.getShoppingListTool(),
		s.addToListTool(),
		s.removeFromListTool(),
		s.searchAndAddTool(),
	} {
		server.RegisterTool(s.withFailureLog(tool))
	}
}

func (s *Server) withFailureLog(tool *mcp.Tool) *mcp.Tool {
	handler := tool.Handler
	tool.Handler = func(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
		result, err := handler(ctx, params)
		if err != nil {
			common.LogToolFailure(s.logger, tool.Name, err)
		}
		return result, err
	}
	return tool
}
