package mcp

import (
	"github.com/ka2n/sitemapgen/log"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for sitemapgen
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer() *Server {
	s := server.NewMCPServer("sitemapgen", sitemap.Version)
	s.AddTools(InitTools()...)
	return &Server{
		server: s,
	}
}

// Run serves requests on stdin and stdout until the client disconnects
func (s *Server) Run() error {
	log.Debug("starting MCP server")
	return server.ServeStdio(s.server)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
