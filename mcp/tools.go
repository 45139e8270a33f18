package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/sitemapgen/config"
	"github.com/ka2n/sitemapgen/generate"
	"github.com/ka2n/sitemapgen/manifest"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
)

var validate = validator.New()

func InitTools() []server.ServerTool {
	return []server.ServerTool{
		newServerTool(GenerateSitemap()),
		newServerTool(GenerateSitemapIndex()),
		newServerTool(ValidateManifest()),
	}
}

type manifestArguments struct {
	Manifest string `mapstructure:"manifest" validate:"required"`
	Indent   string `mapstructure:"indent" validate:"omitempty,max=16"`
}

func decodeArguments(ctx context.Context, req mcp.CallToolRequest) (manifestArguments, error) {
	var args manifestArguments
	if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
		return args, err
	}
	if err := validate.StructCtx(ctx, args); err != nil {
		return args, err
	}
	indent, err := config.ParseIndent(args.Indent)
	if err != nil {
		return args, err
	}
	args.Indent = indent
	return args, nil
}

// errorText prefers the user facing failure message
func errorText(err error) string {
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}

func GenerateSitemap() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"generate_sitemap",
			mcp.WithDescription("Render the URLs of a sitemap manifest as a single sitemaps.org XML sitemap"),
			mcp.WithString("manifest", mcp.Required(), mcp.Description("Manifest in YAML or JSON with a urls list")),
			mcp.WithString("indent", mcp.Description("Indentation: tab, none, a number of spaces or literal whitespace; empty for compact output")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := decodeArguments(ctx, req)
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			m, err := manifest.Parse([]byte(args.Manifest))
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			urls, err := m.URLs()
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			set, err := sitemap.NewURLSet(urls)
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			b, err := set.Bytes(sitemap.WithIndent(args.Indent))
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}

func GenerateSitemapIndex() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"generate_sitemap_index",
			mcp.WithDescription("Render the sitemaps list of a manifest as a sitemap index"),
			mcp.WithString("manifest", mcp.Required(), mcp.Description("Manifest in YAML or JSON with a sitemaps list")),
			mcp.WithString("indent", mcp.Description("Indentation: tab, none, a number of spaces or literal whitespace; empty for compact output")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := decodeArguments(ctx, req)
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			m, err := manifest.Parse([]byte(args.Manifest))
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			index, err := sitemap.NewSitemapIndex(m.Sitemaps())
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			b, err := index.Bytes(sitemap.WithIndent(args.Indent))
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}

func ValidateManifest() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"validate_manifest",
			mcp.WithDescription("Check a sitemap manifest and report how many URLs, extensions and files it produces"),
			mcp.WithString("manifest", mcp.Required(), mcp.Description("Manifest in YAML or JSON")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := decodeArguments(ctx, req)
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}

			type Report struct {
				Valid   bool              `json:"valid"`
				Error   string            `json:"error,omitempty"`
				Summary *generate.Summary `json:"summary,omitempty"`
			}

			report := Report{Valid: true}
			m, err := manifest.Parse([]byte(args.Manifest))
			if err == nil {
				var urls []sitemap.URL
				if urls, err = m.URLs(); err == nil {
					s := generate.Summarize(urls, sitemap.MaxURLs)
					report.Summary = &s
				}
			}
			if err != nil {
				report.Valid = false
				report.Error = errorText(err)
			}

			b, err := json.Marshal(report)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		}
}
