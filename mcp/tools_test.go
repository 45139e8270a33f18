package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func call(t *testing.T, newTool func() (mcp.Tool, server.ToolHandlerFunc), args map[string]interface{}) (string, bool) {
	t.Helper()
	_, handler := newTool()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestGenerateSitemap(t *testing.T) {
	manifest := "urls:\n  - loc: https://example.com/\n    lastmod: 2005-01-01T00:00:00+00:00\n    changefreq: monthly\n    priority: 0.8\n"
	got, isErr := call(t, GenerateSitemap, map[string]interface{}{"manifest": manifest})
	if isErr {
		t.Fatalf("unexpected tool error: %s", got)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` +
		`<url><loc>https://example.com/</loc><lastmod>2005-01-01T00:00:00+00:00</lastmod>` +
		`<changefreq>monthly</changefreq><priority>0.8</priority></url></urlset>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generate_sitemap mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateSitemapIndex(t *testing.T) {
	manifest := `{"sitemaps": [{"loc": "https://example.com/sitemap_1.xml"}]}`
	got, isErr := call(t, GenerateSitemapIndex, map[string]interface{}{"manifest": manifest, "indent": "  "})
	if isErr {
		t.Fatalf("unexpected tool error: %s", got)
	}
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<sitemapindex xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <sitemap>\n" +
		"    <loc>https://example.com/sitemap_1.xml</loc>\n" +
		"  </sitemap>\n" +
		"</sitemapindex>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generate_sitemap_index mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateSitemap_NamedIndent(t *testing.T) {
	manifest := "urls:\n  - loc: https://example.com/\n"
	got, isErr := call(t, GenerateSitemap, map[string]interface{}{"manifest": manifest, "indent": "tab"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", got)
	}
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"\t<url>\n" +
		"\t\t<loc>https://example.com/</loc>\n" +
		"\t</url>\n" +
		"</urlset>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generate_sitemap mismatch (-want +got):\n%s", diff)
	}
}

func TestToolErrors(t *testing.T) {
	tests := []struct {
		name    string
		tool    func() (mcp.Tool, server.ToolHandlerFunc)
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name:    "missing manifest",
			tool:    GenerateSitemap,
			args:    map[string]interface{}{},
			wantMsg: "Manifest",
		},
		{
			name:    "priority out of range",
			tool:    GenerateSitemap,
			args:    map[string]interface{}{"manifest": "urls:\n  - loc: https://example.com/\n    priority: 2\n"},
			wantMsg: "priority must be at most 1, got 2",
		},
		{
			name:    "indent is not whitespace",
			tool:    GenerateSitemap,
			args:    map[string]interface{}{"manifest": "urls:\n  - loc: https://example.com/\n", "indent": "dots"},
			wantMsg: `invalid indent "dots"`,
		},
		{
			name:    "invalid sitemap entry",
			tool:    GenerateSitemapIndex,
			args:    map[string]interface{}{"manifest": "sitemaps:\n  - lastmod: 2024-01-01\n"},
			wantMsg: `sitemaps[0].loc failed the "required" rule`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isErr := call(t, tt.tool, tt.args)
			if !isErr {
				t.Fatalf("expected a tool error, got %s", got)
			}
			if !strings.Contains(got, tt.wantMsg) {
				t.Errorf("error %q does not mention %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidateManifest(t *testing.T) {
	type report struct {
		Valid   bool           `json:"valid"`
		Error   string         `json:"error"`
		Summary map[string]any `json:"summary"`
	}

	t.Run("valid", func(t *testing.T) {
		manifest := "urls:\n  - loc: https://example.com/\n    images: [{loc: https://example.com/a.png}]\n  - loc: https://example.com/b\n"
		got, isErr := call(t, ValidateManifest, map[string]interface{}{"manifest": manifest})
		if isErr {
			t.Fatalf("unexpected tool error: %s", got)
		}
		var r report
		if err := json.Unmarshal([]byte(got), &r); err != nil {
			t.Fatal(err)
		}
		if !r.Valid || r.Error != "" {
			t.Fatalf("report = %+v, want valid", r)
		}
		if r.Summary["urls"] != 2.0 || r.Summary["images"] != 1.0 || r.Summary["files"] != 1.0 {
			t.Errorf("unexpected summary %v", r.Summary)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		manifest := "urls:\n  - loc: https://example.com/\n    changefreq: sometimes\n"
		got, isErr := call(t, ValidateManifest, map[string]interface{}{"manifest": manifest})
		if isErr {
			t.Fatalf("unexpected tool error: %s", got)
		}
		var r report
		if err := json.Unmarshal([]byte(got), &r); err != nil {
			t.Fatal(err)
		}
		want := report{Valid: false, Error: `invalid manifest: urls[0].changefreq failed the "oneof" rule`}
		if diff := cmp.Diff(want, r); diff != "" {
			t.Errorf("report mismatch (-want +got):\n%s", diff)
		}
	})
}
