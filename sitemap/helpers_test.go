package sitemap

import (
	"strings"
	"testing"

	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
)

const declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// renderElement renders a single element without the XML declaration
func renderElement(t *testing.T, e *xmlnode.Element) string {
	t.Helper()
	doc := &xmlnode.Document{Version: XMLVersion, Encoding: Encoding, Root: e}
	s, err := doc.String(xmlnode.Options{})
	if err != nil {
		t.Fatalf("render %s: %v", e.Name, err)
	}
	return strings.TrimPrefix(s, declaration)
}
