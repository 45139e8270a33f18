// Package mcp serves sitemap generation as Model Context Protocol tools.
//
// Tools take a manifest (YAML or JSON, see package manifest) as a string and
// return sitemap XML or a JSON summary, so an assistant can build and check
// sitemaps without touching the file system.
package mcp
