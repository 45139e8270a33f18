// Package cli implements the sitemapgen command-line interface.
//
// Commands read a manifest (see package manifest), write sitemap files and
// indexes, report on their contents, preview the generated XML in a pager,
// serve the output directory and notify search engines through IndexNow.
// Settings come from .sitemapgen.yaml, SITEMAPGEN_* variables and flags,
// in increasing order of precedence.
package cli
