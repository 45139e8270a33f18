package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ka2n/sitemapgen/generate"
	"github.com/ka2n/sitemapgen/manifest"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest>",
	Short: "Validate a manifest and report what would be generated",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Int("max-urls", 50000, "Maximum number of URLs per sitemap file")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	m, urls, err := loadURLs(args[0])
	if err != nil {
		return err
	}
	md := inspectReport(args[0], m, urls, cfg.MaxURLsPerSitemap, baseURL(m))
	return printMarkdown(os.Stdout, md, isTerminal(os.Stdout))
}

func inspectReport(path string, m *manifest.Manifest, urls []sitemap.URL, limit int, base string) string {
	s := generate.Summarize(urls, limit)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", path)
	fmt.Fprintf(&b, "| | count |\n|---|---|\n")
	fmt.Fprintf(&b, "| URLs | %d |\n", s.URLs)
	fmt.Fprintf(&b, "| hreflang alternates | %d |\n", s.Links)
	fmt.Fprintf(&b, "| images | %d |\n", s.Images)
	fmt.Fprintf(&b, "| videos | %d |\n", s.Videos)
	fmt.Fprintf(&b, "| news articles | %d |\n", s.News)
	fmt.Fprintf(&b, "| sitemap files | %d |\n", s.Files)
	fmt.Fprintf(&b, "| index entries | %d |\n\n", len(m.SitemapEntries))

	namespaces := lo.Compact([]string{
		lo.Ternary(s.Namespaces.XHTML, "xhtml", ""),
		lo.Ternary(s.Namespaces.Image, "image", ""),
		lo.Ternary(s.Namespaces.Video, "video", ""),
		lo.Ternary(s.Namespaces.News, "news", ""),
	})
	if len(namespaces) == 0 {
		b.WriteString("Extensions: none\n")
	} else {
		fmt.Fprintf(&b, "Extensions: %s\n", strings.Join(namespaces, ", "))
	}
	if base != "" {
		fmt.Fprintf(&b, "\nIndex location: %s/%s\n", strings.TrimSuffix(base, "/"), generate.DefaultIndexName)
	}
	return b.String()
}
