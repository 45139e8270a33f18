package cli

import (
	"fmt"

	"github.com/ka2n/sitemapgen/generate"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	buildIndent indentFlag
	openFlag    bool

	buildCmd = &cobra.Command{
		Use:   "build <manifest>",
		Short: "Write sitemap files and a sitemap index",
		Long: `Build reads a manifest and writes sitemap_1.xml, sitemap_2.xml, ... plus
sitemapindex.xml into the output directory. A file holds at most --max-urls
entries, and at most 1000 when it contains news.`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringP("out", "o", ".", "Output directory")
	buildCmd.Flags().String("base-url", "", "URL the output directory is published at")
	buildCmd.Flags().Int("max-urls", 50000, "Maximum number of URLs per sitemap file")
	buildCmd.Flags().Var(&buildIndent, "indent", "Indent output: tab, none, or a number of spaces")
	buildCmd.Flags().BoolVar(&openFlag, "open", false, "Open the sitemap index in the browser when done")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	m, urls, err := loadURLs(args[0])
	if err != nil {
		return err
	}

	result, err := generate.Generate(cmd.Context(), urls, generate.Options{
		Dir:               cfg.OutputDir,
		BaseURL:           baseURL(m),
		MaxURLsPerSitemap: cfg.MaxURLsPerSitemap,
		Indent:            cfg.Indent,
	})
	if err != nil {
		return err
	}

	fmt.Println(styled(titleStyle, fmt.Sprintf("Wrote %d sitemap(s) with %d URLs", len(result.Files), len(urls))))
	for _, f := range result.Files {
		fmt.Printf("  %s %s\n", styled(pathStyle, f.Path), styled(countStyle, fmt.Sprintf("(%d URLs)", f.URLs)))
	}
	fmt.Printf("  %s\n", styled(pathStyle, result.IndexPath))

	if openFlag {
		if err := browser.OpenFile(result.IndexPath); err != nil {
			return failure.Wrap(err)
		}
	}
	return nil
}
