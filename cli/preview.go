package cli

import (
	"fmt"
	"os"

	"github.com/ka2n/sitemapgen/generate"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	partFlag int

	previewCmd = &cobra.Command{
		Use:   "preview <manifest>",
		Short: "Show the generated XML in a pager",
		Long: `Preview renders one sitemap file of the manifest, indented, and shows it
in a pager with / search. When stdout is not a terminal the XML is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runPreview,
	}
)

func init() {
	previewCmd.Flags().IntVarP(&partFlag, "part", "p", 1, "Which sitemap file to show, starting at 1")
	previewCmd.Flags().Int("max-urls", 50000, "Maximum number of URLs per sitemap file")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, urls, err := loadURLs(args[0])
	if err != nil {
		return err
	}

	content, err := previewPart(urls, cfg.MaxURLsPerSitemap, partFlag)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	if err := RunPager(content); err != nil {
		return failure.Wrap(err)
	}
	return nil
}

func previewPart(urls []sitemap.URL, limit, part int) (string, error) {
	chunks := generate.Chunk(urls, limit)
	if len(chunks) == 0 {
		chunks = [][]sitemap.URL{nil}
	}
	if part < 1 || part > len(chunks) {
		return "", failure.New(PartOutOfRange,
			failure.Message(fmt.Sprintf("part %d does not exist, the manifest produces %d sitemap file(s)", part, len(chunks))),
			failure.Context{"part": fmt.Sprint(part)},
		)
	}

	set, err := sitemap.NewURLSet(chunks[part-1])
	if err != nil {
		return "", err
	}
	b, err := set.Bytes(sitemap.WithIndent("  "))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
