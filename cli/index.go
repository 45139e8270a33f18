package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ka2n/sitemapgen/generate"
	"github.com/ka2n/sitemapgen/manifest"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/spf13/cobra"
)

var (
	indexIndent indentFlag

	indexCmd = &cobra.Command{
		Use:   "index <manifest>",
		Short: "Write a sitemap index from the manifest's sitemaps list",
		Long: `Index writes a sitemap index that references the sitemaps listed under
"sitemaps" in the manifest. Use "-" as --file to write to standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: runIndex,
	}
)

func init() {
	indexCmd.Flags().StringP("out", "o", ".", "Output directory")
	indexCmd.Flags().StringP("file", "f", generate.DefaultIndexName, `File name inside the output directory, or "-" for stdout`)
	indexCmd.Flags().Var(&indexIndent, "indent", "Indent output: tab, none, or a number of spaces")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	index, err := sitemap.NewSitemapIndex(m.Sitemaps())
	if err != nil {
		return err
	}

	opts := sitemap.WithIndent(cfg.Indent)
	name, _ := cmd.Flags().GetString("file")
	if name == "-" {
		return index.Write(os.Stdout, opts)
	}

	path := filepath.Join(cfg.OutputDir, name)
	if err := index.WriteToFile(path, opts); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", styled(titleStyle, "Wrote"), styled(pathStyle, path))
	return nil
}
