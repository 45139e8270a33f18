package cli

import (
	"fmt"
	"os"

	"github.com/ka2n/sitemapgen/config"
	"github.com/ka2n/sitemapgen/log"
	"github.com/ka2n/sitemapgen/manifest"
	"github.com/ka2n/sitemapgen/mcp"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Command line flags
	configFlag string

	// cfg is loaded before any subcommand runs
	cfg *config.Config

	// Root command
	rootCmd = &cobra.Command{
		Use:           "sitemapgen",
		Short:         "Generate XML sitemaps and sitemap indexes",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `sitemapgen builds sitemaps.org XML sitemaps from a YAML or JSON manifest.
It supports the image, video and news extensions and hreflang alternates,
splits large sites into several files referenced by a sitemap index, and can
serve the result or announce it to search engines through IndexNow.

  sitemapgen build site.yaml --out public/sitemaps --base-url https://example.com/sitemaps/`,
		PersistentPreRunE: loadConfig,
	}

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about sitemapgen",
		Run: func(cmd *cobra.Command, args []string) {
			info := sitemap.BuildInfo()
			fmt.Printf("sitemapgen version %s\n", info.Version)
			fmt.Printf("  commit: %s\n", info.Commit)
			fmt.Printf("  built:  %s\n", info.Time)
			if info.Modified {
				fmt.Println("  (modified)")
			}
			fmt.Printf("  go:     %s\n", info.GoVersion)
		},
	}
)

// configFlags maps config keys to the flag names that override them
var configFlags = map[string]string{
	"output_dir":            "out",
	"base_url":              "base-url",
	"indent":                "indent",
	"max_urls_per_sitemap":  "max-urls",
	"serve.addr":            "addr",
	"serve.prefix":          "prefix",
	"indexnow.endpoint":     "endpoint",
	"indexnow.key":          "key",
	"indexnow.key_location": "key-location",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file (default .sitemapgen.yaml in the current or home directory)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	v := config.New(configFlag, paths...)
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c
	log.Debug("config loaded", "file", v.ConfigFileUsed(), "output_dir", cfg.OutputDir)
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range configFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return failure.Wrap(err)
		}
	}
	return nil
}

func loadURLs(path string) (*manifest.Manifest, []sitemap.URL, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	urls, err := m.URLs()
	if err != nil {
		return nil, nil, err
	}
	return m, urls, nil
}

// baseURL prefers the command line and config over the manifest
func baseURL(m *manifest.Manifest) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return m.BaseURL
}
