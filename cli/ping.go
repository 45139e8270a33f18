package cli

import (
	"fmt"
	"net/url"

	"github.com/ka2n/sitemapgen/indexnow"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping <manifest>",
	Short: "Submit the manifest's URLs to IndexNow",
	Long: `Ping sends every URL of the manifest to an IndexNow endpoint. All URLs must
belong to one host. The key must be published at --key-location (or at
https://<host>/<key>.txt).`,
	Args: cobra.ExactArgs(1),
	RunE: runPing,
}

func init() {
	pingCmd.Flags().String("endpoint", indexnow.DefaultEndpoint, "IndexNow endpoint")
	pingCmd.Flags().String("key", "", "IndexNow key")
	pingCmd.Flags().String("key-location", "", "URL of the key file")
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	_, urls, err := loadURLs(args[0])
	if err != nil {
		return err
	}
	if cfg.IndexNow.Key == "" {
		return failure.New(MissingIndexNowKey,
			failure.Message("an IndexNow key is required: use --key or indexnow.key in the config"),
		)
	}

	submission, err := newSubmission(urls, cfg.IndexNow.Key, cfg.IndexNow.KeyLocation)
	if err != nil {
		return err
	}

	client := indexnow.NewClient(cfg.IndexNow.Endpoint)
	if err := client.Submit(cmd.Context(), submission); err != nil {
		return err
	}
	fmt.Println(styled(titleStyle, fmt.Sprintf("Submitted %d URLs for %s", len(submission.URLs), submission.Host)))
	return nil
}

func newSubmission(urls []sitemap.URL, key, keyLocation string) (indexnow.Submission, error) {
	locs := lo.Map(urls, func(u sitemap.URL, _ int) string { return u.Location })
	hosts := lo.Uniq(lo.FilterMap(locs, func(loc string, _ int) (string, bool) {
		u, err := url.Parse(loc)
		if err != nil {
			return "", false
		}
		return u.Hostname(), u.Hostname() != ""
	}))
	if len(hosts) != 1 {
		return indexnow.Submission{}, failure.New(UnknownHost,
			failure.Message(fmt.Sprintf("IndexNow needs URLs of exactly one host, found %d", len(hosts))),
			failure.Context{"hosts": fmt.Sprint(hosts)},
		)
	}
	return indexnow.Submission{
		Host:        hosts[0],
		Key:         key,
		KeyLocation: keyLocation,
		URLs:        locs,
	}, nil
}
