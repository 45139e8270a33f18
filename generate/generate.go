// Package generate splits a large list of URLs into as many sitemap files as
// needed and writes a sitemap index that references all of them.
//
// Files are named sitemap_1.xml, sitemap_2.xml, and so on, next to
// sitemapindex.xml. NewHandler serves them over HTTP.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ka2n/sitemapgen/log"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPattern     = "sitemap_%d.xml"
	DefaultIndexName   = "sitemapindex.xml"
	DefaultConcurrency = 4
)

// ErrorCode defines error types for multi-file generation
type ErrorCode string

const (
	ErrInvalidOptions ErrorCode = "InvalidOptions"
	ErrOutputDir      ErrorCode = "OutputDirError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Options controls where and how sitemap files are written
type Options struct {
	// Dir is the output directory. It is created when missing.
	Dir string
	// BaseURL is prepended to file names to form the index locations
	BaseURL string
	// Pattern names the sitemap files; it must contain exactly one %d
	Pattern string
	// IndexName is the file name of the sitemap index
	IndexName string
	// MaxURLsPerSitemap is clamped to sitemap.MaxURLs
	MaxURLsPerSitemap int
	Indent            string
	// Now stamps the lastmod of every index entry
	Now func() time.Time
	// Concurrency bounds the number of files written at once
	Concurrency int
}

func (o Options) withDefaults() (Options, error) {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	if strings.Count(o.Pattern, "%d") != 1 || strings.Count(o.Pattern, "%") != 1 {
		return o, failure.New(ErrInvalidOptions,
			failure.Message(fmt.Sprintf("file name pattern %q must contain exactly one %%d", o.Pattern)),
			failure.Context{"pattern": o.Pattern},
		)
	}
	if o.IndexName == "" {
		o.IndexName = DefaultIndexName
	}
	if err := xmlnode.CheckIndent(o.Indent); err != nil {
		return o, failure.Wrap(err, failure.WithCode(ErrInvalidOptions))
	}
	if o.MaxURLsPerSitemap <= 0 || o.MaxURLsPerSitemap > sitemap.MaxURLs {
		o.MaxURLsPerSitemap = sitemap.MaxURLs
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.BaseURL != "" && !strings.HasSuffix(o.BaseURL, "/") {
		o.BaseURL += "/"
	}
	return o, nil
}

// File is one written sitemap
type File struct {
	Name     string
	Path     string
	Location string
	URLs     int
}

// Result lists everything Generate wrote
type Result struct {
	Files         []File
	IndexPath     string
	IndexLocation string
	Index         *sitemap.SitemapIndex
}

// Chunk splits urls into groups of at most limit entries.
// A group that contains news holds at most sitemap.MaxNewsURLs entries.
// Order is preserved and groups are filled greedily.
func Chunk(urls []sitemap.URL, limit int) [][]sitemap.URL {
	if limit <= 0 || limit > sitemap.MaxURLs {
		limit = sitemap.MaxURLs
	}
	if len(urls) == 0 {
		return nil
	}
	if !lo.SomeBy(urls, func(u sitemap.URL) bool { return u.News != nil }) {
		return lo.Chunk(urls, limit)
	}

	var (
		chunks  [][]sitemap.URL
		current []sitemap.URL
		news    bool
	)
	for _, u := range urls {
		withNews := news || u.News != nil
		capacity := limit
		if withNews {
			capacity = min(limit, sitemap.MaxNewsURLs)
		}
		if len(current)+1 > capacity {
			chunks = append(chunks, current)
			current = nil
			withNews = u.News != nil
		}
		current = append(current, u)
		news = withNews
	}
	return append(chunks, current)
}

// Generate writes urls as sitemap files plus an index into opts.Dir.
// Every chunk is validated before anything is written, so invalid input
// leaves the directory untouched.
func Generate(ctx context.Context, urls []sitemap.URL, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	chunks := Chunk(urls, opts.MaxURLsPerSitemap)
	sets := make([]*sitemap.URLSet, len(chunks))
	files := make([]File, len(chunks))
	entries := make([]sitemap.Sitemap, len(chunks))
	now := opts.Now()
	for i, chunk := range chunks {
		set, err := sitemap.NewURLSet(chunk)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf(opts.Pattern, i+1)
		sets[i] = set
		files[i] = File{
			Name:     name,
			Path:     filepath.Join(opts.Dir, name),
			Location: opts.BaseURL + name,
			URLs:     len(chunk),
		}
		entries[i] = sitemap.NewSitemap(files[i].Location, &now)
	}

	index, err := sitemap.NewSitemapIndex(entries)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrOutputDir),
			failure.Message(fmt.Sprintf("cannot create output directory %s", opts.Dir)),
			failure.Context{"dir": opts.Dir},
		)
	}

	writeOpts := []sitemap.WriteOption{sitemap.WithIndent(opts.Indent)}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Concurrency)
	for i := range sets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return failure.Wrap(err)
			}
			if err := sets[i].WriteToFile(files[i].Path, writeOpts...); err != nil {
				return err
			}
			log.Debug("wrote sitemap", "path", files[i].Path, "urls", files[i].URLs)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Files:         files,
		IndexPath:     filepath.Join(opts.Dir, opts.IndexName),
		IndexLocation: opts.BaseURL + opts.IndexName,
		Index:         index,
	}
	if err := index.WriteToFile(result.IndexPath, writeOpts...); err != nil {
		return nil, err
	}
	log.Debug("wrote sitemap index", "path", result.IndexPath, "sitemaps", len(files))

	return result, nil
}
