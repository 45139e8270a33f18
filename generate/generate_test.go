package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func urls(n int, prefix string) []sitemap.URL {
	out := make([]sitemap.URL, n)
	for i := range out {
		out[i] = sitemap.URL{Location: fmt.Sprintf("https://example.com/%s/%d", prefix, i)}
	}
	return out
}

func withNews(u sitemap.URL) sitemap.URL {
	news := sitemap.NewNews(sitemap.NewPublication("The Example Times", "en"), fixedNow, "Headline")
	u.News = &news
	return u
}

func chunkSizes(chunks [][]sitemap.URL) []int {
	return lo.Map(chunks, func(c []sitemap.URL, _ int) int { return len(c) })
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		urls  func() []sitemap.URL
		limit int
		want  []int
	}{
		{
			name:  "empty",
			urls:  func() []sitemap.URL { return nil },
			limit: 10,
			want:  []int{},
		},
		{
			name:  "even split",
			urls:  func() []sitemap.URL { return urls(6, "a") },
			limit: 2,
			want:  []int{2, 2, 2},
		},
		{
			name:  "remainder",
			urls:  func() []sitemap.URL { return urls(5, "a") },
			limit: 2,
			want:  []int{2, 2, 1},
		},
		{
			name:  "limit is clamped",
			urls:  func() []sitemap.URL { return urls(sitemap.MaxURLs+1, "a") },
			limit: sitemap.MaxURLs * 2,
			want:  []int{sitemap.MaxURLs, 1},
		},
		{
			name: "news closes a large chunk",
			urls: func() []sitemap.URL {
				out := urls(1200, "plain")
				out = append(out, withNews(sitemap.URL{Location: "https://example.com/news"}))
				return append(out, urls(10, "tail")...)
			},
			limit: sitemap.MaxURLs,
			want:  []int{1200, 11},
		},
		{
			name: "news caps its own chunk",
			urls: func() []sitemap.URL {
				out := []sitemap.URL{withNews(sitemap.URL{Location: "https://example.com/news"})}
				return append(out, urls(1500, "plain")...)
			},
			limit: sitemap.MaxURLs,
			want:  []int{1000, 501},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkSizes(Chunk(tt.urls(), tt.limit))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Chunk() sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunk_EveryChunkBuilds(t *testing.T) {
	in := urls(3000, "plain")
	for i := 0; i < len(in); i += 700 {
		in[i] = withNews(in[i])
	}
	for i, chunk := range Chunk(in, sitemap.MaxURLs) {
		if _, err := sitemap.NewURLSet(chunk); err != nil {
			t.Errorf("chunk %d: NewURLSet() unexpected error: %v", i, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	result, err := Generate(context.Background(), urls(5, "page"), Options{
		Dir:               dir,
		BaseURL:           "https://example.com/sitemaps",
		MaxURLsPerSitemap: 2,
		Now:               func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	wantFiles := []File{
		{Name: "sitemap_1.xml", Path: filepath.Join(dir, "sitemap_1.xml"), Location: "https://example.com/sitemaps/sitemap_1.xml", URLs: 2},
		{Name: "sitemap_2.xml", Path: filepath.Join(dir, "sitemap_2.xml"), Location: "https://example.com/sitemaps/sitemap_2.xml", URLs: 2},
		{Name: "sitemap_3.xml", Path: filepath.Join(dir, "sitemap_3.xml"), Location: "https://example.com/sitemaps/sitemap_3.xml", URLs: 1},
	}
	if diff := cmp.Diff(wantFiles, result.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, filepath.Join(dir, "sitemapindex.xml"), result.IndexPath)
	require.Equal(t, "https://example.com/sitemaps/sitemapindex.xml", result.IndexLocation)

	index, err := os.ReadFile(result.IndexPath)
	require.NoError(t, err)
	wantIndex := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` +
		`<sitemap><loc>https://example.com/sitemaps/sitemap_1.xml</loc><lastmod>2024-05-01T12:00:00+00:00</lastmod></sitemap>` +
		`<sitemap><loc>https://example.com/sitemaps/sitemap_2.xml</loc><lastmod>2024-05-01T12:00:00+00:00</lastmod></sitemap>` +
		`<sitemap><loc>https://example.com/sitemaps/sitemap_3.xml</loc><lastmod>2024-05-01T12:00:00+00:00</lastmod></sitemap>` +
		`</sitemapindex>`
	if diff := cmp.Diff(wantIndex, string(index)); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}

	last, err := os.ReadFile(filepath.Join(dir, "sitemap_3.xml"))
	require.NoError(t, err)
	wantLast := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` +
		`<url><loc>https://example.com/page/4</loc></url>` +
		`</urlset>`
	if diff := cmp.Diff(wantLast, string(last)); diff != "" {
		t.Errorf("sitemap_3.xml mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Empty(t *testing.T) {
	dir := t.TempDir()
	result, err := Generate(context.Background(), nil, Options{Dir: dir})
	require.NoError(t, err)
	require.Empty(t, result.Files)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, DefaultIndexName, entries[0].Name())
}

func TestGenerate_CustomNames(t *testing.T) {
	dir := t.TempDir()
	result, err := Generate(context.Background(), urls(3, "p"), Options{
		Dir:               dir,
		Pattern:           "part-%d.xml",
		IndexName:         "index.xml",
		MaxURLsPerSitemap: 1,
		Indent:            "  ",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"part-1.xml", "part-2.xml", "part-3.xml"},
		lo.Map(result.Files, func(f File, _ int) string { return f.Name }))

	for _, name := range []string{"part-1.xml", "part-2.xml", "part-3.xml", "index.xml"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Equal(t, byte('\n'), b[len(b)-1], "indented output of %s ends with a newline", name)
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("invalid pattern", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		_, err := Generate(context.Background(), urls(1, "p"), Options{Dir: dir, Pattern: "sitemap.xml"})
		if !failure.Is(err, ErrInvalidOptions) {
			t.Fatalf("expected error %v, got %v", ErrInvalidOptions, err)
		}
		_, statErr := os.Stat(dir)
		require.True(t, os.IsNotExist(statErr), "output directory must not be created")
	})

	t.Run("indent is not whitespace", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		_, err := Generate(context.Background(), urls(1, "p"), Options{Dir: dir, Indent: "tab"})
		if !failure.Is(err, ErrInvalidOptions) {
			t.Fatalf("expected error %v, got %v", ErrInvalidOptions, err)
		}
		_, statErr := os.Stat(dir)
		require.True(t, os.IsNotExist(statErr), "output directory must not be created")
	})

	t.Run("output dir is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := Generate(context.Background(), urls(1, "p"), Options{Dir: filepath.Join(file, "sub")})
		if !failure.Is(err, ErrOutputDir) {
			t.Fatalf("expected error %v, got %v", ErrOutputDir, err)
		}
		require.ErrorIs(t, err, syscall.ENOTDIR)
	})

	t.Run("too many sitemaps", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		in := urls(sitemap.MaxSitemaps+1, "p")
		_, err := Generate(context.Background(), in, Options{Dir: dir, MaxURLsPerSitemap: 1})
		if !failure.Is(err, sitemap.ErrTooManySitemaps) {
			t.Fatalf("expected error %v, got %v", sitemap.ErrTooManySitemaps, err)
		}
		_, statErr := os.Stat(dir)
		require.True(t, os.IsNotExist(statErr), "nothing must be written for invalid input")
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Generate(ctx, urls(3, "p"), Options{Dir: t.TempDir(), MaxURLsPerSitemap: 1})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSummarize(t *testing.T) {
	in := urls(5, "p")
	in[0].Links = []sitemap.Link{sitemap.NewLink("de", "https://example.com/de"), sitemap.NewLink("fr", "https://example.com/fr")}
	in[1].Images = []sitemap.Image{sitemap.NewImage("https://example.com/a.png")}
	in[2] = withNews(in[2])

	got := Summarize(in, 2)
	want := Summary{
		URLs:       5,
		Links:      2,
		Images:     1,
		News:       1,
		Files:      3,
		Namespaces: sitemap.Namespaces{XHTML: true, Image: true, News: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}
