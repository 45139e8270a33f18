package sitemap

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func TestSitemapIndex_Bytes(t *testing.T) {
	lastmod := time.Date(2004, 10, 1, 18, 23, 17, 0, time.FixedZone("", 0))
	index, err := NewSitemapIndex([]Sitemap{
		NewSitemap("https://www.example.com/sitemap1.xml.gz", &lastmod),
		NewSitemap("https://www.example.com/sitemap2.xml.gz", nil),
	})
	if err != nil {
		t.Fatalf("NewSitemapIndex() unexpected error: %v", err)
	}

	got, err := index.Bytes()
	if err != nil {
		t.Fatalf("Bytes() unexpected error: %v", err)
	}
	want := declaration +
		`<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` +
		`<sitemap><loc>https://www.example.com/sitemap1.xml.gz</loc><lastmod>2004-10-01T18:23:17+00:00</lastmod></sitemap>` +
		`<sitemap><loc>https://www.example.com/sitemap2.xml.gz</loc></sitemap>` +
		`</sitemapindex>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestSitemapIndex_Empty(t *testing.T) {
	index, err := NewSitemapIndex(nil)
	if err != nil {
		t.Fatalf("NewSitemapIndex() unexpected error: %v", err)
	}
	got, err := index.Bytes()
	if err != nil {
		t.Fatalf("Bytes() unexpected error: %v", err)
	}
	want := declaration + `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"/>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSitemapIndex_Limit(t *testing.T) {
	sitemaps := func(n int) []Sitemap {
		out := make([]Sitemap, n)
		for i := range out {
			out[i] = NewSitemap("https://example.com/sitemap.xml", nil)
		}
		return out
	}

	if _, err := NewSitemapIndex(sitemaps(MaxSitemaps)); err != nil {
		t.Fatalf("NewSitemapIndex() at the limit: unexpected error: %v", err)
	}

	_, err := NewSitemapIndex(sitemaps(MaxSitemaps + 1))
	if !failure.Is(err, ErrTooManySitemaps) {
		t.Fatalf("expected error %v, got %v", ErrTooManySitemaps, err)
	}
	if msg, want := failure.MessageOf(err).String(), "no more than 50000 sitemaps allowed, got 50001"; msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}
