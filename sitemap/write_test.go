package sitemap

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

var errBrokenPipe = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestURLSet_WriteToFile(t *testing.T) {
	set, err := NewURLSet([]URL{{Location: "https://example.com/"}})
	if err != nil {
		t.Fatalf("NewURLSet() unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sitemap.xml")
	// an existing file is truncated
	if err := os.WriteFile(path, []byte("stale content that is longer than the sitemap itself ............................................................................................"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := set.WriteToFile(path); err != nil {
		t.Fatalf("WriteToFile() unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := set.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("file content mismatch (-want +got):\n%s", diff)
	}
}

func TestSitemapIndex_WriteToFile(t *testing.T) {
	index, err := NewSitemapIndex([]Sitemap{NewSitemap("https://example.com/sitemap_1.xml", nil)})
	if err != nil {
		t.Fatalf("NewSitemapIndex() unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sitemapindex.xml")
	if err := index.WriteToFile(path, WithIndent("  ")); err != nil {
		t.Fatalf("WriteToFile() unexpected error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := declaration + "\n" +
		"<sitemapindex xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <sitemap>\n" +
		"    <loc>https://example.com/sitemap_1.xml</loc>\n" +
		"  </sitemap>\n" +
		"</sitemapindex>\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("file content mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteErrors(t *testing.T) {
	set, err := NewURLSet(nil)
	if err != nil {
		t.Fatalf("NewURLSet() unexpected error: %v", err)
	}
	index, err := NewSitemapIndex(nil)
	if err != nil {
		t.Fatalf("NewSitemapIndex() unexpected error: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "sitemap.xml")

	tests := []struct {
		name      string
		write     func() error
		wantCause error
	}{
		{name: "urlset to missing directory", write: func() error { return set.WriteToFile(missing) }, wantCause: fs.ErrNotExist},
		{name: "index to missing directory", write: func() error { return index.WriteToFile(missing) }, wantCause: fs.ErrNotExist},
		{name: "urlset to broken writer", write: func() error { return set.Write(brokenWriter{}) }, wantCause: errBrokenPipe},
		{name: "index to broken writer", write: func() error { return index.Write(brokenWriter{}) }, wantCause: errBrokenPipe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.write()
			if !failure.Is(err, ErrWrite) {
				t.Fatalf("expected error %v, got %v", ErrWrite, err)
			}
			if !errors.Is(err, tt.wantCause) {
				t.Errorf("expected cause %v, got %v", tt.wantCause, err)
			}
		})
	}
}

func TestWithIndent_Invalid(t *testing.T) {
	set, err := NewURLSet([]URL{{Location: "https://example.com/"}})
	if err != nil {
		t.Fatalf("NewURLSet() unexpected error: %v", err)
	}

	for _, indent := range []string{"tab", "2", " x", "\n"} {
		t.Run(indent, func(t *testing.T) {
			var buf bytes.Buffer
			err := set.Write(&buf, WithIndent(indent))
			if !failure.Is(err, ErrInvalidIndent) {
				t.Fatalf("expected error %v, got %v", ErrInvalidIndent, err)
			}
			if buf.Len() != 0 {
				t.Errorf("wrote %q for a rejected indent", buf.String())
			}
		})
	}

	t.Run("file is left alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sitemap.xml")
		if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
			t.Fatal(err)
		}
		err := set.WriteToFile(path, WithIndent("tab"))
		if !failure.Is(err, ErrInvalidIndent) {
			t.Fatalf("expected error %v, got %v", ErrInvalidIndent, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "previous" {
			t.Errorf("file content = %q, want it untouched", got)
		}
	})
}
