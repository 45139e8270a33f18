package sitemap

import (
	"bytes"
	"io"
	"os"

	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
	"github.com/morikuni/failure/v2"
)

type writeOptions struct {
	indent string
}

// WriteOption configures how a document is written
type WriteOption func(*writeOptions)

// WithIndent puts every element on its own line, nested with indent.
// indent may only hold spaces and tabs.
// The default output has no whitespace between elements.
func WithIndent(indent string) WriteOption {
	return func(o *writeOptions) {
		o.indent = indent
	}
}

func renderOptions(opts []WriteOption) (xmlnode.Options, error) {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := xmlnode.CheckIndent(o.indent); err != nil {
		return xmlnode.Options{}, failure.Wrap(err, failure.WithCode(ErrInvalidIndent))
	}
	return xmlnode.Options{Indent: o.indent}, nil
}

func render(w io.Writer, doc *xmlnode.Document, name string, opts []WriteOption) error {
	ro, err := renderOptions(opts)
	if err != nil {
		return err
	}
	if err := doc.Render(w, ro); err != nil {
		return writeError(err, name)
	}
	return nil
}

func writeFile(path string, doc *xmlnode.Document, name string, opts []WriteOption) error {
	if _, err := renderOptions(opts); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return writeError(err, name)
	}
	if err := render(f, doc, name, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return writeError(err, name)
	}
	return nil
}

// Write writes the sitemap as UTF-8 XML to w
func (s *URLSet) Write(w io.Writer, opts ...WriteOption) error {
	return render(w, s.Document(), "urlset", opts)
}

// WriteToFile creates (or truncates) path and writes the sitemap to it
func (s *URLSet) WriteToFile(path string, opts ...WriteOption) error {
	if err := writeFile(path, s.Document(), "urlset", opts); err != nil {
		return failure.Wrap(err, failure.Context{"path": path})
	}
	return nil
}

// Bytes returns the sitemap as UTF-8 XML
func (s *URLSet) Bytes(opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the index as UTF-8 XML to w
func (s *SitemapIndex) Write(w io.Writer, opts ...WriteOption) error {
	return render(w, s.Document(), "sitemapindex", opts)
}

// WriteToFile creates (or truncates) path and writes the index to it
func (s *SitemapIndex) WriteToFile(path string, opts ...WriteOption) error {
	if err := writeFile(path, s.Document(), "sitemapindex", opts); err != nil {
		return failure.Wrap(err, failure.Context{"path": path})
	}
	return nil
}

// Bytes returns the index as UTF-8 XML
func (s *SitemapIndex) Bytes(opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
