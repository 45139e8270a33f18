package sitemap

import "github.com/ka2n/sitemapgen/sitemap/xmlnode"

// SitemapIndex is a complete sitemap index document
type SitemapIndex struct {
	Sitemaps []Sitemap
}

// NewSitemapIndex assembles a sitemap index of at most MaxSitemaps entries
func NewSitemapIndex(sitemaps []Sitemap) (*SitemapIndex, error) {
	if len(sitemaps) > MaxSitemaps {
		return nil, countError(ErrTooManySitemaps, "sitemaps", len(sitemaps), MaxSitemaps)
	}
	return &SitemapIndex{Sitemaps: sitemaps}, nil
}

// Document builds the element tree of the index
func (s *SitemapIndex) Document() *xmlnode.Document {
	root := xmlnode.NewElement("sitemapindex").AddAttr("xmlns", Namespace)
	for _, sm := range s.Sitemaps {
		root.AddChild(sm.element())
	}
	return &xmlnode.Document{
		Version:  XMLVersion,
		Encoding: Encoding,
		Root:     root,
	}
}
