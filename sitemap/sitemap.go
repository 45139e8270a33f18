package sitemap

import (
	"time"

	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
)

// Sitemap is one <sitemap> entry of a sitemap index
type Sitemap struct {
	Location     string
	LastModified *time.Time
}

func NewSitemap(location string, lastModified *time.Time) Sitemap {
	return Sitemap{Location: location, LastModified: lastModified}
}

func (s Sitemap) element() *xmlnode.Element {
	e := xmlnode.NewElement("sitemap").AddTextChild("loc", s.Location)
	if s.LastModified != nil {
		e.AddTextChild("lastmod", formatTime(*s.LastModified))
	}
	return e
}
