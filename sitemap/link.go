package sitemap

import "github.com/ka2n/sitemapgen/sitemap/xmlnode"

// Link is a language or region specific variant of a URL
type Link struct {
	Hreflang string
	Href     string
}

func NewLink(hreflang, href string) Link {
	return Link{Hreflang: hreflang, Href: href}
}

func (l Link) element() *xmlnode.Element {
	return xmlnode.NewElement("xhtml:link").
		AddAttr("rel", "alternate").
		AddAttr("hreflang", l.Hreflang).
		AddAttr("href", l.Href)
}
