package sitemap

import "github.com/ka2n/sitemapgen/sitemap/xmlnode"

// Namespaces records which extension namespaces a URLSet declares.
// The base namespace is always declared.
type Namespaces struct {
	XHTML bool
	Image bool
	Video bool
	News  bool
}

// URLSet is a complete URL sitemap document
type URLSet struct {
	URLs       []URL
	Namespaces Namespaces
}

// NewURLSet assembles a URL sitemap.
// It fails when there are more than MaxURLs entries, or more than MaxNewsURLs
// entries while any entry carries news. The extension namespaces are derived
// from the entries.
func NewURLSet(urls []URL) (*URLSet, error) {
	if len(urls) > MaxURLs {
		return nil, countError(ErrTooManyURLs, "urls", len(urls), MaxURLs)
	}

	var ns Namespaces
	for _, u := range urls {
		ns.XHTML = ns.XHTML || len(u.Links) > 0
		ns.Image = ns.Image || len(u.Images) > 0
		ns.Video = ns.Video || len(u.Videos) > 0
		ns.News = ns.News || u.News != nil
	}

	if ns.News && len(urls) > MaxNewsURLs {
		return nil, countError(ErrTooMuchNews, "urls in a sitemap with news", len(urls), MaxNewsURLs)
	}

	return &URLSet{URLs: urls, Namespaces: ns}, nil
}

// Document builds the element tree of the sitemap
func (s *URLSet) Document() *xmlnode.Document {
	root := xmlnode.NewElement("urlset").AddAttr("xmlns", Namespace)
	if s.Namespaces.XHTML {
		root.AddAttr("xmlns:xhtml", XHTMLNamespace)
	}
	if s.Namespaces.Image {
		root.AddAttr("xmlns:image", ImageNamespace)
	}
	if s.Namespaces.Video {
		root.AddAttr("xmlns:video", VideoNamespace)
	}
	if s.Namespaces.News {
		root.AddAttr("xmlns:news", NewsNamespace)
	}

	for _, u := range s.URLs {
		root.AddChild(u.element())
	}

	return &xmlnode.Document{
		Version:  XMLVersion,
		Encoding: Encoding,
		Root:     root,
	}
}
