package generate

import (
	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/samber/lo"
)

// Summary describes what Generate would write for a list of URLs
type Summary struct {
	URLs       int                `json:"urls"`
	Links      int                `json:"links"`
	Images     int                `json:"images"`
	Videos     int                `json:"videos"`
	News       int                `json:"news"`
	Files      int                `json:"files"`
	Namespaces sitemap.Namespaces `json:"namespaces"`
}

// Summarize counts the entries and extensions of urls.
// Files is the number of sitemap files Chunk produces with limit.
func Summarize(urls []sitemap.URL, limit int) Summary {
	s := Summary{
		URLs:   len(urls),
		Links:  lo.SumBy(urls, func(u sitemap.URL) int { return len(u.Links) }),
		Images: lo.SumBy(urls, func(u sitemap.URL) int { return len(u.Images) }),
		Videos: lo.SumBy(urls, func(u sitemap.URL) int { return len(u.Videos) }),
		News:   lo.CountBy(urls, func(u sitemap.URL) bool { return u.News != nil }),
		Files:  len(Chunk(urls, limit)),
	}
	s.Namespaces = sitemap.Namespaces{
		XHTML: s.Links > 0,
		Image: s.Images > 0,
		Video: s.Videos > 0,
		News:  s.News > 0,
	}
	return s
}
