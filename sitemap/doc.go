// Package sitemap builds sitemap documents.
//
// The package covers the sitemaps.org protocol plus the Google Image, Video
// and News extensions:
// - validated entries (URL, Video, Image, News, Sitemap, ...)
// - builders for entries with many optional fields
// - URLSet and SitemapIndex documents that declare only the namespaces their
//   content needs
// - protocol-exact XML output written to any io.Writer or file
//
// Example:
//
//	lastmod := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
//	u, err := sitemap.NewURLBuilder("https://example.com/").
//		LastModified(lastmod).
//		ChangeFrequency(sitemap.Monthly).
//		Priority(0.8).
//		Build()
//	if err != nil {
//		return err
//	}
//	set, err := sitemap.NewURLSet([]sitemap.URL{u})
//	if err != nil {
//		return err
//	}
//	return set.Write(os.Stdout)
//
// Every constructor returns the first violated rule as a failure error whose
// code is one of the ErrorCode constants of this package.
package sitemap

const (
	// Namespace is the base sitemap namespace, always declared on the root
	Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	// XHTMLNamespace is declared when any URL carries hreflang links
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
	// ImageNamespace is declared when any URL carries images
	ImageNamespace = "http://www.google.com/schemas/sitemap-image/1.1"
	// VideoNamespace is declared when any URL carries videos
	VideoNamespace = "http://www.google.com/schemas/sitemap-video/1.1"
	// NewsNamespace is declared when any URL carries news
	NewsNamespace = "http://www.google.com/schemas/sitemap-news/0.9"

	// XMLVersion and Encoding are written in the XML declaration
	XMLVersion = "1.0"
	Encoding   = "UTF-8"
)

// Protocol limits
const (
	MaxURLs     = 50_000
	MaxSitemaps = 50_000
	MaxNewsURLs = 1_000

	MaxImagesPerURL = 1_000

	MinPriority     = 0.0
	MaxPriority     = 1.0
	DefaultPriority = 0.5

	MaxDescriptionLength  = 2048
	MinVideoDuration      = 1
	MaxVideoDuration      = 28_800
	MinRating             = 0.0
	MaxRating             = 5.0
	MaxUploaderNameLength = 255
	MaxVideoTags          = 32
)
