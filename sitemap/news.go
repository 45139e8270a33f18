package sitemap

import (
	"time"

	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
)

// Publication is the news source an article belongs to
type Publication struct {
	Name string
	// Language is an ISO 639 code such as "en" or "zh-cn"
	Language string
}

func NewPublication(name, language string) Publication {
	return Publication{Name: name, Language: language}
}

// News holds news article metadata of a URL. All fields are required.
type News struct {
	Publication     Publication
	PublicationDate time.Time
	Title           string
}

func NewNews(publication Publication, publicationDate time.Time, title string) News {
	return News{
		Publication:     publication,
		PublicationDate: publicationDate,
		Title:           title,
	}
}

func (n News) element() *xmlnode.Element {
	publication := xmlnode.NewElement("news:publication").
		AddTextChild("news:name", n.Publication.Name).
		AddTextChild("news:language", n.Publication.Language)

	return xmlnode.NewElement("news:news").
		AddChild(publication).
		AddTextChild("news:publication_date", formatTime(n.PublicationDate)).
		AddTextChild("news:title", n.Title)
}
