package sitemap

import "github.com/ka2n/sitemapgen/sitemap/xmlnode"

// Image is an image associated with a URL.
// Optional fields are omitted from the output when empty.
type Image struct {
	// Location is the absolute URL of the image
	Location    string
	Caption     string
	GeoLocation string
	Title       string
	// License is a URL to the license of the image
	License string
}

// NewImage creates an Image with only its location set
func NewImage(location string) Image {
	return Image{Location: location}
}

func (i Image) element() *xmlnode.Element {
	e := xmlnode.NewElement("image:image").AddTextChild("image:loc", i.Location)
	if i.Caption != "" {
		e.AddTextChild("image:caption", i.Caption)
	}
	if i.GeoLocation != "" {
		e.AddTextChild("image:geo_location", i.GeoLocation)
	}
	if i.Title != "" {
		e.AddTextChild("image:title", i.Title)
	}
	if i.License != "" {
		e.AddTextChild("image:license", i.License)
	}
	return e
}
