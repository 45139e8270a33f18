package sitemap

import (
	"fmt"
	"time"

	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
	"github.com/morikuni/failure/v2"
)

// ChangeFrequency is a hint about how often a page changes.
// The zero value means the hint is absent. Only the seven constants below are
// valid protocol values; any other string is written out as given.
type ChangeFrequency string

const (
	Always  ChangeFrequency = "always"
	Hourly  ChangeFrequency = "hourly"
	Daily   ChangeFrequency = "daily"
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
	Never   ChangeFrequency = "never"
)

// ChangeFrequencies lists every valid change frequency, most frequent first
var ChangeFrequencies = []ChangeFrequency{Always, Hourly, Daily, Weekly, Monthly, Yearly, Never}

func (c ChangeFrequency) String() string {
	return string(c)
}

// URL is one <url> entry of a URL sitemap
type URL struct {
	Location        string
	LastModified    *time.Time
	ChangeFrequency ChangeFrequency
	Priority        *float64
	Images          []Image
	Videos          []Video
	News            *News
	// Links are the hreflang alternates of the page; hreflang values are unique
	Links []Link
}

// NewURL validates u and returns it.
// Rules are checked in order and the first violation is returned:
// priority bounds (NaN is too low), image count, unique link hreflangs.
// An empty image list is normalized to nil.
// ChangeFrequency is not checked; callers must use one of ChangeFrequencies.
func NewURL(u URL) (URL, error) {
	if u.Priority != nil {
		p := *u.Priority
		// NaN fails this comparison and is reported as too low
		if !(p >= MinPriority) {
			return URL{}, lowerBoundError(ErrPriorityTooLow, "priority", p, MinPriority)
		}
		if p > MaxPriority {
			return URL{}, upperBoundError(ErrPriorityTooHigh, "priority", p, MaxPriority)
		}
	}

	if len(u.Images) > MaxImagesPerURL {
		return URL{}, countError(ErrTooManyImages, "images", len(u.Images), MaxImagesPerURL)
	}
	if len(u.Images) == 0 {
		u.Images = nil
	}

	seen := make(map[string]struct{}, len(u.Links))
	for _, link := range u.Links {
		if _, ok := seen[link.Hreflang]; ok {
			return URL{}, failure.New(ErrDuplicateAlternateHreflangs,
				failure.Message(fmt.Sprintf("duplicate hreflang %q for %s", link.Hreflang, link.Href)),
				failure.Context{
					"hreflang": link.Hreflang,
					"href":     link.Href,
				},
			)
		}
		seen[link.Hreflang] = struct{}{}
	}

	return u, nil
}

func (u URL) element() *xmlnode.Element {
	e := xmlnode.NewElement("url").AddTextChild("loc", u.Location)

	for _, link := range u.Links {
		e.AddChild(link.element())
	}
	if u.LastModified != nil {
		e.AddTextChild("lastmod", formatTime(*u.LastModified))
	}
	if u.ChangeFrequency != "" {
		e.AddTextChild("changefreq", u.ChangeFrequency.String())
	}
	if u.Priority != nil {
		e.AddTextChild("priority", formatFloat(*u.Priority))
	}
	for _, image := range u.Images {
		e.AddChild(image.element())
	}
	for _, video := range u.Videos {
		e.AddChild(video.element())
	}
	if u.News != nil {
		e.AddChild(u.News.element())
	}
	return e
}
