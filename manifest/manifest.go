// Package manifest reads a YAML or JSON description of a site's pages and
// turns it into sitemap entries.
//
//	base_url: https://example.com/sitemaps/
//	urls:
//	  - loc: https://example.com/
//	    lastmod: 2005-01-01T00:00:00+00:00
//	    changefreq: monthly
//	    priority: 0.8
//
// Decoding is strict: unknown keys, malformed dates and values outside the
// allowed vocabularies are rejected with ErrInvalidManifest. Limits that the
// sitemap package enforces (priority range, image count, video rules) are
// reported with the sitemap package's own error codes.
package manifest

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// ErrorCode defines error types for manifest loading
type ErrorCode string

const (
	ErrInvalidManifest ErrorCode = "InvalidManifest"
	ErrReadManifest    ErrorCode = "ReadManifest"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Manifest is the decoded document
type Manifest struct {
	BaseURL        string         `mapstructure:"base_url" validate:"omitempty,url"`
	URLEntries     []URLEntry     `mapstructure:"urls" validate:"dive"`
	SitemapEntries []SitemapEntry `mapstructure:"sitemaps" validate:"dive"`
}

type URLEntry struct {
	Loc        string       `mapstructure:"loc" validate:"required,url"`
	LastMod    *time.Time   `mapstructure:"lastmod"`
	ChangeFreq string       `mapstructure:"changefreq" validate:"omitempty,oneof=always hourly daily weekly monthly yearly never"`
	Priority   *float64     `mapstructure:"priority"`
	Links      []LinkEntry  `mapstructure:"links" validate:"dive"`
	Images     []ImageEntry `mapstructure:"images" validate:"dive"`
	Videos     []VideoEntry `mapstructure:"videos" validate:"dive"`
	News       *NewsEntry   `mapstructure:"news"`
}

type LinkEntry struct {
	Hreflang string `mapstructure:"hreflang" validate:"required"`
	Href     string `mapstructure:"href" validate:"required,url"`
}

type ImageEntry struct {
	Loc         string `mapstructure:"loc" validate:"required,url"`
	Caption     string `mapstructure:"caption"`
	GeoLocation string `mapstructure:"geo_location"`
	Title       string `mapstructure:"title"`
	License     string `mapstructure:"license" validate:"omitempty,url"`
}

type VideoEntry struct {
	ThumbnailLoc         string            `mapstructure:"thumbnail_loc" validate:"required,url"`
	Title                string            `mapstructure:"title" validate:"required"`
	Description          string            `mapstructure:"description" validate:"required"`
	ContentLoc           string            `mapstructure:"content_loc" validate:"required,url"`
	PlayerLoc            string            `mapstructure:"player_loc" validate:"required,url"`
	Duration             *int              `mapstructure:"duration"`
	ExpirationDate       *time.Time        `mapstructure:"expiration_date"`
	Rating               *float64          `mapstructure:"rating"`
	ViewCount            *uint64           `mapstructure:"view_count"`
	PublicationDate      *time.Time        `mapstructure:"publication_date"`
	FamilyFriendly       *bool             `mapstructure:"family_friendly"`
	Restriction          *RestrictionEntry `mapstructure:"restriction"`
	Platform             *PlatformEntry    `mapstructure:"platform"`
	RequiresSubscription *bool             `mapstructure:"requires_subscription"`
	Uploader             *UploaderEntry    `mapstructure:"uploader"`
	Live                 *bool             `mapstructure:"live"`
	Tags                 []string          `mapstructure:"tags"`
}

type RestrictionEntry struct {
	Relationship string   `mapstructure:"relationship" validate:"required,oneof=allow deny"`
	Countries    []string `mapstructure:"countries" validate:"dive,iso3166_1_alpha2"`
}

type PlatformEntry struct {
	Relationship string   `mapstructure:"relationship" validate:"required,oneof=allow deny"`
	Platforms    []string `mapstructure:"platforms" validate:"dive,oneof=web mobile tv"`
}

type UploaderEntry struct {
	Name string `mapstructure:"name" validate:"required"`
	Info string `mapstructure:"info" validate:"omitempty,url"`
}

type NewsEntry struct {
	Publication     PublicationEntry `mapstructure:"publication"`
	PublicationDate time.Time        `mapstructure:"publication_date" validate:"required"`
	Title           string           `mapstructure:"title" validate:"required"`
}

type PublicationEntry struct {
	Name     string `mapstructure:"name" validate:"required"`
	Language string `mapstructure:"language" validate:"required"`
}

type SitemapEntry struct {
	Loc     string     `mapstructure:"loc" validate:"required,url"`
	LastMod *time.Time `mapstructure:"lastmod"`
}

// Load reads and parses the manifest at path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrReadManifest),
			failure.Message(fmt.Sprintf("cannot read manifest %s", path)),
			failure.Context{"path": path},
		)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, failure.Wrap(err, failure.Context{"path": path})
	}
	return m, nil
}

// URLs converts every entry into a validated sitemap.URL, in order
func (m *Manifest) URLs() ([]sitemap.URL, error) {
	out := make([]sitemap.URL, 0, len(m.URLEntries))
	for i, e := range m.URLEntries {
		u, err := e.url()
		if err != nil {
			return nil, failure.Wrap(err, failure.Context{"entry": strconv.Itoa(i), "loc": e.Loc})
		}
		out = append(out, u)
	}
	return out, nil
}

// Sitemaps converts the sitemap entries for an index
func (m *Manifest) Sitemaps() []sitemap.Sitemap {
	return lo.Map(m.SitemapEntries, func(e SitemapEntry, _ int) sitemap.Sitemap {
		return sitemap.NewSitemap(e.Loc, e.LastMod)
	})
}

func (e URLEntry) url() (sitemap.URL, error) {
	b := sitemap.NewURLBuilder(e.Loc).ChangeFrequency(sitemap.ChangeFrequency(e.ChangeFreq))
	if e.LastMod != nil {
		b.LastModified(*e.LastMod)
	}
	if e.Priority != nil {
		b.Priority(*e.Priority)
	}
	for _, l := range e.Links {
		b.AddLink(l.Hreflang, l.Href)
	}
	for _, img := range e.Images {
		b.AddImage(sitemap.Image{
			Location:    img.Loc,
			Caption:     img.Caption,
			GeoLocation: img.GeoLocation,
			Title:       img.Title,
			License:     img.License,
		})
	}
	for _, v := range e.Videos {
		video, err := v.video()
		if err != nil {
			return sitemap.URL{}, err
		}
		b.AddVideo(video)
	}
	if e.News != nil {
		b.News(sitemap.NewNews(
			sitemap.NewPublication(e.News.Publication.Name, e.News.Publication.Language),
			e.News.PublicationDate,
			e.News.Title,
		))
	}
	return b.Build()
}

func (v VideoEntry) video() (sitemap.Video, error) {
	b := sitemap.NewVideoBuilder(v.ThumbnailLoc, v.Title, v.Description, v.ContentLoc, v.PlayerLoc).Tags(v.Tags)
	if v.Duration != nil {
		b.Duration(*v.Duration)
	}
	if v.ExpirationDate != nil {
		b.ExpirationDate(*v.ExpirationDate)
	}
	if v.Rating != nil {
		b.Rating(*v.Rating)
	}
	if v.ViewCount != nil {
		b.ViewCount(*v.ViewCount)
	}
	if v.PublicationDate != nil {
		b.PublicationDate(*v.PublicationDate)
	}
	if v.FamilyFriendly != nil {
		b.FamilyFriendly(*v.FamilyFriendly)
	}
	if r := v.Restriction; r != nil {
		b.Restriction(sitemap.NewRestriction(r.Countries, sitemap.Relationship(r.Relationship)))
	}
	if p := v.Platform; p != nil {
		platforms := lo.Map(p.Platforms, func(s string, _ int) sitemap.PlatformType { return sitemap.PlatformType(s) })
		b.Platform(sitemap.NewPlatform(platforms, sitemap.Relationship(p.Relationship)))
	}
	if v.RequiresSubscription != nil {
		b.RequiresSubscription(*v.RequiresSubscription)
	}
	if u := v.Uploader; u != nil {
		b.Uploader(sitemap.NewUploader(u.Name, u.Info))
	}
	if v.Live != nil {
		b.Live(*v.Live)
	}
	return b.Build()
}
