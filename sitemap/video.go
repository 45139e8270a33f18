package sitemap

import (
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ka2n/sitemapgen/sitemap/xmlnode"
	"github.com/samber/lo"
)

// Relationship tells whether a Restriction or Platform lists allowed or denied members
type Relationship string

const (
	Allow Relationship = "allow"
	Deny  Relationship = "deny"
)

func (r Relationship) String() string {
	return string(r)
}

// PlatformType is a device type a video can be played on
type PlatformType string

const (
	Web    PlatformType = "web"
	Mobile PlatformType = "mobile"
	Tv     PlatformType = "tv"
)

func (p PlatformType) String() string {
	return string(p)
}

// platformOrder is the canonical output order of platform types
var platformOrder = map[PlatformType]int{Web: 0, Mobile: 1, Tv: 2}

// Restriction allows or denies a video in a set of countries
type Restriction struct {
	countryCodes []string
	Relationship Relationship
}

// NewRestriction creates a Restriction from ISO 3166 country codes.
// Codes are de-duplicated and kept sorted so output never depends on input order.
func NewRestriction(countryCodes []string, relationship Relationship) Restriction {
	codes := lo.Uniq(countryCodes)
	slices.Sort(codes)
	return Restriction{countryCodes: codes, Relationship: relationship}
}

// CountryCodes returns a copy of the sorted country codes
func (r Restriction) CountryCodes() []string {
	return slices.Clone(r.countryCodes)
}

func (r Restriction) element() *xmlnode.Element {
	return xmlnode.NewElement("video:restriction").
		AddAttr("relationship", r.Relationship.String()).
		SetText(strings.Join(r.countryCodes, " "))
}

// Platform allows or denies a video on a set of platform types
type Platform struct {
	platforms    []PlatformType
	Relationship Relationship
}

// NewPlatform creates a Platform. Platform types are de-duplicated and
// ordered web, mobile, tv; unknown values sort after those, alphabetically.
func NewPlatform(platforms []PlatformType, relationship Relationship) Platform {
	types := lo.Uniq(platforms)
	slices.SortFunc(types, func(a, b PlatformType) int {
		ia, oka := platformOrder[a]
		ib, okb := platformOrder[b]
		switch {
		case oka && okb:
			return ia - ib
		case oka:
			return -1
		case okb:
			return 1
		default:
			return strings.Compare(string(a), string(b))
		}
	})
	return Platform{platforms: types, Relationship: relationship}
}

// Platforms returns a copy of the ordered platform types
func (p Platform) Platforms() []PlatformType {
	return slices.Clone(p.platforms)
}

func (p Platform) element() *xmlnode.Element {
	names := lo.Map(p.platforms, func(t PlatformType, _ int) string {
		return t.String()
	})
	return xmlnode.NewElement("video:platform").
		AddAttr("relationship", p.Relationship.String()).
		SetText(strings.Join(names, " "))
}

// Uploader identifies who uploaded a video.
// The name length is checked by NewVideo.
type Uploader struct {
	Name string
	// Info is an optional URL with more information about the uploader
	Info string
}

func NewUploader(name, info string) Uploader {
	return Uploader{Name: name, Info: info}
}

func (u Uploader) element() *xmlnode.Element {
	e := xmlnode.NewElement("video:uploader")
	if u.Info != "" {
		e.AddAttr("info", u.Info)
	}
	return e.SetText(u.Name)
}

// Video is a video associated with a URL.
// Build it with NewVideo or NewVideoBuilder; nil pointers and empty slices are
// omitted from the output.
type Video struct {
	ThumbnailLocation string
	Title             string
	Description       string
	ContentLocation   string
	PlayerLocation    string

	// Duration in seconds
	Duration             *int
	ExpirationDate       *time.Time
	Rating               *float64
	ViewCount            *uint64
	PublicationDate      *time.Time
	FamilyFriendly       *bool
	Restriction          *Restriction
	Platform             *Platform
	RequiresSubscription *bool
	Uploader             *Uploader
	Live                 *bool
	Tags                 []string
}

// NewVideo validates v and returns it.
// Rules are checked in order and the first violation is returned:
// description length, duration, rating, uploader name length, tag count.
func NewVideo(v Video) (Video, error) {
	if n := utf8.RuneCountInString(v.Description); n > MaxDescriptionLength {
		return Video{}, lengthError(ErrDescriptionTooLong, "description", n, MaxDescriptionLength)
	}

	if v.Duration != nil {
		d := *v.Duration
		if d < MinVideoDuration {
			return Video{}, lowerBoundError(ErrDurationTooShort, "duration", float64(d), MinVideoDuration)
		}
		if d > MaxVideoDuration {
			return Video{}, upperBoundError(ErrDurationTooLong, "duration", float64(d), MaxVideoDuration)
		}
	}

	if v.Rating != nil {
		r := *v.Rating
		// NaN fails this comparison and is reported as too low
		if !(r >= MinRating) {
			return Video{}, lowerBoundError(ErrRatingTooLow, "rating", r, MinRating)
		}
		if r > MaxRating {
			return Video{}, upperBoundError(ErrRatingTooHigh, "rating", r, MaxRating)
		}
	}

	if v.Uploader != nil {
		if n := utf8.RuneCountInString(v.Uploader.Name); n > MaxUploaderNameLength {
			return Video{}, lengthError(ErrUploaderNameTooLong, "uploader name", n, MaxUploaderNameLength)
		}
	}

	if len(v.Tags) > MaxVideoTags {
		return Video{}, countError(ErrTooManyTags, "tags", len(v.Tags), MaxVideoTags)
	}

	return v, nil
}

func (v Video) element() *xmlnode.Element {
	e := xmlnode.NewElement("video:video").
		AddTextChild("video:thumbnail_loc", v.ThumbnailLocation).
		AddTextChild("video:title", v.Title).
		AddTextChild("video:description", v.Description).
		AddTextChild("video:content_loc", v.ContentLocation).
		AddTextChild("video:player_loc", v.PlayerLocation)

	if v.Duration != nil {
		e.AddTextChild("video:duration", strconv.Itoa(*v.Duration))
	}
	if v.ExpirationDate != nil {
		e.AddTextChild("video:expiration_date", formatTime(*v.ExpirationDate))
	}
	if v.Rating != nil {
		e.AddTextChild("video:rating", formatFloat(*v.Rating))
	}
	if v.ViewCount != nil {
		e.AddTextChild("video:view_count", strconv.FormatUint(*v.ViewCount, 10))
	}
	if v.PublicationDate != nil {
		e.AddTextChild("video:publication_date", formatTime(*v.PublicationDate))
	}
	if v.FamilyFriendly != nil {
		e.AddTextChild("video:family_friendly", formatBool(*v.FamilyFriendly))
	}
	if v.Restriction != nil {
		e.AddChild(v.Restriction.element())
	}
	if v.Platform != nil {
		e.AddChild(v.Platform.element())
	}
	if v.RequiresSubscription != nil {
		e.AddTextChild("video:requires_subscription", formatBool(*v.RequiresSubscription))
	}
	if v.Uploader != nil {
		e.AddChild(v.Uploader.element())
	}
	if v.Live != nil {
		e.AddTextChild("video:live", formatBool(*v.Live))
	}
	for _, tag := range v.Tags {
		e.AddTextChild("video:tag", tag)
	}
	return e
}
