package sitemap

import "time"

// URLBuilder collects the optional fields of a URL.
// Build hands them to NewURL; the builder itself never fails.
type URLBuilder struct {
	url URL
}

func NewURLBuilder(location string) *URLBuilder {
	return &URLBuilder{url: URL{Location: location}}
}

func (b *URLBuilder) LastModified(t time.Time) *URLBuilder {
	b.url.LastModified = &t
	return b
}

func (b *URLBuilder) ChangeFrequency(c ChangeFrequency) *URLBuilder {
	b.url.ChangeFrequency = c
	return b
}

func (b *URLBuilder) Priority(p float64) *URLBuilder {
	b.url.Priority = &p
	return b
}

func (b *URLBuilder) Images(images []Image) *URLBuilder {
	b.url.Images = images
	return b
}

func (b *URLBuilder) AddImage(image Image) *URLBuilder {
	b.url.Images = append(b.url.Images, image)
	return b
}

func (b *URLBuilder) Videos(videos []Video) *URLBuilder {
	b.url.Videos = videos
	return b
}

func (b *URLBuilder) AddVideo(video Video) *URLBuilder {
	b.url.Videos = append(b.url.Videos, video)
	return b
}

func (b *URLBuilder) News(news News) *URLBuilder {
	b.url.News = &news
	return b
}

func (b *URLBuilder) Links(links []Link) *URLBuilder {
	b.url.Links = links
	return b
}

// AddLink appends a single hreflang alternate
func (b *URLBuilder) AddLink(hreflang, href string) *URLBuilder {
	b.url.Links = append(b.url.Links, NewLink(hreflang, href))
	return b
}

// Build validates the collected fields with NewURL
func (b *URLBuilder) Build() (URL, error) {
	return NewURL(b.url)
}

// VideoBuilder collects the optional fields of a Video.
// Build hands them to NewVideo; the builder itself never fails.
type VideoBuilder struct {
	video Video
}

func NewVideoBuilder(thumbnailLocation, title, description, contentLocation, playerLocation string) *VideoBuilder {
	return &VideoBuilder{video: Video{
		ThumbnailLocation: thumbnailLocation,
		Title:             title,
		Description:       description,
		ContentLocation:   contentLocation,
		PlayerLocation:    playerLocation,
	}}
}

// Duration sets the duration in seconds
func (b *VideoBuilder) Duration(seconds int) *VideoBuilder {
	b.video.Duration = &seconds
	return b
}

func (b *VideoBuilder) ExpirationDate(t time.Time) *VideoBuilder {
	b.video.ExpirationDate = &t
	return b
}

func (b *VideoBuilder) Rating(r float64) *VideoBuilder {
	b.video.Rating = &r
	return b
}

func (b *VideoBuilder) ViewCount(n uint64) *VideoBuilder {
	b.video.ViewCount = &n
	return b
}

func (b *VideoBuilder) PublicationDate(t time.Time) *VideoBuilder {
	b.video.PublicationDate = &t
	return b
}

func (b *VideoBuilder) FamilyFriendly(ok bool) *VideoBuilder {
	b.video.FamilyFriendly = &ok
	return b
}

func (b *VideoBuilder) Restriction(r Restriction) *VideoBuilder {
	b.video.Restriction = &r
	return b
}

func (b *VideoBuilder) Platform(p Platform) *VideoBuilder {
	b.video.Platform = &p
	return b
}

func (b *VideoBuilder) RequiresSubscription(ok bool) *VideoBuilder {
	b.video.RequiresSubscription = &ok
	return b
}

func (b *VideoBuilder) Uploader(u Uploader) *VideoBuilder {
	b.video.Uploader = &u
	return b
}

func (b *VideoBuilder) Live(ok bool) *VideoBuilder {
	b.video.Live = &ok
	return b
}

func (b *VideoBuilder) Tags(tags []string) *VideoBuilder {
	b.video.Tags = tags
	return b
}

func (b *VideoBuilder) AddTag(tag string) *VideoBuilder {
	b.video.Tags = append(b.video.Tags, tag)
	return b
}

// Build validates the collected fields with NewVideo
func (b *VideoBuilder) Build() (Video, error) {
	return NewVideo(b.video)
}
