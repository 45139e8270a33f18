package manifest

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
	"golang.org/x/net/idna"
	"gopkg.in/yaml.v3"
)

// timeLayouts are the W3C datetime forms accepted for dates, most precise first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Parse decodes a YAML (or JSON) manifest
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, invalid("manifest is not valid YAML", err)
	}

	var m Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			timeHook,
			mapstructure.StringToSliceHookFunc(" "),
		),
		ErrorUnused: true,
		Result:      &m,
	})
	if err != nil {
		return nil, failure.Wrap(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, invalid("manifest has unexpected content", err)
	}

	if err := m.normalize(); err != nil {
		return nil, err
	}

	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, failure.New(ErrInvalidManifest,
				failure.Message(fmt.Sprintf("invalid manifest: %s failed the %q rule", fieldPath(fe), fe.Tag())),
				failure.Context{
					"field": fieldPath(fe),
					"rule":  fe.Tag(),
					"value": fmt.Sprint(fe.Value()),
				},
			)
		}
		return nil, failure.Wrap(err)
	}

	return &m, nil
}

func invalid(msg string, err error) error {
	return failure.Wrap(err, failure.WithCode(ErrInvalidManifest),
		failure.Message(msg+": "+err.Error()),
	)
}

// fieldPath drops the root struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Namespace()
	}
	return path
}

func timeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%q is not a W3C datetime", s)
}

// normalize converts the host of every location to its ASCII form
func (m *Manifest) normalize() error {
	var err error
	fix := func(field string, loc *string) {
		if err != nil || *loc == "" {
			return
		}
		var ascii string
		ascii, err = toASCII(*loc)
		if err != nil {
			err = failure.Wrap(err, failure.WithCode(ErrInvalidManifest),
				failure.Message(fmt.Sprintf("invalid manifest: %s has an invalid host: %s", field, *loc)),
				failure.Context{"field": field, "value": *loc},
			)
			return
		}
		*loc = ascii
	}

	fix("base_url", &m.BaseURL)
	for i := range m.URLEntries {
		u := &m.URLEntries[i]
		prefix := fmt.Sprintf("urls[%d]", i)
		fix(prefix+".loc", &u.Loc)
		for j := range u.Links {
			fix(fmt.Sprintf("%s.links[%d].href", prefix, j), &u.Links[j].Href)
		}
		for j := range u.Images {
			fix(fmt.Sprintf("%s.images[%d].loc", prefix, j), &u.Images[j].Loc)
		}
		for j := range u.Videos {
			v := &u.Videos[j]
			vp := fmt.Sprintf("%s.videos[%d]", prefix, j)
			fix(vp+".thumbnail_loc", &v.ThumbnailLoc)
			fix(vp+".content_loc", &v.ContentLoc)
			fix(vp+".player_loc", &v.PlayerLoc)
		}
	}
	for i := range m.SitemapEntries {
		fix(fmt.Sprintf("sitemaps[%d].loc", i), &m.SitemapEntries[i].Loc)
	}
	return err
}

func toASCII(loc string) (string, error) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", err
	}
	host := u.Hostname()
	if host == "" || isASCII(host) {
		return loc, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", err
	}
	if port := u.Port(); port != "" {
		ascii += ":" + port
	}
	u.Host = ascii
	return u.String(), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
