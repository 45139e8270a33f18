// Package config loads sitemapgen settings from .sitemapgen.yaml and
// SITEMAPGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ka2n/sitemapgen/sitemap"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/viper"
)

const (
	FileName  = ".sitemapgen"
	EnvPrefix = "SITEMAPGEN"
)

// ErrorCode defines error types for configuration loading
type ErrorCode string

const (
	ErrReadConfig    ErrorCode = "ReadConfig"
	ErrInvalidIndent ErrorCode = "InvalidIndent"
)

// MaxIndentSpaces bounds the numeric form of an indent setting
const MaxIndentSpaces = 16

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

type Config struct {
	OutputDir         string `mapstructure:"output_dir"`
	BaseURL           string `mapstructure:"base_url"`
	Indent            string `mapstructure:"indent"`
	MaxURLsPerSitemap int    `mapstructure:"max_urls_per_sitemap"`
	Serve             struct {
		Addr   string `mapstructure:"addr"`
		Prefix string `mapstructure:"prefix"`
	} `mapstructure:"serve"`
	IndexNow struct {
		Endpoint    string `mapstructure:"endpoint"`
		Key         string `mapstructure:"key"`
		KeyLocation string `mapstructure:"key_location"`
	} `mapstructure:"indexnow"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", ".")
	v.SetDefault("base_url", "")
	v.SetDefault("indent", "")
	v.SetDefault("max_urls_per_sitemap", sitemap.MaxURLs)
	v.SetDefault("serve.addr", ":8080")
	v.SetDefault("serve.prefix", "/")
	v.SetDefault("indexnow.endpoint", "https://api.indexnow.org/indexnow")
	v.SetDefault("indexnow.key", "")
	v.SetDefault("indexnow.key_location", "")
}

// New returns a viper instance wired with defaults and the environment.
// paths are searched in order for .sitemapgen.yaml; an explicit file wins.
func New(file string, paths ...string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if there is one and decodes the result.
// A missing file is not an error; an unreadable or malformed one is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, failure.Wrap(err, failure.WithCode(ErrReadConfig),
				failure.Message(fmt.Sprintf("cannot read config: %v", err)),
				failure.Context{"file": v.ConfigFileUsed()},
			)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrReadConfig),
			failure.Message(fmt.Sprintf("cannot decode config: %v", err)),
			failure.Context{"file": v.ConfigFileUsed()},
		)
	}

	indent, err := ParseIndent(cfg.Indent)
	if err != nil {
		return nil, failure.Wrap(err, failure.WithCode(ErrReadConfig),
			failure.Context{"file": v.ConfigFileUsed()},
		)
	}
	cfg.Indent = indent
	return &cfg, nil
}

// ParseIndent resolves an indent setting to the whitespace it stands for.
// It accepts "none", "tab" (or `\t`), a number of spaces up to
// MaxIndentSpaces, or literal spaces and tabs.
func ParseIndent(value string) (string, error) {
	switch value {
	case "", "none":
		return "", nil
	case "tab", `\t`:
		return "\t", nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > MaxIndentSpaces {
			return "", failure.New(ErrInvalidIndent,
				failure.Message(fmt.Sprintf("indent must be between 0 and %d spaces, got %d", MaxIndentSpaces, n)),
				failure.Context{"indent": value},
			)
		}
		return strings.Repeat(" ", n), nil
	}
	if strings.Trim(value, " \t") == "" {
		return value, nil
	}
	return "", failure.New(ErrInvalidIndent,
		failure.Message(fmt.Sprintf("invalid indent %q: use tab, none, a number of spaces or whitespace", value)),
		failure.Context{"indent": value},
	)
}
