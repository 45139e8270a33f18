package sitemap

import (
	"runtime/debug"

	"github.com/samber/lo"
)

// Version is the release of this module, overridden at link time
var Version = "0.1.0"

// Build describes the binary this package was compiled into
type Build struct {
	Version   string
	Commit    string
	Time      string
	Modified  bool
	GoVersion string
}

// BuildInfo reads VCS stamping from the running binary.
// Fields stay empty when the binary was built without it (go test, go run).
func BuildInfo() Build {
	b := Build{Version: Version}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.GoVersion = info.GoVersion

	setting := func(key string) string {
		s, _ := lo.Find(info.Settings, func(s debug.BuildSetting) bool {
			return s.Key == key
		})
		return s.Value
	}
	b.Commit = setting("vcs.revision")
	b.Time = setting("vcs.time")
	b.Modified = setting("vcs.modified") == "true"
	return b
}
