package generate

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/ka2n/sitemapgen/log"
)

// FileRoute matches the default sitemap and index file names
const FileRoute = `{file:sitemap(?:index|_\d+)\.xml}`

// NewHandler serves the files written by Generate from dir under prefix.
// Only the index and numbered sitemap files are reachable.
//
//	http.Handle("/", generate.NewHandler("public/sitemaps", "/sitemaps/"))
func NewHandler(dir, prefix string) http.Handler {
	r := mux.NewRouter()
	Register(r, dir, prefix)
	return r
}

// Register adds the sitemap route to an existing router
func Register(r *mux.Router, dir, prefix string) *mux.Route {
	return r.Handle(prefix+FileRoute, &fileHandler{dir: dir}).Methods(http.MethodGet, http.MethodHead)
}

type fileHandler struct {
	dir string
}

func (h *fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]
	f, err := os.Open(filepath.Join(h.dir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	log.Debug("serving sitemap", "file", name, "size", info.Size())
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	http.ServeContent(w, r, name, info.ModTime(), f)
}
