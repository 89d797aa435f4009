package handler

import (
	"net/http"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	photoIndexRe = regexp.MustCompile(`\d+`)
	photoExts    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}
)

// PhotosHandler lists the marketing carousel images from a fixed directory,
// sorted by the numeric index embedded in each filename (photo-2 before
// photo-10).
type PhotosHandler struct {
	dir       string
	urlPrefix string
}

func NewPhotosHandler(dir, urlPrefix string) *PhotosHandler {
	return &PhotosHandler{dir: dir, urlPrefix: urlPrefix}
}

func (h *PhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		// A missing directory means no photos, not a failure.
		writeJSON(w, r, http.StatusOK, map[string]any{"photos": []string{}})
		return
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if photoExts[strings.ToLower(path.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := photoIndex(names[i]), photoIndex(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})

	photos := make([]string, len(names))
	for i, name := range names {
		photos[i] = path.Join(h.urlPrefix, name)
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"photos": photos})
}

// photoIndex extracts the first run of digits in a filename. Files without
// one sort after the indexed ones.
func photoIndex(name string) int {
	m := photoIndexRe.FindString(name)
	if m == "" {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
