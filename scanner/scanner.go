// Package scanner finds Premiere-related cache and project files on disk.
// It only discovers and filters paths; all byte-level analysis happens in
// the pek package.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Extension table for files the Premiere ecosystem leaves behind.
var extensions = map[string]string{
	".pek":     "Peak audio cache",
	".cfa":     "Conformed audio cache",
	".ims":     "Importer state cache",
	".mcache":  "Media cache",
	".prproj":  "Premiere Pro project",
	".prel":    "Premiere Elements library",
	".prtl":    "Title template",
	".prfpset": "Effects preset",
	".xmp":     "XMP metadata",
}

// Directories never worth descending into.
var skipDirs = map[string]struct{}{
	"Windows":                   {},
	"System Volume Information": {},
	"$Recycle.Bin":              {},
	"proc":                      {},
	"sys":                       {},
}

// FoundFile is one discovered on-disk file matching the extension table.
type FoundFile struct {
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	Extension   string    `json:"extension"`
	Description string    `json:"description"`
	Size        int64     `json:"size"`
	Modified    time.Time `json:"modified"`
}

// Stats aggregates a scan pass.
type Stats struct {
	Files       int            `json:"files"`
	TotalSize   int64          `json:"total_size"`
	ByExtension map[string]int `json:"by_extension"`
}

// Extensions returns a copy of the extension table.
func Extensions() map[string]string {
	out := make(map[string]string, len(extensions))
	for k, v := range extensions {
		out[k] = v
	}
	return out
}

// DetectRoots lists scan roots: the filesystem root plus anything mounted
// under /mnt and /media.
func DetectRoots() []string {
	roots := []string{"/"}
	for _, base := range []string{"/mnt", "/media"} {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				roots = append(roots, filepath.Join(base, e.Name()))
			}
		}
	}
	return roots
}

// Scan walks root collecting files whose extension is in the table. Dot
// directories and system directories are skipped; unreadable entries are
// skipped silently rather than aborting the walk.
func Scan(root string) ([]FoundFile, Stats, error) {
	var found []FoundFile
	stats := Stats{ByExtension: make(map[string]int)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			name := d.Name()
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if _, skip := skipDirs[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		desc, ok := extensions[ext]
		if !ok {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}

		found = append(found, FoundFile{
			Path:        path,
			Name:        d.Name(),
			Extension:   ext,
			Description: desc,
			Size:        fi.Size(),
			Modified:    fi.ModTime(),
		})
		stats.Files++
		stats.TotalSize += fi.Size()
		stats.ByExtension[ext]++
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, stats, nil
}

// PeakFiles filters a scan down to the ordered .pek paths the analyzer
// consumes.
func PeakFiles(found []FoundFile) []string {
	var paths []string
	for _, f := range found {
		if f.Extension == ".pek" {
			paths = append(paths, f.Path)
		}
	}
	return paths
}
