package loader

import (
	"os"
	"regexp"
)

var searchFileRE = regexp.MustCompile(`^([^@]+)(?:@(\d{4}-\d{2}-\d{2}))?\.(yang|yin)$`)

// searchMatch is a candidate file found by scanning a search directory.
type searchMatch struct {
	path     string
	revision string
	format   Format
}

// searchDirList returns the directories to scan, honoring
// disable-searchdirs and disable-searchdir-cwd.
func (c *Context) searchDirList() []string {
	if c.disableSearchDirs {
		return nil
	}
	dirs := c.searchDirs
	if !c.disableSearchDirCWD {
		dirs = append(append([]string{}, dirs...), ".")
	}
	return dirs
}

// findOnFilesystem scans dirs for a module source file: for each
// directory, enumerate entries matching name[@YYYY-MM-DD].{yang|yin};
// an exact revision match wins when requested, otherwise the
// lexicographically largest revision, or the bare name.ext if no dated
// file exists. YANG takes precedence over YIN at the same revision.
func findOnFilesystem(dirs []string, name, revision string) (searchMatch, bool) {
	var best searchMatch
	var found bool

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			m := searchFileRE.FindStringSubmatch(entry.Name())
			if m == nil || m[1] != name {
				continue
			}
			cand := searchMatch{path: dir + "/" + entry.Name(), revision: m[2]}
			if m[3] == "yin" {
				cand.format = FormatYIN
			} else {
				cand.format = FormatYANG
			}

			if revision != "" {
				if cand.revision != revision {
					continue
				}
				if !found || betterFormat(cand.format, best.format) {
					best, found = cand, true
				}
				continue
			}

			if !found {
				best, found = cand, true
				continue
			}
			if cand.revision == best.revision {
				if betterFormat(cand.format, best.format) {
					best = cand
				}
				continue
			}
			if cand.revision > best.revision {
				best = cand
			}
		}
	}

	return best, found
}

// betterFormat reports whether candidate should replace current when both
// are present at the same revision: YANG beats YIN.
func betterFormat(candidate, current Format) bool {
	return candidate == FormatYANG && current == FormatYIN
}
