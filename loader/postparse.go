package loader

import (
	"path/filepath"
	"strings"

	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

// postParseExpect carries the identity the caller expected before
// acquisition began, checked against what the parser actually produced.
type postParseExpect struct {
	name     string
	revision string
	parent   string // expected belongs-to, submodules only
	path     string
}

// checkModule validates a freshly parsed module against expect, emitting
// a filename-structure warning (not an error) rather than failing when
// the source file's name doesn't match name[@rev].ext.
func (c *Context) checkModule(mod *schema.Module, expect postParseExpect) error {
	if expect.name != "" && expect.name != mod.Name {
		return yerr.InvalidInputf(yerr.WithPath(expect.path),
			yerr.WithMessagef("expected module %q, parsed %q", expect.name, mod.Name))
	}
	if expect.revision != "" && newestRevision(mod.Revisions) != expect.revision {
		return yerr.InvalidInputf(yerr.WithPath(expect.path),
			yerr.WithMessagef("expected revision %q, parsed %q", expect.revision, newestRevision(mod.Revisions)))
	}
	c.warnOnFilenameMismatch(expect.path, mod.Name, newestRevision(mod.Revisions))
	return nil
}

// checkSubmodule validates a freshly parsed submodule, additionally
// enforcing the belongs-to/expected-parent match and the include-cycle
// guard on its own Parsing flag.
func (c *Context) checkSubmodule(sub *schema.Submodule, expect postParseExpect) error {
	if sub.Parsing {
		return yerr.Cyclef(yerr.WithPath(expect.path),
			yerr.WithMessagef("submodule %q is already being parsed (include cycle)", sub.Name))
	}
	if expect.name != "" && expect.name != sub.Name {
		return yerr.InvalidInputf(yerr.WithPath(expect.path),
			yerr.WithMessagef("expected submodule %q, parsed %q", expect.name, sub.Name))
	}
	if expect.revision != "" && newestRevision(sub.Revisions) != expect.revision {
		return yerr.InvalidInputf(yerr.WithPath(expect.path),
			yerr.WithMessagef("expected revision %q, parsed %q", expect.revision, newestRevision(sub.Revisions)))
	}
	if expect.parent != "" && sub.BelongsTo != expect.parent {
		return yerr.ReferenceErrorf(yerr.WithPath(expect.path),
			yerr.WithMessagef("submodule %q belongs to %q, expected %q", sub.Name, sub.BelongsTo, expect.parent))
	}
	c.warnOnFilenameMismatch(expect.path, sub.Name, newestRevision(sub.Revisions))
	return nil
}

func newestRevision(revs []schema.Revision) string {
	if len(revs) == 0 {
		return ""
	}
	return revs[0].Date
}

// warnOnFilenameMismatch emits a warning, not an error, when path's base
// name doesn't structurally match name[@revision].{yang|yin}.
func (c *Context) warnOnFilenameMismatch(path, name, revision string) {
	if path == "" {
		return
	}
	base := filepath.Base(path)
	want := name
	if revision != "" {
		want = name + "@" + revision
	}
	if !strings.HasPrefix(base, want+".") {
		c.logger.Warnf("loader: file name %q does not match expected %q[@revision].{yang|yin}", base, want)
	}
}
