package loader

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

// Load acquires and returns the module named name at revision (empty for
// "any, preferring latest"), implementing it when implement is true.
func (c *Context) Load(name, revision string, implement bool) (*schema.Module, error) {
	if mod := c.lookupModule(name, revision); mod != nil {
		if mod.Parsing {
			return nil, yerr.Cyclef(yerr.WithMessagef("module %q is already being parsed (import cycle)", name))
		}
		if err := c.enforceImplementedUniqueness(name, mod, implement); err != nil {
			return nil, err
		}
		if implement && !mod.Implemented {
			if err := c.implement(mod); err != nil {
				c.unregister(mod)
				return nil, err
			}
		}
		return mod, nil
	}

	if err := c.enforceImplementedUniqueness(name, nil, implement); err != nil {
		return nil, err
	}

	data, format, path, err := c.acquire(name, revision, "", "")
	if err != nil {
		return nil, err
	}

	if c.parseFunc == nil {
		return nil, yerr.Systemf(yerr.WithMessage("loader: no ParseFunc configured to parse acquired source"))
	}
	mod, _, err := c.parseFunc(data, format, false)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if mod == nil {
		return nil, yerr.Internalf(yerr.WithMessage("loader: ParseFunc returned no module and no error"))
	}

	if err := c.checkModule(mod, postParseExpect{name: name, revision: revision, path: path}); err != nil {
		return nil, err
	}
	mod.Filepath = path

	if revision == "" && mod.LatestRevision == schema.LatestTentative {
		mod.LatestRevision = schema.LatestConfirmed
	}

	c.register(mod)

	if implement {
		if err := c.implement(mod); err != nil {
			c.unregister(mod)
			return nil, err
		}
	}

	return mod, nil
}

// implement runs the semantic-compiler collaborator (if configured) and
// marks mod implemented. Callers remove mod from the registry themselves
// on compile failure.
func (c *Context) implement(mod *schema.Module) error {
	if c.compileFunc != nil {
		if err := c.compileFunc(mod); err != nil {
			return errors.WithStack(err)
		}
	}
	mod.Implemented = true
	return nil
}

// enforceImplementedUniqueness fails with denied when implement is set
// and a different revision of name is already implemented than would be
// returned: at most one revision of a module may be implemented at once.
func (c *Context) enforceImplementedUniqueness(name string, candidate *schema.Module, implement bool) error {
	if !implement {
		return nil
	}
	for _, mod := range c.modules[name] {
		if mod.Implemented && mod != candidate {
			return yerr.Deniedf(yerr.WithPath(name),
				yerr.WithMessagef("module %q revision %q is already implemented", name, newestRevision(mod.Revisions)))
		}
	}
	return nil
}

// lookupModule resolves against the registry: exact revision match when
// requested, else the entry marked confirmed-latest, else any entry,
// else nil.
func (c *Context) lookupModule(name, revision string) *schema.Module {
	list := c.modules[name]
	if len(list) == 0 {
		return nil
	}
	if revision != "" {
		for _, mod := range list {
			if newestRevision(mod.Revisions) == revision {
				return mod
			}
		}
		return nil
	}
	for _, mod := range list {
		if mod.LatestRevision == schema.LatestConfirmed {
			return mod
		}
	}
	return list[0]
}

// LoadSubmodule acquires and returns the submodule named name at
// revision, belonging to parent.
func (c *Context) LoadSubmodule(name, revision string, parent *schema.Module) (*schema.Submodule, error) {
	for _, inc := range parent.Includes {
		if inc.Submodule == nil {
			continue
		}
		if inc.Submodule.Name == name && (revision == "" || newestRevision(inc.Submodule.Revisions) == revision) {
			if inc.Submodule.Parsing {
				return nil, yerr.Cyclef(yerr.WithMessagef("submodule %q is already being parsed (include cycle)", name))
			}
			return inc.Submodule, nil
		}
	}
	for _, sub := range c.submodules[name] {
		if revision == "" || newestRevision(sub.Revisions) == revision {
			if sub.Parsing {
				return nil, yerr.Cyclef(yerr.WithMessagef("submodule %q is already being parsed (include cycle)", name))
			}
			return sub, nil
		}
	}

	data, format, path, err := c.acquire(parent.Name, newestRevision(parent.Revisions), name, revision)
	if err != nil {
		return nil, err
	}
	if c.parseFunc == nil {
		return nil, yerr.Systemf(yerr.WithMessage("loader: no ParseFunc configured to parse acquired source"))
	}
	_, sub, err := c.parseFunc(data, format, true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if sub == nil {
		return nil, yerr.Internalf(yerr.WithMessage("loader: ParseFunc returned no submodule and no error"))
	}

	if err := c.checkSubmodule(sub, postParseExpect{name: name, revision: revision, parent: parent.Name, path: path}); err != nil {
		return nil, err
	}
	sub.Filepath = path

	if revision == "" && sub.LatestRevision == schema.LatestTentative {
		sub.LatestRevision = schema.LatestConfirmed
	}

	c.registerSubmodule(sub)
	return sub, nil
}

// acquire tries the callback and filesystem sources in the order
// dictated by prefer-searchdirs, falling through on a miss only. It
// returns the source bytes, their format, and the absolute on-disk path
// (empty for callback-sourced data). The filesystem is searched for the
// submodule when submoduleName is set, else for the module.
func (c *Context) acquire(name, revision, submoduleName, submoduleRevision string) ([]byte, Format, string, error) {
	target, targetRevision := name, revision
	if submoduleName != "" {
		target, targetRevision = submoduleName, submoduleRevision
	}
	tryCallback := func() ([]byte, Format, string, bool, error) {
		if c.importCallback == nil {
			return nil, 0, "", false, nil
		}
		format, data, ok := c.importCallback(name, revision, submoduleName, submoduleRevision, c.userData)
		if !ok {
			return nil, 0, "", false, nil
		}
		return data, format, "", true, nil
	}
	tryFilesystem := func() ([]byte, Format, string, bool, error) {
		match, found := findOnFilesystem(c.searchDirList(), target, targetRevision)
		if !found {
			return nil, 0, "", false, nil
		}
		data, err := os.ReadFile(match.path)
		if err != nil {
			return nil, 0, "", false, yerr.Systemf(yerr.WithPath(match.path), yerr.WithCause(err))
		}
		path := match.path
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return data, match.format, path, true, nil
	}

	first, second := tryCallback, tryFilesystem
	if c.preferSearchDirs {
		first, second = tryFilesystem, tryCallback
	}

	if data, format, path, ok, err := first(); err != nil {
		return nil, 0, "", err
	} else if ok {
		return data, format, path, nil
	}
	if data, format, path, ok, err := second(); err != nil {
		return nil, 0, "", err
	} else if ok {
		return data, format, path, nil
	}

	return nil, 0, "", yerr.NotFoundf(yerr.WithPath(target),
		yerr.WithMessagef("module %q not found via callback or search directories", target))
}
