package resolve

import "github.com/logbob0401/libyang/schema"

// ResolvePrefix maps a prefix to the module it denotes within mod: mod's
// own prefix resolves to mod itself, otherwise the prefix is looked up
// among mod's imports. Runs identically over the parsed and compiled
// facets via schema.ModuleLike. No diagnostic is emitted on a miss;
// that decision, and the accompanying path-qualified message, is left
// to the caller.
func ResolvePrefix(mod schema.ModuleLike, prefix string) (schema.ModuleLike, bool) {
	if mod == nil {
		return nil, false
	}
	if prefix == mod.OwnPrefix() {
		return mod, true
	}
	m, ok := mod.ImportedModule(prefix)
	if !ok {
		return nil, false
	}
	return m, true
}
