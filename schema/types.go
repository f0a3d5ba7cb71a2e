// Package schema holds the data model every other component in this
// module operates on: modules, submodules, imports, revisions, typedefs,
// and the compiled schema-node tree.
//
// Entities here are populated by the loader (see package loader) and by
// an external textual parser; this package supplies the shape, not the
// population logic.
package schema

// LatestRevision tracks whether a module is the newest known revision of
// its name, and whether that fact has been confirmed.
type LatestRevision int

const (
	// LatestUnknown means the module is not known to be the latest revision.
	LatestUnknown LatestRevision = 0
	// LatestTentative means the parser marked the module as the newest
	// revision it knows of, pending confirmation by the loader.
	LatestTentative LatestRevision = 1
	// LatestConfirmed means the loader confirmed the module as latest: it
	// was tagged LatestTentative and loaded with no explicit revision
	// requested, whichever source (callback or search directory) it came
	// from.
	LatestConfirmed LatestRevision = 2
)

// Revision is a single `revision` statement's date, validated for both
// syntax and calendrical correctness by package ident.
type Revision struct {
	Date        string
	Description string
	Reference   string
}

// Import is a `(prefix, module-name, optional revision) -> module`
// binding. Prefix must be unique within the owning module and disjoint
// from the module's own prefix.
type Import struct {
	Prefix   string
	Name     string
	Revision string
	Module   *Module
}

// Include is a `(submodule-name, optional revision) -> submodule`
// binding.
type Include struct {
	Name      string
	Revision  string
	Submodule *Submodule
}

// Module is a named, optionally revision-dated schema unit with a parsed
// facet (this struct) and an optional compiled facet.
type Module struct {
	Name      string
	Namespace string
	Prefix    string
	Revisions []Revision // newest first

	Imports  []Import
	Includes []Include
	Typedefs []Typedef
	Data     []*Node // top-level data-tree nodes

	Implemented    bool
	LatestRevision LatestRevision
	Parsing        bool // re-entry guard against import/include cycles

	// Filepath is the absolute path the module was loaded from, recorded
	// as provenance for diagnostics. Empty when loaded via the import
	// callback with no on-disk origin.
	Filepath string

	Compiled *CompiledModule
}

// Submodule has the same shape as Module but belongs to a parent module
// by name instead of carrying its own namespace/prefix.
type Submodule struct {
	Name       string
	BelongsTo  string
	Revisions  []Revision

	Includes []Include
	Typedefs []Typedef
	Data     []*Node

	LatestRevision LatestRevision
	Parsing        bool

	Filepath string
}

// CompiledModule is the frozen, resolved graph produced once a Module
// transitions from parsed-only to compiled. All collision, cycle, and
// status invariants must hold at freeze time; the checkers in
// typedefcheck and resolve are what enforce that.
type CompiledModule struct {
	Module *Module
	Data   []*Node
}

// ModuleLike is the minimal interface package resolve's prefix resolver
// needs, satisfied by both *Module and *CompiledModule so the same
// algorithm runs over either facet.
type ModuleLike interface {
	OwnPrefix() string
	ImportedModule(prefix string) (*Module, bool)
}

// OwnPrefix implements ModuleLike.
func (m *Module) OwnPrefix() string { return m.Prefix }

// ImportedModule implements ModuleLike by scanning m's import list.
func (m *Module) ImportedModule(prefix string) (*Module, bool) {
	for _, imp := range m.Imports {
		if imp.Prefix == prefix {
			return imp.Module, imp.Module != nil
		}
	}
	return nil, false
}

// OwnPrefix implements ModuleLike for the compiled facet, delegating to
// the owning parsed module: the compiled facet carries no prefix or
// import list of its own.
func (c *CompiledModule) OwnPrefix() string {
	if c.Module == nil {
		return ""
	}
	return c.Module.Prefix
}

// ImportedModule implements ModuleLike for the compiled facet by scanning
// the owning parsed module's import list.
func (c *CompiledModule) ImportedModule(prefix string) (*Module, bool) {
	if c.Module == nil {
		return nil, false
	}
	return c.Module.ImportedModule(prefix)
}

// TypedefScope distinguishes a typedef declared at a module's top level
// from one declared lexically inside a schema node.
type TypedefScope int

const (
	ScopeTopLevel TypedefScope = iota
	ScopeLexical
)

// Typedef is a named derived type.
type Typedef struct {
	Name  string
	Base  BuiltinTag // resolved base built-in tag, once known
	Scope TypedefScope
	// Node is the lexically-enclosing schema node when Scope is
	// ScopeLexical; nil for top-level typedefs.
	Node   *Node
	Status Status
}

// Status tracks the lifecycle of a named definition.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return "current"
	}
}
