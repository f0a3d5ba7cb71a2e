package loader

import "github.com/logbob0401/libyang/schema"

// Format tags the textual encoding of a module or submodule source.
type Format int

const (
	FormatYANG Format = iota
	FormatYIN
)

func (f Format) String() string {
	if f == FormatYIN {
		return "yin"
	}
	return "yang"
}

// ImportCallback is the user-supplied acquisition hook: given a module
// name and optional revision (and, for a submodule request, the
// submodule's own name/revision), it returns the source bytes and their
// format, or ok=false on a miss.
type ImportCallback func(moduleName, revision, submoduleName, submoduleRevision string, userData interface{}) (format Format, data []byte, ok bool)

// ParseFunc is the textual-parser collaborator hook: given raw source
// bytes and their format, it returns a parsed module or submodule
// (exactly one of the two is non-nil on success). Package yin supplies a
// default implementation for the YIN format.
type ParseFunc func(data []byte, format Format, isSubmodule bool) (module *schema.Module, submodule *schema.Submodule, err error)

// CompileFunc is the semantic-compiler collaborator hook invoked when a
// module is loaded with implement=true. Left nil, the loader marks the
// module implemented without compiling it; the full compile pipeline
// lives outside this package.
type CompileFunc func(*schema.Module) error

// Logger is the loader's optional diagnostic sink, defaulting to a no-op
// so the core never writes to stderr directly; logging is left to the
// caller to wire up.
type Logger interface {
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Warnf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{}) {}

// Context holds the per-context mutable state the loader operates on: the
// module/submodule registries, acquisition sources, and behavior flags.
// Deliberately instance-scoped rather than process-global, so a process
// can host multiple independent loading contexts concurrently.
type Context struct {
	modules    map[string][]*schema.Module
	submodules map[string][]*schema.Submodule

	importCallback ImportCallback
	userData       interface{}
	parseFunc      ParseFunc
	compileFunc    CompileFunc
	logger         Logger

	searchDirs []string

	preferSearchDirs    bool
	disableSearchDirs   bool
	disableSearchDirCWD bool
}

// Option configures a Context at construction, following the
// functional-options idiom.
type Option func(*Context)

// WithSearchDir appends dir to the context's search-directory list.
func WithSearchDir(dir string) Option {
	return func(c *Context) { c.searchDirs = append(c.searchDirs, dir) }
}

// WithImportCallback installs the user-supplied import callback and its
// opaque user data, passed back to the callback on every invocation.
func WithImportCallback(cb ImportCallback, userData interface{}) Option {
	return func(c *Context) {
		c.importCallback = cb
		c.userData = userData
	}
}

// WithParseFunc installs the textual-parser collaborator. Without one,
// Load/LoadSubmodule fail with a system error once source bytes have
// been acquired, since there is nothing to turn them into a module.
func WithParseFunc(fn ParseFunc) Option {
	return func(c *Context) { c.parseFunc = fn }
}

// WithCompileFunc installs the semantic-compiler collaborator invoked for
// implement=true loads.
func WithCompileFunc(fn CompileFunc) Option {
	return func(c *Context) { c.compileFunc = fn }
}

// WithLogger installs a diagnostic sink for warnings the loader emits,
// e.g. a search-directory file name that doesn't match the module and
// revision it was found to contain.
func WithLogger(l Logger) Option {
	return func(c *Context) { c.logger = l }
}

// PreferSearchDirs causes acquisition to try the filesystem before the
// import callback, reversing the default callback-then-filesystem order.
func PreferSearchDirs() Option {
	return func(c *Context) { c.preferSearchDirs = true }
}

// DisableSearchDirs turns off filesystem acquisition entirely.
func DisableSearchDirs() Option {
	return func(c *Context) { c.disableSearchDirs = true }
}

// DisableSearchDirCWD excludes the current working directory from the
// implicit search-directory list.
func DisableSearchDirCWD() Option {
	return func(c *Context) { c.disableSearchDirCWD = true }
}

// NewContext constructs a Context configured by opts.
func NewContext(opts ...Option) *Context {
	c := &Context{
		modules:    make(map[string][]*schema.Module),
		submodules: make(map[string][]*schema.Submodule),
		logger:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Modules returns every revision of name currently in the registry, in no
// particular order. Used by resolvers and tests; the loader itself is the
// only writer.
func (c *Context) Modules(name string) []*schema.Module {
	return c.modules[name]
}

func (c *Context) register(mod *schema.Module) {
	c.modules[mod.Name] = append(c.modules[mod.Name], mod)
}

func (c *Context) registerSubmodule(sub *schema.Submodule) {
	c.submodules[sub.Name] = append(c.submodules[sub.Name], sub)
}

func (c *Context) unregister(mod *schema.Module) {
	list := c.modules[mod.Name]
	for i, m := range list {
		if m == mod {
			c.modules[mod.Name] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
