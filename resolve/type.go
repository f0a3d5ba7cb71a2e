package resolve

import (
	"github.com/logbob0401/libyang/ident"
	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

// TypeResult is the outcome of ResolveType: exactly one of a built-in
// tag (Typedef nil) or a typedef entity (Builtin is schema.BuiltinNone).
type TypeResult struct {
	Builtin schema.BuiltinTag
	Typedef *schema.Typedef
	Module  *schema.Module
}

// ResolveType resolves a (possibly prefix-qualified) type reference id
// to a built-in tag or a typedef entity, honoring lexical scope.
//
// startNode, when non-nil, is the lexically enclosing schema node the
// reference occurs within; startModule is the module the reference was
// written in.
func ResolveType(id string, startNode *schema.Node, startModule *schema.Module) (TypeResult, error) {
	if startModule == nil {
		return TypeResult{}, yerr.Internalf(yerr.WithMessage("ResolveType requires a non-nil starting module"))
	}

	var (
		searchModule *schema.Module
		name         string
	)

	prefix, localName, _, err := ident.SplitNodeID(id, 0)
	if err != nil {
		return TypeResult{}, err
	}

	if prefix != "" {
		name = localName
		resolved, ok := ResolvePrefix(startModule, prefix)
		if !ok {
			return TypeResult{}, yerr.ReferenceErrorf(
				yerr.WithMessagef("unknown prefix %q in type reference %q", prefix, id))
		}
		m, ok := resolved.(*schema.Module)
		if !ok {
			return TypeResult{}, yerr.Internalf(yerr.WithMessage("resolved prefix did not yield a *schema.Module"))
		}
		searchModule = m
		// built-ins are never prefix-qualified; skip the built-in check.
	} else {
		searchModule = startModule
		name = localName
		if tag, ok := schema.LookupBuiltin(name); ok {
			return TypeResult{Builtin: tag}, nil
		}
	}

	if searchModule == startModule && startNode != nil {
		for n := startNode; n != nil; n = n.Parent {
			if td := matchTypedef(name, n.Typedefs()); td != nil {
				return TypeResult{Typedef: td, Module: searchModule}, nil
			}
		}
	}

	for i := range searchModule.Typedefs {
		if searchModule.Typedefs[i].Name == name {
			return TypeResult{Typedef: &searchModule.Typedefs[i], Module: searchModule}, nil
		}
	}

	for _, inc := range searchModule.Includes {
		if inc.Submodule == nil {
			continue
		}
		for i := range inc.Submodule.Typedefs {
			if inc.Submodule.Typedefs[i].Name == name {
				return TypeResult{Typedef: &inc.Submodule.Typedefs[i], Module: searchModule}, nil
			}
		}
	}

	return TypeResult{}, yerr.NotFoundf(yerr.WithMessagef("type %q not found", id))
}

func matchTypedef(name string, typedefs []schema.Typedef) *schema.Typedef {
	for i := range typedefs {
		if typedefs[i].Name == name {
			return &typedefs[i]
		}
	}
	return nil
}
