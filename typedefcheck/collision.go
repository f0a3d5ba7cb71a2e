/*
Package typedefcheck enforces global and scoped uniqueness of typedef
names across a module and its submodules.
*/
package typedefcheck

import (
	"fmt"

	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

// CheckTypedefs validates every typedef name in mod and its submodules:
// no collision with a built-in name, no duplicate top-level name across
// the module+submodules, and no scoped typedef shadowing a sibling, an
// ancestor's scoped typedef, or (per the RFC's scoping rule) an
// already-declared top-level name of the same module.
//
// CheckTypedefs walks top-level typedefs before any scoped ones, because
// the scoped pass's ancestor/global checks depend on the global set
// being fully populated first.
func CheckTypedefs(mod *schema.Module) error {
	globals := make(map[string]struct{})
	scoped := make(map[string]struct{})

	for i := range mod.Typedefs {
		if err := checkTypedef(mod, nil, &mod.Typedefs[i], globals, scoped); err != nil {
			return err
		}
	}
	for _, inc := range mod.Includes {
		if inc.Submodule == nil {
			continue
		}
		for i := range inc.Submodule.Typedefs {
			if err := checkTypedef(mod, nil, &inc.Submodule.Typedefs[i], globals, scoped); err != nil {
				return err
			}
		}
	}

	for _, node := range scopedTypedefNodes(mod) {
		for i := range node.Typedefs() {
			if err := checkScopedTypedef(mod, node, i, globals, scoped); err != nil {
				return err
			}
		}
	}

	return nil
}

// scopedTypedefNodes collects every schema node in mod's top-level data
// tree (transitively) that carries at least one local typedef, by
// walking the tree from each of mod.Data's roots.
func scopedTypedefNodes(mod *schema.Module) []*schema.Node {
	var nodes []*schema.Node
	var walk func(n *schema.Node)
	walk = func(n *schema.Node) {
		if len(n.Typedefs()) > 0 {
			nodes = append(nodes, n)
		}
		for _, child := range n.Children() {
			walk(child)
		}
		for _, action := range n.Actions() {
			walk(action)
			if in := action.Input(); in != nil {
				walk(in)
			}
			if out := action.Output(); out != nil {
				walk(out)
			}
		}
		for _, notif := range n.Notifications() {
			walk(notif)
		}
	}
	for _, root := range mod.Data {
		walk(root)
	}
	return nodes
}

// checkTypedef validates a single top-level typedef (node == nil).
func checkTypedef(mod *schema.Module, node *schema.Node, tpdf *schema.Typedef, globals, scoped map[string]struct{}) error {
	name := tpdf.Name

	if schema.IsBuiltinName(name) {
		return yerr.Collisionf(yerr.WithPath(typedefPath(mod, node, name)),
			yerr.WithMessagef("typedef %q collides with a built-in type name", name))
	}

	if _, exists := globals[name]; exists {
		return yerr.Collisionf(yerr.WithPath(typedefPath(mod, node, name)),
			yerr.WithMessagef("typedef %q collides with another top-level type", name))
	}
	globals[name] = struct{}{}
	return nil
}

// checkScopedTypedef validates the typedef at index idx in node's local
// typedef list: it compares only against earlier siblings, then walks
// ancestors, then checks against the already-populated top-level set.
func checkScopedTypedef(mod *schema.Module, node *schema.Node, idx int, globals, scoped map[string]struct{}) error {
	typedefs := node.Typedefs()
	name := typedefs[idx].Name

	if schema.IsBuiltinName(name) {
		return yerr.Collisionf(yerr.WithPath(typedefPath(mod, node, name)),
			yerr.WithMessagef("typedef %q collides with a built-in type name", name))
	}

	for i := 0; i < idx; i++ {
		if typedefs[i].Name == name {
			return yerr.Collisionf(yerr.WithPath(typedefPath(mod, node, name)),
				yerr.WithMessagef("typedef %q collides with a sibling type", name))
		}
	}
	for ancestor := node.Parent; ancestor != nil; ancestor = ancestor.Parent {
		for _, td := range ancestor.Typedefs() {
			if td.Name == name {
				return yerr.Collisionf(yerr.WithPath(typedefPath(mod, node, name)),
					yerr.WithMessagef("typedef %q collides with an ancestor's scoped type", name))
			}
		}
	}

	// RFC 7950 §6.2.1: a scoped type is visible within its enclosing
	// statement and its substatements; it is not required to avoid
	// colliding with a top-level name that was never declared. A scoped
	// typedef may only collide with a top-level name that actually
	// exists in globals.
	if _, exists := globals[name]; exists {
		return yerr.Collisionf(yerr.WithPath(typedefPath(mod, node, name)),
			yerr.WithMessagef("scoped typedef %q collides with a declared top-level type", name))
	}
	scoped[name] = struct{}{}
	return nil
}

func typedefPath(mod *schema.Module, node *schema.Node, name string) string {
	if node == nil {
		return fmt.Sprintf("%s/%s", mod.Name, name)
	}
	return fmt.Sprintf("%s/.../%s/%s", mod.Name, node.Name, name)
}
