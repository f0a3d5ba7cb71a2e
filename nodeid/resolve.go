package nodeid

import (
	"strings"

	"github.com/logbob0401/libyang/ident"
	"github.com/logbob0401/libyang/resolve"
	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

// ResultFlags records resolution side-effects the caller needs: whether
// the final node sits inside an rpc/action's input or output container,
// or inside a notification.
type ResultFlags struct {
	RPCInput       bool
	RPCOutput      bool
	InNotification bool
}

// ResolveSchemaNodeID walks id through the compiled schema tree starting
// at ctxNode (descendant path, id must not start with "/") or, when
// ctxNode is nil, from the top level (absolute path, id must start with
// "/"), where the first segment is looked up among the top-level nodes
// of the module its prefix names (ctxModule when it has no prefix).
// mask constrains the acceptable terminal node
// types; implement, when true, causes every module resolved along the
// way to be marked implemented.
func ResolveSchemaNodeID(id string, ctxNode *schema.Node, ctxModule *schema.Module, mask schema.NodeTypeMask, implement bool) (*schema.Node, ResultFlags, error) {
	var flags ResultFlags

	if ctxNode == nil {
		if !strings.HasPrefix(id, "/") {
			return nil, flags, yerr.InvalidInputf(yerr.WithMessage(
				"absolute-schema-nodeid must start with '/'"))
		}
		id = id[1:]
	} else {
		if strings.HasPrefix(id, "/") {
			return nil, flags, yerr.InvalidInputf(yerr.WithMessage(
				"descendant-schema-nodeid must not start with '/'"))
		}
	}

	if id == "" {
		return nil, flags, yerr.InvalidInputf(yerr.WithMessage("empty schema-nodeid"))
	}

	current := ctxNode
	pos := 0
	for pos < len(id) {
		prefix, name, next, err := ident.SplitNodeID(id, pos)
		if err != nil {
			return nil, flags, yerr.InvalidInputf(yerr.WithPath(id), yerr.WithCause(err))
		}

		segmentModule := ctxModule
		if prefix != "" {
			resolved, ok := resolve.ResolvePrefix(ctxModule, prefix)
			if !ok {
				return nil, flags, yerr.ReferenceErrorf(yerr.WithPath(id),
					yerr.WithMessagef("unknown prefix %q", prefix))
			}
			m, ok := resolved.(*schema.Module)
			if !ok {
				return nil, flags, yerr.Internalf(yerr.WithMessage("resolved prefix is not a *schema.Module"))
			}
			segmentModule = m
		}

		if implement && segmentModule != nil && !segmentModule.Implemented {
			segmentModule.Implemented = true
		}

		if current != nil && current.Type == schema.ActionOrRPC {
			switch name {
			case "input":
				current = current.Input()
				flags.RPCInput = true
				if pos, err = consumeSeparator(id, next); err != nil {
					return nil, flags, err
				}
				continue
			case "output":
				current = current.Output()
				flags.RPCOutput = true
				if pos, err = consumeSeparator(id, next); err != nil {
					return nil, flags, err
				}
				continue
			default:
				// other names are looked up in the action's default
				// (input) child set.
				in := current.Input()
				child := in.ChildByName(name, segmentModule)
				if child == nil {
					return nil, flags, yerr.NotFoundf(yerr.WithPath(id),
						yerr.WithMessagef("no child %q in rpc/action input", name))
				}
				current = child
				flags.RPCInput = true
				if pos, err = consumeSeparator(id, next); err != nil {
					return nil, flags, err
				}
				continue
			}
		}

		var child *schema.Node
		if current == nil {
			child = findTopLevel(segmentModule, name, segmentModule)
		} else {
			child = current.ChildByName(name, segmentModule)
		}
		if child == nil {
			return nil, flags, yerr.NotFoundf(yerr.WithPath(id),
				yerr.WithMessagef("no child %q found", name))
		}
		current = child
		if current.Type == schema.Notification {
			flags.InNotification = true
		}

		if pos, err = consumeSeparator(id, next); err != nil {
			return nil, flags, err
		}
	}

	if current == nil {
		return nil, flags, yerr.NotFoundf(yerr.WithPath(id), yerr.WithMessage("nodeid resolved to nothing"))
	}
	if !mask.Allows(current.Type) {
		return nil, flags, yerr.Deniedf(yerr.WithPath(id),
			yerr.WithMessagef("node %q has type %s, not acceptable here", current.Name, current.Type))
	}

	return current, flags, nil
}

// consumeSeparator advances past exactly one '/' separator between
// segments. Reaching the end of id before finding one is not an error
// (the path is simply finished); finding anything other than '/', or a
// '/' with nothing following it, is a malformed separator.
func consumeSeparator(id string, pos int) (int, error) {
	if pos >= len(id) {
		return pos, nil
	}
	if id[pos] != '/' {
		return pos, yerr.InvalidInputf(yerr.WithPath(id),
			yerr.WithMessagef("expected '/' separator at position %d", pos))
	}
	pos++
	if pos >= len(id) {
		return pos, yerr.InvalidInputf(yerr.WithPath(id),
			yerr.WithMessage("schema-nodeid must not end with a trailing separator"))
	}
	return pos, nil
}

func findTopLevel(ctxModule *schema.Module, name string, segmentModule *schema.Module) *schema.Node {
	if ctxModule == nil {
		return nil
	}
	for _, n := range ctxModule.Data {
		if n.Name == name && n.Module == segmentModule {
			return n
		}
		if n.Type == schema.Choice || n.Type == schema.Case {
			if found := n.ChildByName(name, segmentModule); found != nil {
				return found
			}
		}
	}
	return nil
}
