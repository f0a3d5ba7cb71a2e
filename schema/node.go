package schema

// NodeType is the closed set of schema-node kinds. Package nodeid uses a
// bitmask over this enum to constrain acceptable terminal node types for
// a resolved path.
type NodeType int

const (
	Container NodeType = 1 << iota
	Choice
	Case
	Leaf
	LeafList
	List
	Anyxml
	Anydata
	Grouping
	ActionOrRPC
	Notification
	Input
	Output
)

// NodeTypeMask is a bitmask over NodeType, used by ResolveSchemaNodeID to
// constrain which terminal node types are acceptable.
type NodeTypeMask NodeType

// Allows reports whether mask accepts t.
func (mask NodeTypeMask) Allows(t NodeType) bool { return NodeType(mask)&t != 0 }

// AnyDataNode is a mask matching any node type, used by callers that do
// not need to constrain the terminal type.
const AnyDataNode NodeTypeMask = NodeTypeMask(^NodeType(0))

func (t NodeType) String() string {
	switch t {
	case Container:
		return "container"
	case Choice:
		return "choice"
	case Case:
		return "case"
	case Leaf:
		return "leaf"
	case LeafList:
		return "leaf-list"
	case List:
		return "list"
	case Anyxml:
		return "anyxml"
	case Anydata:
		return "anydata"
	case Grouping:
		return "grouping"
	case ActionOrRPC:
		return "action/rpc"
	case Notification:
		return "notification"
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Node is a schema node in the compiled tree: a tagged variant over
// NodeType rather than a polymorphic class hierarchy, with
// child/typedef/action/notification accessors that switch on the tag.
type Node struct {
	Type   NodeType
	Name   string
	Module *Module
	Parent *Node
	Status Status

	// children holds direct children for container/list/case/grouping/
	// input/output/notification nodes; choice nodes store their cases here
	// too (the child search transparently descends into choice/case).
	children []*Node

	// typedefs holds the schema-node-local typedefs, present only for
	// node types that can carry a `typedef` substatement (container,
	// list, grouping, rpc/action, input, output, notification).
	typedefs []Typedef

	// actions and notifications hold RPC/action and notification
	// children for node types that can define them (container, list,
	// grouping).
	actions       []*Node
	notifications []*Node

	// input/output are the implicit child containers of an
	// ActionOrRPC node; input defaults to an empty container even when
	// absent from the source (RFC 7950 §7.14.2).
	input  *Node
	output *Node
}

// NewNode constructs a Node of the given type, owned by mod, parented
// under parent (nil for a top-level node).
func NewNode(t NodeType, name string, mod *Module, parent *Node) *Node {
	return &Node{Type: t, Name: name, Module: mod, Parent: parent}
}

// Children returns n's direct children. Returns nil for node types that
// cannot carry children (leaf, leaf-list, anyxml, anydata).
func (n *Node) Children() []*Node {
	switch n.Type {
	case Container, List, Case, Choice, Grouping, Input, Output, Notification:
		return n.children
	default:
		return nil
	}
}

// AppendChild appends child to n's child list and sets child.Parent,
// panicking if n's node type cannot carry children. An internal
// invariant breach, never a user-facing condition.
func (n *Node) AppendChild(child *Node) {
	switch n.Type {
	case Container, List, Case, Choice, Grouping, Input, Output, Notification:
		child.Parent = n
		n.children = append(n.children, child)
	default:
		panic("schema: node type " + n.Type.String() + " cannot carry children")
	}
}

// Typedefs returns n's lexically-local typedefs. Returns nil for node
// types that cannot carry a `typedef` substatement.
func (n *Node) Typedefs() []Typedef {
	switch n.Type {
	case Container, List, Grouping, ActionOrRPC, Input, Output, Notification:
		return n.typedefs
	default:
		return nil
	}
}

// AppendTypedef appends t to n's lexically-local typedef list.
func (n *Node) AppendTypedef(t Typedef) {
	t.Scope = ScopeLexical
	t.Node = n
	n.typedefs = append(n.typedefs, t)
}

// Actions returns n's action/rpc children, for node types that can carry
// them (container, list, grouping).
func (n *Node) Actions() []*Node {
	switch n.Type {
	case Container, List, Grouping:
		return n.actions
	default:
		return nil
	}
}

// AppendAction appends an ActionOrRPC child node to n.
func (n *Node) AppendAction(action *Node) {
	switch n.Type {
	case Container, List, Grouping:
		action.Parent = n
		n.actions = append(n.actions, action)
	default:
		panic("schema: node type " + n.Type.String() + " cannot carry actions")
	}
}

// Notifications returns n's notification children.
func (n *Node) Notifications() []*Node {
	switch n.Type {
	case Container, List, Grouping:
		return n.notifications
	default:
		return nil
	}
}

// AppendNotification appends a Notification child node to n.
func (n *Node) AppendNotification(notif *Node) {
	switch n.Type {
	case Container, List, Grouping:
		notif.Parent = n
		n.notifications = append(n.notifications, notif)
	default:
		panic("schema: node type " + n.Type.String() + " cannot carry notifications")
	}
}

// Input returns an ActionOrRPC node's input container, creating an empty
// one on first access per RFC 7950 §7.14.2's implicit-input rule.
func (n *Node) Input() *Node {
	if n.Type != ActionOrRPC {
		return nil
	}
	if n.input == nil {
		n.input = NewNode(Input, "input", n.Module, n)
	}
	return n.input
}

// Output returns an ActionOrRPC node's output container, creating an
// empty one on first access.
func (n *Node) Output() *Node {
	if n.Type != ActionOrRPC {
		return nil
	}
	if n.output == nil {
		n.output = NewNode(Output, "output", n.Module, n)
	}
	return n.output
}

// ChildByName looks up a direct child of n whose local name matches name
// and whose owning module matches mod, descending transparently through
// choice/case nodes: they are traversed but do not satisfy a nodeid
// segment themselves unless explicitly named. Actions and notifications
// defined under n are matched as well.
func (n *Node) ChildByName(name string, mod *Module) *Node {
	for _, child := range n.Children() {
		if child.Type == Choice || child.Type == Case {
			if child.Name == name && child.Module == mod {
				return child
			}
			if found := child.ChildByName(name, mod); found != nil {
				return found
			}
			continue
		}
		if child.Name == name && child.Module == mod {
			return child
		}
	}
	for _, list := range [][]*Node{n.Actions(), n.Notifications()} {
		for _, child := range list {
			if child.Name == name && child.Module == mod {
				return child
			}
		}
	}
	return nil
}
