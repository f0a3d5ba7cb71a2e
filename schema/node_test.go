package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeChildByNameTransparentChoice(t *testing.T) {
	mod := &Module{Name: "m"}
	root := NewNode(Container, "top", mod, nil)
	choice := NewNode(Choice, "ch", mod, nil)
	root.AppendChild(choice)
	caseA := NewNode(Case, "a", mod, nil)
	choice.AppendChild(caseA)
	leaf := NewNode(Leaf, "x", mod, nil)
	caseA.AppendChild(leaf)

	found := root.ChildByName("x", mod)
	require.NotNil(t, found)
	assert.Same(t, leaf, found)

	assert.Same(t, choice, root.ChildByName("ch", mod), "a choice satisfies a segment that names it explicitly")
}

func TestNodeChildByNameModuleMismatch(t *testing.T) {
	modA := &Module{Name: "a"}
	modB := &Module{Name: "b"}
	root := NewNode(Container, "top", modA, nil)
	leaf := NewNode(Leaf, "x", modB, nil)
	root.AppendChild(leaf)

	assert.Nil(t, root.ChildByName("x", modA))
	assert.Same(t, leaf, root.ChildByName("x", modB))
}

func TestNodeInputOutputImplicit(t *testing.T) {
	mod := &Module{Name: "m"}
	rpc := NewNode(ActionOrRPC, "doit", mod, nil)

	in := rpc.Input()
	require.NotNil(t, in)
	assert.Equal(t, Input, in.Type)
	assert.Same(t, in, rpc.Input(), "Input must be idempotent")

	out := rpc.Output()
	require.NotNil(t, out)
	assert.Equal(t, Output, out.Type)
}

func TestNodeAppendChildPanicsOnLeaf(t *testing.T) {
	mod := &Module{Name: "m"}
	leaf := NewNode(Leaf, "x", mod, nil)
	assert.Panics(t, func() {
		leaf.AppendChild(NewNode(Leaf, "y", mod, nil))
	})
}

func TestTypedefScopeAssignment(t *testing.T) {
	mod := &Module{Name: "m"}
	node := NewNode(Container, "c", mod, nil)
	node.AppendTypedef(Typedef{Name: "T"})

	tds := node.Typedefs()
	require.Len(t, tds, 1)
	assert.Equal(t, ScopeLexical, tds[0].Scope)
	assert.Same(t, node, tds[0].Node)
}
