package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

func TestCheckModuleNameMismatch(t *testing.T) {
	ctx := NewContext()
	mod := &schema.Module{Name: "actual"}
	err := ctx.checkModule(mod, postParseExpect{name: "expected"})
	require.Error(t, err)
	kind, _ := yerr.KindOf(err)
	assert.Equal(t, yerr.InvalidInput, kind)
}

func TestCheckModuleRevisionMismatch(t *testing.T) {
	ctx := NewContext()
	mod := &schema.Module{Name: "m", Revisions: []schema.Revision{{Date: "2020-01-01"}}}
	err := ctx.checkModule(mod, postParseExpect{name: "m", revision: "2021-01-01"})
	require.Error(t, err)
}

func TestCheckModuleOK(t *testing.T) {
	ctx := NewContext()
	mod := &schema.Module{Name: "m", Revisions: []schema.Revision{{Date: "2020-01-01"}}}
	assert.NoError(t, ctx.checkModule(mod, postParseExpect{name: "m", revision: "2020-01-01"}))
}

func TestCheckSubmoduleBelongsToMismatch(t *testing.T) {
	ctx := NewContext()
	sub := &schema.Submodule{Name: "s", BelongsTo: "other"}
	err := ctx.checkSubmodule(sub, postParseExpect{name: "s", parent: "expected"})
	require.Error(t, err)
	kind, _ := yerr.KindOf(err)
	assert.Equal(t, yerr.ReferenceError, kind)
}

func TestCheckSubmoduleParsingIsCycle(t *testing.T) {
	ctx := NewContext()
	sub := &schema.Submodule{Name: "s", Parsing: true}
	err := ctx.checkSubmodule(sub, postParseExpect{name: "s"})
	require.Error(t, err)
	kind, _ := yerr.KindOf(err)
	assert.Equal(t, yerr.Cycle, kind)
}
