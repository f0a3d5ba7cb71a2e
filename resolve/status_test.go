package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

func TestCheckStatus(t *testing.T) {
	modM := &schema.Module{Name: "M"}
	modOther := &schema.Module{Name: "other"}

	// Status violation: current leaf referencing an obsolete typedef in
	// the same module.
	err := CheckStatus(schema.StatusCurrent, modM, "x", schema.StatusObsolete, modM, "T")
	require.Error(t, err)
	kind, ok := yerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, yerr.Denied, kind)

	// deprecated referencing obsolete in same module: also denied.
	err = CheckStatus(schema.StatusDeprecated, modM, "x", schema.StatusObsolete, modM, "T")
	require.Error(t, err)

	// current referencing current: fine.
	assert.NoError(t, CheckStatus(schema.StatusCurrent, modM, "x", schema.StatusCurrent, modM, "T"))

	// cross-module references are unconstrained, even when the referent
	// is obsolete and the referrer is current.
	assert.NoError(t, CheckStatus(schema.StatusCurrent, modM, "x", schema.StatusObsolete, modOther, "T"))
}
