package yin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logbob0401/libyang/loader"
)

const sampleModule = `<?xml version="1.0" encoding="UTF-8"?>
<module name="example" xmlns="urn:ietf:params:xml:ns:yang:yin:1">
  <namespace uri="urn:example:example"/>
  <prefix value="ex"/>
  <revision date="2020-01-01"/>
  <revision date="2019-01-01"/>
  <import module="other">
    <prefix value="o"/>
  </import>
</module>`

const sampleSubmodule = `<?xml version="1.0" encoding="UTF-8"?>
<submodule name="example-sub" xmlns="urn:ietf:params:xml:ns:yang:yin:1">
  <belongs-to module="example"/>
  <revision date="2020-01-01"/>
</submodule>`

func TestParseModule(t *testing.T) {
	mod, sub, err := Parse([]byte(sampleModule), loader.FormatYIN, false)
	require.NoError(t, err)
	assert.Nil(t, sub)
	require.NotNil(t, mod)
	assert.Equal(t, "example", mod.Name)
	assert.Equal(t, "urn:example:example", mod.Namespace)
	assert.Equal(t, "ex", mod.Prefix)
	require.Len(t, mod.Revisions, 2)
	assert.Equal(t, "2020-01-01", mod.Revisions[0].Date)
	require.Len(t, mod.Imports, 1)
	assert.Equal(t, "other", mod.Imports[0].Name)
	assert.Equal(t, "o", mod.Imports[0].Prefix)
}

func TestParseSubmodule(t *testing.T) {
	mod, sub, err := Parse([]byte(sampleSubmodule), loader.FormatYIN, true)
	require.NoError(t, err)
	assert.Nil(t, mod)
	require.NotNil(t, sub)
	assert.Equal(t, "example-sub", sub.Name)
	assert.Equal(t, "example", sub.BelongsTo)
}

func TestParseRejectsNonYIN(t *testing.T) {
	_, _, err := Parse([]byte(sampleModule), loader.FormatYANG, false)
	require.Error(t, err)
}
