package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognizeKeyword(t *testing.T) {
	// Keyword recognition boundary.
	assert.Equal(t, KwLeafList, RecognizeKeyword("leaf-list", 0))
	assert.Equal(t, KwLeaf, RecognizeKeyword("leaf", 0))
	assert.Equal(t, KeywordNone, RecognizeKeyword("leafx", 0))
}

func TestRecognizeKeywordPrefixedIsAlwaysExtension(t *testing.T) {
	// Any prefixed keyword is a vendor extension, even if the local part
	// happens to spell a real keyword (prefix length > 0 short-circuits).
	assert.Equal(t, KeywordCustomExtension, RecognizeKeyword("leaf", 4))
}

func TestRecognizeKeywordTotalFunction(t *testing.T) {
	// Property 8: for every input, either exactly one keyword tag or none.
	seen := map[Keyword]string{}
	for kw := range keywords {
		tag := RecognizeKeyword(kw, 0)
		if other, ok := seen[tag]; ok {
			t.Fatalf("keywords %q and %q share tag %v", other, kw, tag)
		}
		seen[tag] = kw
	}
}

func TestRecognizeKeywordFullSet(t *testing.T) {
	all := []string{
		"module", "submodule", "import", "include", "belongs-to", "prefix",
		"namespace", "revision", "revision-date", "typedef", "type",
		"grouping", "uses", "container", "leaf", "leaf-list", "list",
		"choice", "case", "anyxml", "anydata", "augment", "deviation",
		"deviate", "rpc", "action", "notification", "input", "output",
		"feature", "if-feature", "identity", "base", "extension",
		"argument", "yin-element", "status", "description", "reference",
		"organization", "contact", "default", "config", "mandatory",
		"min-elements", "max-elements", "ordered-by", "key", "unique",
		"presence", "when", "must", "error-app-tag", "error-message",
		"path", "pattern", "length", "range", "enum", "bit", "value",
		"position", "fraction-digits", "require-instance", "modifier",
		"units", "refine", "yang-version",
	}
	for _, kw := range all {
		assert.NotEqual(t, KeywordNone, RecognizeKeyword(kw, 0), "keyword %q must be recognized", kw)
	}
}
