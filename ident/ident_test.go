package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		start   int
		want    string
		wantEnd int
		wantErr bool
	}{
		{name: "S1 simple", input: "foo-bar.1 baz", start: 0, want: "foo-bar.1", wantEnd: 9},
		{name: "underscore start", input: "_x", start: 0, want: "_x", wantEnd: 2},
		{name: "digit start rejected", input: "1abc", start: 0, wantErr: true, wantEnd: 0},
		{name: "colon stops identifier", input: "ns:list", start: 0, want: "ns", wantEnd: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, end, err := ParseIdentifier(tc.input, tc.start)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.start, end, "rejected inputs must not advance the cursor")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestSplitNodeID(t *testing.T) {
	// Nodeid split with prefix.
	prefix, name, end, err := SplitNodeID("ns:list", 0)
	require.NoError(t, err)
	assert.Equal(t, "ns", prefix)
	assert.Equal(t, "list", name)
	assert.Equal(t, 7, end)

	// Round trip property 6: split(join(prefix, name)) == (prefix, name).
	prefix, name, _, err = SplitNodeID("list", 0)
	require.NoError(t, err)
	assert.Equal(t, "", prefix)
	assert.Equal(t, "list", name)
}

func TestSplitNodeIDMissingNameAfterColon(t *testing.T) {
	_, _, end, err := SplitNodeID("ns:", 0)
	require.Error(t, err)
	assert.Equal(t, 0, end)
}

func TestSplitNodeIDRoundTrip(t *testing.T) {
	for _, tc := range []struct{ prefix, name string }{
		{prefix: "", name: "leaf"},
		{prefix: "p", name: "x"},
		{prefix: "acme-corp", name: "my_leaf-1.2"},
	} {
		joined := tc.name
		if tc.prefix != "" {
			joined = tc.prefix + ":" + tc.name
		}
		prefix, name, end, err := SplitNodeID(joined, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.prefix, prefix)
		assert.Equal(t, tc.name, name)
		assert.Equal(t, len(joined), end)
	}
}
