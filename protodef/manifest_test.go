package protodef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `{
  "riak":    {"proto": "riak.proto", "go_package": "github.com/vickyqiu/riak-pb/gen/riak"},
  "riak_kv": {"proto": "riak_kv.proto", "go_package": "github.com/vickyqiu/riak-pb/gen/riak_kv", "alias": "kv"},
  "riak_dt": {"go_package": "github.com/vickyqiu/riak-pb/gen/riak-dt", "package": "riak_dt"}
}`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	require.NoError(t, err)

	fam, ok := m.Family("riak")
	require.True(t, ok)
	assert.Equal(t, "riak.proto", fam.ProtoPath)
	assert.Equal(t, "github.com/vickyqiu/riak-pb/gen/riak", fam.GoPackage)
	assert.Equal(t, "riak", fam.Alias, "alias defaults to the package base name")

	kv, ok := m.Family("riak_kv")
	require.True(t, ok)
	assert.Equal(t, "kv", kv.Alias, "explicit alias wins")

	dt, ok := m.Family("riak_dt")
	require.True(t, ok)
	assert.Equal(t, "", dt.ProtoPath)
	assert.Equal(t, "riak_dt", dt.Package)
	assert.Equal(t, "riak_dt", dt.Alias, "derived alias is made a valid identifier")

	_, ok = m.Family("riak_ts")
	assert.False(t, ok)
}

func TestParseManifestFamiliesSorted(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	require.NoError(t, err)

	fams := m.Families()
	require.Len(t, fams, 3)
	assert.Equal(t, "riak", fams[0].Name)
	assert.Equal(t, "riak_dt", fams[1].Name)
	assert.Equal(t, "riak_kv", fams[2].Name)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: `{"riak": {`,
		},
		{
			name: "not an object",
			body: `["riak"]`,
		},
		{
			name: "missing go_package",
			body: `{"riak": {"proto": "riak.proto"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
