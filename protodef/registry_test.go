package protodef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProto(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	dir := t.TempDir()
	writeProto(t, dir, "riak.proto", `syntax = "proto2";

message RpbErrorResp {
    required bytes errmsg = 1;
    required uint32 errcode = 2;
}
`)
	writeProto(t, dir, "riak_kv.proto", `syntax = "proto2";

message RpbGetReq {
    required bytes bucket = 1;
    required bytes key = 2;
}
`)

	m, err := ParseManifest([]byte(`{
  "riak":      {"proto": "riak.proto", "go_package": "github.com/vickyqiu/riak-pb/gen/riak"},
  "riak_kv":   {"proto": "riak_kv.proto", "go_package": "github.com/vickyqiu/riak-pb/gen/riak_kv"},
  "riak_mdue": {"proto": "riak_mue.proto", "go_package": "github.com/vickyqiu/riak-pb/gen/riak_mue"}
}`))
	require.NoError(t, err)
	m.Dir = dir

	reg, err := NewRegistry(m)
	require.NoError(t, err)
	return reg
}

func TestRegistryResolve(t *testing.T) {
	reg := testRegistry(t)

	ref, ok := reg.Resolve("riak", "RpbErrorResp")
	require.True(t, ok)
	assert.Equal(t, "riak.RpbErrorResp", ref.Qualified())
	assert.Equal(t, "github.com/vickyqiu/riak-pb/gen/riak", ref.GoPackage)

	ref, ok = reg.Resolve("riak_kv", "RpbGetReq")
	require.True(t, ok)
	assert.Equal(t, "riak_kv.RpbGetReq", ref.Qualified())
}

func TestRegistryResolveMisses(t *testing.T) {
	reg := testRegistry(t)

	// declared family, undeclared message: the signal-only case
	ref, ok := reg.Resolve("riak", "RpbPingReq")
	assert.False(t, ok)
	assert.Nil(t, ref)

	// family missing from the manifest entirely
	_, ok = reg.Resolve("riak_ts", "TsGetReq")
	assert.False(t, ok)

	// family whose proto source does not exist on disk
	_, ok = reg.Resolve("riak_mue", "RpbAnything")
	assert.False(t, ok)
}

func TestRegistryBrokenProto(t *testing.T) {
	dir := t.TempDir()
	writeProto(t, dir, "riak.proto", "message {{{ nope")

	m, err := ParseManifest([]byte(`{
  "riak": {"proto": "riak.proto", "go_package": "github.com/vickyqiu/riak-pb/gen/riak"}
}`))
	require.NoError(t, err)
	m.Dir = dir

	_, err = NewRegistry(m)
	assert.Error(t, err, "an unparsable proto source is a hard error")
}
