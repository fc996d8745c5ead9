package protodef

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/tj/assert"
)

const kvProto = `syntax = "proto2";

package riak_kv;

option go_package = "github.com/vickyqiu/riak-pb/gen/riak_kv;riak_kv";

import "riak.proto";

message RpbGetReq {
    required bytes bucket = 1;
    required bytes key = 2;
    optional uint32 r = 3;
}

message RpbGetResp {
    repeated RpbContent content = 1;
    optional bytes vclock = 2;

    message Meta {
        optional bytes tag = 1;
    }
}

enum IndexType {
    INT = 0;
    BIN = 1;
}
`

func TestParse(t *testing.T) {
	pf, err := Parse([]byte(kvProto))
	assert.NoError(t, err)
	assert.NotNil(t, pf)

	t.Logf("protofile % #v", pretty.Formatter(pf))

	assert.Equal(t, "riak_kv", pf.Pkg.Name)
	assert.Len(t, pf.Messages, 2)
	assert.Equal(t, "RpbGetReq", pf.Messages[0].Name)
	assert.Equal(t, "RpbGetResp", pf.Messages[1].Name)

	// nested messages are not wire classes
	assert.False(t, pf.HasMessage("Meta"))
	assert.True(t, pf.HasMessage("RpbGetReq"))
}

func TestParseGoPackage(t *testing.T) {
	pf, err := Parse([]byte(kvProto))
	assert.NoError(t, err)
	assert.Equal(t, "github.com/vickyqiu/riak-pb/gen/riak_kv", pf.GoPackage())
}

func TestParseNoPackage(t *testing.T) {
	pf, err := Parse([]byte(`syntax = "proto2";

message RpbErrorResp {
    required bytes errmsg = 1;
    required uint32 errcode = 2;
}
`))
	assert.NoError(t, err)
	assert.Nil(t, pf.Pkg)
	assert.Equal(t, "", pf.GoPackage())
	assert.True(t, pf.HasMessage("RpbErrorResp"))
}
