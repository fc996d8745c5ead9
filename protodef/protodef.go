package protodef

import (
	"strings"

	"github.com/vickyqiu/riak-pb/internal/proto"
)

// ProtoFile is the subset of a .proto source the registry cares about: the
// package declaration, file-level options and the top-level message names.
type ProtoFile struct {
	proto    *proto.Proto
	Pkg      *PkgDesc
	Options  []OptionDesc
	Messages []*MessageDesc
}

func Parse(b []byte) (*ProtoFile, error) {
	p, err := proto.Parse(b)
	if err != nil {
		return nil, err
	}

	var (
		pf = &ProtoFile{
			proto: p,
		}
		vistor = NewVisitor(pf)
	)

	p.Accept(vistor)

	return pf, nil
}

// GoPackage returns the import path declared by the go_package option,
// without a trailing ";alias" part. Empty when the option is absent.
func (pf *ProtoFile) GoPackage() string {
	for _, opt := range pf.Options {
		if opt.Name != "go_package" {
			continue
		}
		path := strings.Trim(opt.Constant, `"`)
		if i := strings.Index(path, ";"); i >= 0 {
			path = path[:i]
		}
		return path
	}
	return ""
}

// HasMessage reports whether a top-level message with the given name is
// declared in the file.
func (pf *ProtoFile) HasMessage(name string) bool {
	for _, msg := range pf.Messages {
		if msg.Name == name {
			return true
		}
	}
	return false
}
