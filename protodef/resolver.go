package protodef

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vickyqiu/riak-pb/utils"
)

// ClassRef identifies a resolved message type: which family it belongs to
// and where its generated Go type lives.
type ClassRef struct {
	Proto     string
	Name      string
	GoPackage string
	Alias     string
}

// Qualified returns the reference as it appears in emitted code.
func (ref *ClassRef) Qualified() string {
	return ref.Alias + "." + ref.Name
}

// Resolver locates the serialization class for a message type. A false
// return is a legitimate outcome, not an error: signal-only messages have
// no class at all.
type Resolver interface {
	Resolve(proto, message string) (ref *ClassRef, ok bool)
}

// Builder constructs a resolver from a family manifest.
type Builder func(m *Manifest) (Resolver, error)

var Resolvers utils.Registry[Builder]

func init() {
	Resolvers.Register("proto", func() Builder {
		return func(m *Manifest) (Resolver, error) { return NewRegistry(m) }
	})
	Resolvers.Register("linked", func() Builder {
		return func(m *Manifest) (Resolver, error) { return NewLinkedResolver(m), nil }
	})
}

// Build constructs the named resolver over the manifest.
func Build(name string, m *Manifest) (Resolver, error) {
	ctor, ok := Resolvers.Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown resolver %q (have %s)",
			name, strings.Join(Resolvers.Names(), ", "))
	}
	return ctor()(m)
}
