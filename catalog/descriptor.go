package catalog

import (
	"github.com/vickyqiu/riak-pb/protodef"
)

// MessageDescriptor is one row of the catalog. The derived fields are
// computed once at construction and never mutated afterwards.
type MessageDescriptor struct {
	Code    int
	Message string
	Proto   string

	// ConstantName is the derived protocol-code constant.
	ConstantName string
	// Class is the resolved serialization class, or nil when the message
	// carries no payload.
	Class *protodef.ClassRef
}

// NewMessageDescriptor builds a descriptor, deriving the constant name and
// resolving the class through the given resolver. A nil resolver leaves
// every message classless.
func NewMessageDescriptor(code int, message, proto string, res protodef.Resolver) *MessageDescriptor {
	desc := &MessageDescriptor{
		Code:         code,
		Message:      message,
		Proto:        proto,
		ConstantName: DeriveConstantName(message),
	}

	if res != nil {
		if ref, ok := res.Resolve(proto, message); ok {
			desc.Class = ref
		}
	}

	return desc
}

// Empty reports whether the message has no resolvable class, which
// downstream code reads as "this response carries no payload".
func (desc *MessageDescriptor) Empty() bool {
	return desc.Class == nil
}
