package protodef

import (
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/vickyqiu/riak-pb/logger"
)

// LinkedResolver resolves classes against the protobuf type registry of the
// running binary. It only finds messages whose generated packages are
// compiled into the generator, which mirrors how the original looked types
// up in already-generated serialization modules.
type LinkedResolver struct {
	manifest *Manifest
	types    *protoregistry.Types
	logger   *zap.Logger
}

func NewLinkedResolver(m *Manifest) *LinkedResolver {
	return &LinkedResolver{
		manifest: m,
		types:    protoregistry.GlobalTypes,
		logger:   logger.Logger,
	}
}

// WithTypes substitutes the type registry, mainly for tests.
func (res *LinkedResolver) WithTypes(types *protoregistry.Types) *LinkedResolver {
	res.types = types
	return res
}

func (res *LinkedResolver) Resolve(proto, message string) (*ClassRef, bool) {
	fam, ok := res.manifest.Family(proto)
	if !ok {
		res.logger.Debug("unknown protocol family",
			zap.String("family", proto), zap.String("message", message))
		return nil, false
	}

	full := protoreflect.FullName(message)
	if fam.Package != "" {
		full = protoreflect.FullName(fam.Package).Append(protoreflect.Name(message))
	}

	mt, err := res.types.FindMessageByName(full)
	if err != nil {
		res.logger.Debug("message type not linked",
			zap.String("name", string(full)), zap.Error(err))
		return nil, false
	}

	return &ClassRef{
		Proto:     proto,
		Name:      string(mt.Descriptor().Name()),
		GoPackage: fam.GoPackage,
		Alias:     fam.Alias,
	}, true
}
