package protodef

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vickyqiu/riak-pb/logger"
)

// Registry resolves classes by parsing each family's .proto source and
// indexing its top-level message names. Families whose source is missing
// simply resolve nothing; a source that exists but does not parse is a hard
// error, reported for every broken family at once.
type Registry struct {
	manifest *Manifest
	index    map[string]map[string]struct{}
	logger   *zap.Logger
}

func NewRegistry(m *Manifest) (*Registry, error) {
	reg := &Registry{
		manifest: m,
		index:    make(map[string]map[string]struct{}),
		logger:   logger.Logger,
	}

	var errs error
	for _, fam := range m.Families() {
		file := m.protoFile(fam)
		if file == "" {
			reg.logger.Debug("family has no proto source", zap.String("family", fam.Name))
			continue
		}

		b, err := os.ReadFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				reg.logger.Debug("proto source not found",
					zap.String("family", fam.Name), zap.String("file", file))
				continue
			}
			errs = multierr.Append(errs, errors.Wrapf(err, "family %s", fam.Name))
			continue
		}

		pf, err := Parse(b)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "parse %s", file))
			continue
		}

		set := make(map[string]struct{}, len(pf.Messages))
		for _, msg := range pf.Messages {
			set[msg.Name] = struct{}{}
		}
		reg.index[fam.Name] = set
	}
	if errs != nil {
		return nil, errs
	}

	return reg, nil
}

// SetLogger overrides the debug logger.
func (reg *Registry) SetLogger(l *zap.Logger) {
	reg.logger = l
}

func (reg *Registry) Resolve(proto, message string) (*ClassRef, bool) {
	fam, ok := reg.manifest.Family(proto)
	if !ok {
		reg.logger.Debug("unknown protocol family",
			zap.String("family", proto), zap.String("message", message))
		return nil, false
	}

	set, ok := reg.index[fam.Name]
	if !ok {
		return nil, false
	}

	if _, ok := set[message]; !ok {
		reg.logger.Debug("message not declared in proto source",
			zap.String("family", proto), zap.String("message", message))
		return nil, false
	}

	return &ClassRef{
		Proto:     proto,
		Name:      message,
		GoPackage: fam.GoPackage,
		Alias:     fam.Alias,
	}, true
}
