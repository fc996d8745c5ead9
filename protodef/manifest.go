package protodef

import (
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/vickyqiu/riak-pb/utils"
)

// Family describes one protocol family: where its .proto source lives and
// which generated Go package its message types belong to.
type Family struct {
	Name      string
	ProtoPath string
	GoPackage string
	// Package is the proto package messages are registered under, used by
	// the linked resolver. Riak's protos declare none, so it is optional.
	Package string
	Alias   string
}

// Manifest maps each protocol family to its proto source and generated
// package. It replaces the original scheme of importing generated modules
// by a name convention with an explicit lookup table.
type Manifest struct {
	// Dir anchors relative proto paths, normally the manifest's directory.
	Dir string

	families map[string]*Family
}

// LoadManifest reads a manifest file. A missing or malformed manifest named
// by the caller is a hard error.
func LoadManifest(file string) (*Manifest, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	m, err := ParseManifest(b)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", file)
	}
	m.Dir = filepath.Dir(file)
	return m, nil
}

// ParseManifest parses the JSON manifest body. The expected shape is an
// object keyed by family name:
//
//	{
//	  "riak":    {"proto": "riak.proto", "go_package": ".../gen/riak"},
//	  "riak_kv": {"proto": "riak_kv.proto", "go_package": ".../gen/riak_kv"}
//	}
func ParseManifest(b []byte) (*Manifest, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New("malformed manifest json")
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, errors.New("manifest must be a json object keyed by family")
	}

	m := &Manifest{families: make(map[string]*Family)}

	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		fam := &Family{
			Name:      key.String(),
			ProtoPath: value.Get("proto").String(),
			GoPackage: value.Get("go_package").String(),
			Package:   value.Get("package").String(),
			Alias:     value.Get("alias").String(),
		}
		if fam.GoPackage == "" {
			err = errors.Errorf("family %q: go_package is required", fam.Name)
			return false
		}
		if fam.Alias == "" {
			fam.Alias = utils.SnakeCase(path.Base(fam.GoPackage))
		}
		m.families[fam.Name] = fam
		return true
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Family looks up a protocol family by name.
func (m *Manifest) Family(name string) (*Family, bool) {
	fam, ok := m.families[name]
	return fam, ok
}

// Families returns all families sorted by name.
func (m *Manifest) Families() []*Family {
	fams := make([]*Family, 0, len(m.families))
	for _, fam := range m.families {
		fams = append(fams, fam)
	}
	sort.Slice(fams, func(i, j int) bool { return fams[i].Name < fams[j].Name })
	return fams
}

// protoFile resolves a family's proto path against the manifest directory.
func (m *Manifest) protoFile(fam *Family) string {
	if fam.ProtoPath == "" || filepath.IsAbs(fam.ProtoPath) || m.Dir == "" {
		return fam.ProtoPath
	}
	return filepath.Join(m.Dir, fam.ProtoPath)
}
