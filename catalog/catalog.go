package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vickyqiu/riak-pb/protodef"
)

// Load reads the message catalog: comma-separated rows of exactly
// code,message,family with no header. Any malformed row aborts the whole
// load; resolution misses do not.
func Load(r io.Reader, res protodef.Resolver) ([]*MessageDescriptor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	var descs []*MessageDescriptor
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read catalog")
		}

		code, err := strconv.Atoi(row[0])
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, errors.Wrapf(err, "catalog line %d: message code", line)
		}

		descs = append(descs, NewMessageDescriptor(code, row[1], row[2], res))
	}

	return descs, nil
}

// LoadFile opens and loads a catalog file.
func LoadFile(file string, res protodef.Resolver) ([]*MessageDescriptor, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	defer f.Close()

	return Load(f, res)
}

// Constant is one entry of the protocol-code table.
type Constant struct {
	Name string
	Code int
}

// ClassEntry maps a constant to its resolved class, nil for empty
// responses.
type ClassEntry struct {
	Name  string
	Class *protodef.ClassRef
}

// Import is a generated-package import needed by the class table.
type Import struct {
	Alias string
	Path  string
}

// Compiled is the full set of derived tables, every sequence ordered by
// message code except Imports, which is ordered by path.
type Compiled struct {
	Constants      []Constant
	EmptyResponses []string
	Classes        []ClassEntry
	Imports        []Import
}

// Compile turns the descriptor set into the emitted tables. It is a pure
// function of its input: codes are the sole sort key and are assumed
// distinct rather than checked.
func Compile(descs []*MessageDescriptor) *Compiled {
	sorted := make([]*MessageDescriptor, len(descs))
	copy(sorted, descs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	out := &Compiled{}
	seen := make(map[string]struct{})
	for _, desc := range sorted {
		out.Constants = append(out.Constants, Constant{
			Name: desc.ConstantName,
			Code: desc.Code,
		})
		out.Classes = append(out.Classes, ClassEntry{
			Name:  desc.ConstantName,
			Class: desc.Class,
		})

		if desc.Empty() {
			out.EmptyResponses = append(out.EmptyResponses, desc.ConstantName)
			continue
		}

		if _, ok := seen[desc.Class.GoPackage]; !ok {
			seen[desc.Class.GoPackage] = struct{}{}
			out.Imports = append(out.Imports, Import{
				Alias: desc.Class.Alias,
				Path:  desc.Class.GoPackage,
			})
		}
	}

	sort.Slice(out.Imports, func(i, j int) bool { return out.Imports[i].Path < out.Imports[j].Path })

	return out
}
