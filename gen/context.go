package gen

import (
	"fmt"
	"strings"

	"github.com/vickyqiu/riak-pb/catalog"
)

// wrapColumn is the width past which a MESSAGE_CLASSES entry is split onto
// two lines, matching the original generator's convention.
const wrapColumn = 76

// CatalogContext is the template context for the messages artifact.
type CatalogContext struct {
	Year    int
	Package string
	Catalog *catalog.Compiled
}

const licenseHeader = `// Copyright %d Basho Technologies, Inc.
//
// This file is provided to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file
// except in compliance with the License.  You may obtain
// a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.`

// License renders the license header with the generation year substituted.
func (ctx *CatalogContext) License() string {
	return fmt.Sprintf(licenseHeader, ctx.Year)
}

// ImportBlock renders the import declaration: one aliased import per
// distinct generated package, already sorted by path, plus the protobuf
// runtime that the class table's type needs.
func (ctx *CatalogContext) ImportBlock() string {
	var sb strings.Builder

	sb.WriteString("import (\n")
	for _, im := range ctx.Catalog.Imports {
		fmt.Fprintf(&sb, "\t%s %q\n", im.Alias, im.Path)
	}
	if len(ctx.Catalog.Imports) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("\t\"google.golang.org/protobuf/proto\"\n)")

	return sb.String()
}

// Pair renders one MESSAGE_CLASSES entry, moving the value onto its own
// line when the one-line form would run past the wrap column.
func (ctx *CatalogContext) Pair(e catalog.ClassEntry) string {
	val := "nil"
	if e.Class != nil {
		val = fmt.Sprintf("(*%s)(nil)", e.Class.Qualified())
	}

	pair := fmt.Sprintf("%s: %s,", e.Name, val)
	if len(pair) > wrapColumn {
		return fmt.Sprintf("%s:\n\t\t%s,", e.Name, val)
	}
	return pair
}
