package protodef

import (
	"github.com/yoheimuta/go-protoparser/v4/parser"
)

type Visitor struct {
	target *ProtoFile
	syntax Syntax
}

type Syntax string

const (
	ProtoV2 = "proto2"
	ProtoV3 = "proto3"
)

func NewVisitor(pf *ProtoFile) *Visitor {
	return &Visitor{
		target: pf,
	}
}

func (vis *Visitor) VisitComment(_ *parser.Comment) {
}

func (vis *Visitor) VisitEmptyStatement(_ *parser.EmptyStatement) (next bool) {
	return true
}

func (vis *Visitor) VisitEnum(_ *parser.Enum) (next bool) {
	return false
}

func (vis *Visitor) VisitEnumField(_ *parser.EnumField) (next bool) {
	return true
}

func (vis *Visitor) VisitExtend(_ *parser.Extend) (next bool) {
	return false
}

func (vis *Visitor) VisitExtensions(_ *parser.Extensions) (next bool) {
	return true
}

func (vis *Visitor) VisitField(_ *parser.Field) (next bool) {
	return true
}

func (vis *Visitor) VisitGroupField(_ *parser.GroupField) (next bool) {
	return true
}

func (vis *Visitor) VisitImport(_ *parser.Import) (next bool) {
	return true
}

func (vis *Visitor) VisitMapField(_ *parser.MapField) (next bool) {
	return true
}

// VisitMessage records the top-level message name and stops descending, so
// nested messages and fields never reach the index.
func (vis *Visitor) VisitMessage(message *parser.Message) (next bool) {
	vis.target.Messages = append(vis.target.Messages, &MessageDesc{
		Name: message.MessageName,
	})

	return false
}

func (vis *Visitor) VisitOneof(_ *parser.Oneof) (next bool) {
	return true
}

func (vis *Visitor) VisitOneofField(_ *parser.OneofField) (next bool) {
	return true
}

// VisitOption only ever sees file-level options, since message and service
// bodies are not descended into.
func (vis *Visitor) VisitOption(option *parser.Option) (next bool) {
	vis.target.Options = append(vis.target.Options, OptionDesc{
		Name:     option.OptionName,
		Constant: option.Constant,
	})
	return true
}

func (vis *Visitor) VisitPackage(pkg *parser.Package) (next bool) {
	vis.target.Pkg = &PkgDesc{
		Name: pkg.Name,
	}
	return true
}

func (vis *Visitor) VisitReserved(_ *parser.Reserved) (next bool) {
	return true
}

func (vis *Visitor) VisitRPC(_ *parser.RPC) (next bool) {
	return true
}

func (vis *Visitor) VisitService(_ *parser.Service) (next bool) {
	return false
}

func (vis *Visitor) VisitSyntax(syntax *parser.Syntax) (next bool) {
	switch syntax.Version() {
	case 3:
		vis.syntax = ProtoV3
	case 2:
		vis.syntax = ProtoV2
	default:
		vis.syntax = ProtoV3
	}
	return true
}
