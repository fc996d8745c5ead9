package protodef

type PkgDesc struct {
	Name string
}

type OptionDesc struct {
	Name     string
	Constant string
}

// MessageDesc is a top-level message declaration. Nested messages never
// appear on the wire as standalone responses, so they are not collected.
type MessageDesc struct {
	Name string
}
