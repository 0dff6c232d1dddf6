// # internal/syntax/node.go
//
// Package syntax defines the minimal node-capability surface the extraction
// engine depends on. Parsers adapt their concrete tree representation onto
// this interface; the engine never sees a parser's own node types.
package syntax

type Kind int

const (
	// KindSource is the root of a parsed file.
	KindSource Kind = iota
	KindClass
	KindInterface
	KindEnum
	KindProperty
	KindMethod
	KindConstructor
	KindParameter
	KindEnumMember
	// KindOther marks structural nodes the engine walks through but does
	// not model (namespaces, bodies, wrapper nodes).
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	case KindParameter:
		return "parameter"
	case KindEnumMember:
		return "enum_member"
	default:
		return "other"
	}
}

// Node is one declaration-relevant node in a parsed file. Implementations
// are immutable after construction.
type Node interface {
	// Kind reports the normalized declaration kind tag.
	Kind() Kind

	// Name returns the declaration's identifier exactly as written,
	// unqualified. Empty for nodes without an identifier.
	Name() string

	// Modifiers returns the raw modifier tokens attached to the
	// declaration, in source order (e.g. "public", "static").
	Modifiers() []string

	// TypeText returns the literal textual rendering of the declared type:
	// the property or parameter type, or a method's return type. Empty when
	// the source carries no type annotation.
	TypeText() string

	// ValueText returns the literal text of an enum member's initializer
	// expression. Empty when there is no initializer.
	ValueText() string

	// HasLiteralValue reports whether the initializer behind ValueText is a
	// simple literal expression as opposed to a computed one.
	HasLiteralValue() bool

	// Children returns the node's declaration-relevant children in source
	// order.
	Children() []Node
}
