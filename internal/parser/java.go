// # internal/parser/java.go
package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

// JavaAdapter normalizes tree-sitter-java trees. Fields map to properties,
// one per declarator. Enum constants carry no initializer clause in the
// declaration-model sense, so they always surface without a value.
type JavaAdapter struct{}

func (a *JavaAdapter) Language() string { return "java" }

func (a *JavaAdapter) Adapt(root *sitter.Node, source []byte) syntax.Node {
	return sourceRoot(root, source, a.convert)
}

func (a *JavaAdapter) convert(n *sitter.Node, source []byte) []syntax.Node {
	switch n.Kind() {
	case "class_declaration", "record_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindClass,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			children:  convertChildren(n, source, a.convert),
		}}

	case "interface_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindInterface,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			children:  convertChildren(n, source, a.convert),
		}}

	case "enum_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindEnum,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			children:  convertChildren(n, source, a.convert),
		}}

	case "enum_constant":
		return []syntax.Node{&node{
			kind: syntax.KindEnumMember,
			name: identifierText(n, source, "identifier"),
		}}

	case "field_declaration":
		return a.fields(n, source)

	case "method_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindMethod,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			typeText:  nodeText(n.ChildByFieldName("type"), source),
			children:  a.parameters(n, source),
		}}

	case "constructor_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindConstructor,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			children:  a.parameters(n, source),
		}}

	default:
		return convertChildren(n, source, a.convert)
	}
}

// modifierTokens reads the keyword tokens inside the modifiers wrapper node.
func (a *JavaAdapter) modifierTokens(n *sitter.Node, source []byte) []string {
	wrapper := findChildByKind(n, "modifiers")
	if wrapper == nil {
		return nil
	}

	var tokens []string
	for i := uint(0); i < wrapper.ChildCount(); i++ {
		child := wrapper.Child(i)
		switch child.Kind() {
		case "public", "private", "protected", "static", "final",
			"abstract", "synchronized", "native", "transient", "volatile":
			tokens = append(tokens, child.Kind())
		}
	}
	return tokens
}

// fields expands a field declaration into one property per declarator, so
// "int a, b;" yields two entries sharing the declared type.
func (a *JavaAdapter) fields(n *sitter.Node, source []byte) []syntax.Node {
	typeText := nodeText(n.ChildByFieldName("type"), source)
	modifiers := a.modifierTokens(n, source)

	var props []syntax.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() != "variable_declarator" {
			continue
		}
		props = append(props, &node{
			kind:      syntax.KindProperty,
			name:      identifierText(child, source, "identifier"),
			modifiers: modifiers,
			typeText:  typeText,
		})
	}
	return props
}

func (a *JavaAdapter) parameters(n *sitter.Node, source []byte) []syntax.Node {
	list := n.ChildByFieldName("parameters")
	if list == nil {
		list = findChildByKind(n, "formal_parameters")
	}
	if list == nil {
		return nil
	}

	var params []syntax.Node
	for i := uint(0); i < list.ChildCount(); i++ {
		child := list.Child(i)
		if child.Kind() != "formal_parameter" && child.Kind() != "spread_parameter" {
			continue
		}
		params = append(params, &node{
			kind:     syntax.KindParameter,
			name:     identifierText(child, source, "identifier"),
			typeText: nodeText(child.ChildByFieldName("type"), source),
		})
	}
	return params
}
