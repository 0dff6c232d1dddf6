// # internal/parser/csharp.go
package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

// CSharpAdapter normalizes tree-sitter-c-sharp trees. Namespaces (block and
// file-scoped) and declaration lists are flattened; method and constructor
// bodies are not descended into, so a callable's parameter list is exactly
// its own.
type CSharpAdapter struct{}

func (a *CSharpAdapter) Language() string { return "csharp" }

func (a *CSharpAdapter) Adapt(root *sitter.Node, source []byte) syntax.Node {
	return sourceRoot(root, source, a.convert)
}

var csharpTypeKinds = []string{
	"predefined_type", "identifier", "generic_name", "qualified_name",
	"nullable_type", "array_type", "tuple_type", "pointer_type",
}

var csharpLiteralKinds = map[string]bool{
	"integer_literal":         true,
	"real_literal":            true,
	"string_literal":          true,
	"verbatim_string_literal": true,
	"raw_string_literal":      true,
	"character_literal":       true,
	"boolean_literal":         true,
	"null_literal":            true,
}

func (a *CSharpAdapter) convert(n *sitter.Node, source []byte) []syntax.Node {
	switch n.Kind() {
	case "class_declaration", "struct_declaration", "record_declaration":
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

	case "enum_member_declaration":
		valueText, literal := a.enumMemberValue(n, source)
		return []syntax.Node{&node{
			kind:      syntax.KindEnumMember,
			name:      identifierText(n, source, "identifier"),
			valueText: valueText,
			literal:   literal,
		}}

	case "property_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindProperty,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			typeText:  a.declaredType(n, source),
		}}

	case "method_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindMethod,
			name:      identifierText(n, source, "identifier"),
			modifiers: a.modifierTokens(n, source),
			typeText:  a.declaredType(n, source),
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
		// Namespaces, declaration lists and other wrappers dissolve into
		// their converted children.
		return convertChildren(n, source, a.convert)
	}
}

// modifierTokens collects the raw modifier keywords on a declaration. The
// grammar wraps each keyword in a modifier node; older grammar versions
// expose the keyword kinds directly, so both shapes are handled.
func (a *CSharpAdapter) modifierTokens(n *sitter.Node, source []byte) []string {
	var tokens []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "modifier":
			tokens = append(tokens, nodeText(child, source))
		case "public", "private", "protected", "internal", "static",
			"abstract", "sealed", "virtual", "override", "readonly",
			"partial", "async", "const":
			tokens = append(tokens, child.Kind())
		}
	}
	return tokens
}

// declaredType returns the literal text of a property's type or a method's
// return type.
func (a *CSharpAdapter) declaredType(n *sitter.Node, source []byte) string {
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		return nodeText(typeNode, source)
	}
	if typeNode := n.ChildByFieldName("returns"); typeNode != nil {
		return nodeText(typeNode, source)
	}
	for _, kind := range csharpTypeKinds {
		if child := findChildByKind(n, kind); child != nil {
			return nodeText(child, source)
		}
	}
	return ""
}

func (a *CSharpAdapter) parameters(n *sitter.Node, source []byte) []syntax.Node {
	list := n.ChildByFieldName("parameters")
	if list == nil {
		list = findChildByKind(n, "parameter_list")
	}
	if list == nil {
		return nil
	}

	var params []syntax.Node
	for i := uint(0); i < list.ChildCount(); i++ {
		child := list.Child(i)
		if child.Kind() != "parameter" {
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

// enumMemberValue locates an initializer clause and reports its literal
// text, and whether the expression is a simple literal.
func (a *CSharpAdapter) enumMemberValue(n *sitter.Node, source []byte) (string, bool) {
	value := n.ChildByFieldName("value")
	if value == nil {
		if clause := findChildByKind(n, "equals_value_clause"); clause != nil {
			for i := clause.ChildCount(); i > 0; i-- {
				child := clause.Child(i - 1)
				if child.Kind() != "=" {
					value = child
					break
				}
			}
		}
	}
	if value == nil {
		return "", false
	}
	return nodeText(value, source), csharpLiteralKinds[value.Kind()]
}
