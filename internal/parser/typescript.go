// # internal/parser/typescript.go
package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

// TypeScriptAdapter normalizes tree-sitter-typescript trees. A class
// constructor is a method_definition whose name reads "constructor"; field
// and method signatures inside interfaces map to properties and methods.
type TypeScriptAdapter struct{}

func (a *TypeScriptAdapter) Language() string { return "typescript" }

func (a *TypeScriptAdapter) Adapt(root *sitter.Node, source []byte) syntax.Node {
	return sourceRoot(root, source, a.convert)
}

var tsModifierKinds = map[string]bool{
	"static":   true,
	"readonly": true,
	"abstract": true,
	"override": true,
	"async":    true,
}

var tsLiteralKinds = map[string]bool{
	"number": true,
	"string": true,
	"true":   true,
	"false":  true,
	"null":   true,
}

func (a *TypeScriptAdapter) convert(n *sitter.Node, source []byte) []syntax.Node {
	switch n.Kind() {
	case "class_declaration", "abstract_class_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindClass,
			name:      identifierText(n, source, "type_identifier"),
			modifiers: a.modifierTokens(n, source),
			children:  convertChildren(n, source, a.convert),
		}}

	case "interface_declaration":
		return []syntax.Node{&node{
			kind:      syntax.KindInterface,
			name:      identifierText(n, source, "type_identifier"),
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

	case "enum_assignment":
		value := n.ChildByFieldName("value")
		return []syntax.Node{&node{
			kind:      syntax.KindEnumMember,
			name:      nodeText(n.ChildByFieldName("name"), source),
			valueText: nodeText(value, source),
			literal:   value != nil && tsLiteralKinds[value.Kind()],
		}}

	case "property_identifier":
		// A bare enum member without an initializer.
		if parent := n.Parent(); parent != nil && parent.Kind() == "enum_body" {
			return []syntax.Node{&node{
				kind: syntax.KindEnumMember,
				name: nodeText(n, source),
			}}
		}
		return nil

	case "public_field_definition", "property_signature":
		return []syntax.Node{&node{
			kind:      syntax.KindProperty,
			name:      nodeText(n.ChildByFieldName("name"), source),
			modifiers: a.modifierTokens(n, source),
			typeText:  a.annotatedType(n, source),
		}}

	case "method_definition", "method_signature":
		name := nodeText(n.ChildByFieldName("name"), source)
		kind := syntax.KindMethod
		if name == "constructor" {
			kind = syntax.KindConstructor
		}
		return []syntax.Node{&node{
			kind:      kind,
			name:      name,
			modifiers: a.modifierTokens(n, source),
			typeText:  a.annotatedType(n, source),
			children:  a.parameters(n, source),
		}}

	default:
		return convertChildren(n, source, a.convert)
	}
}

// modifierTokens collects accessibility_modifier text and bare keyword
// tokens such as static and readonly.
func (a *TypeScriptAdapter) modifierTokens(n *sitter.Node, source []byte) []string {
	var tokens []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() == "accessibility_modifier" {
			tokens = append(tokens, strings.TrimSpace(nodeText(child, source)))
			continue
		}
		if tsModifierKinds[child.Kind()] {
			tokens = append(tokens, child.Kind())
		}
	}
	return tokens
}

// annotatedType returns the type inside a ": T" annotation, for fields,
// parameters and return types. Empty when the annotation is absent.
func (a *TypeScriptAdapter) annotatedType(n *sitter.Node, source []byte) string {
	annotation := n.ChildByFieldName("type")
	if annotation == nil {
		annotation = n.ChildByFieldName("return_type")
	}
	if annotation == nil {
		return ""
	}
	if annotation.Kind() != "type_annotation" {
		return nodeText(annotation, source)
	}
	for i := uint(0); i < annotation.NamedChildCount(); i++ {
		return nodeText(annotation.NamedChild(i), source)
	}
	return ""
}

func (a *TypeScriptAdapter) parameters(n *sitter.Node, source []byte) []syntax.Node {
	list := n.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}

	var params []syntax.Node
	for i := uint(0); i < list.ChildCount(); i++ {
		child := list.Child(i)
		if child.Kind() != "required_parameter" && child.Kind() != "optional_parameter" {
			continue
		}
		params = append(params, &node{
			kind:     syntax.KindParameter,
			name:     nodeText(child.ChildByFieldName("pattern"), source),
			typeText: a.annotatedType(child, source),
		})
	}
	return params
}
