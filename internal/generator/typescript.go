// # internal/generator/typescript.go
package generator

import (
	"fmt"
	"strings"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/extract"
)

// TypeScriptGenerator renders a declaration model as TypeScript stubs.
// Member bodies are placeholders; enum members keep their literal
// initializers and render bare when the model carries the no-value
// sentinel.
type TypeScriptGenerator struct{}

func (g *TypeScriptGenerator) Format() string    { return "typescript" }
func (g *TypeScriptGenerator) Extension() string { return ".skeleton.ts" }

func (g *TypeScriptGenerator) Generate(model extract.SourceModel) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// Skeleton generated from %s\n", model.Path)

	for _, iface := range model.Interfaces {
		b.WriteString("\n")
		fmt.Fprintf(&b, "export interface %s {\n", iface.Name)
		for _, prop := range iface.Properties {
			fmt.Fprintf(&b, "  %s: %s;\n", prop.Name, tsType(prop.Type))
		}
		for _, method := range iface.Methods {
			fmt.Fprintf(&b, "  %s(%s): %s;\n", method.Name, tsParams(method.Parameters), tsType(method.ReturnType))
		}
		b.WriteString("}\n")
	}

	for _, class := range model.Classes {
		b.WriteString("\n")
		fmt.Fprintf(&b, "export class %s {\n", class.Name)
		for _, prop := range class.Properties {
			fmt.Fprintf(&b, "  %s%s: %s;\n", tsMemberPrefix(prop.Modifier), prop.Name, tsType(prop.Type))
		}
		for _, ctor := range class.Constructors {
			fmt.Fprintf(&b, "  constructor(%s) {\n    // TODO: implement\n  }\n", tsParams(ctor.Parameters))
		}
		for _, method := range class.Methods {
			fmt.Fprintf(&b, "  %s%s(%s): %s {\n    throw new Error(\"not implemented\");\n  }\n",
				tsMemberPrefix(method.Modifier), method.Name, tsParams(method.Parameters), tsType(method.ReturnType))
		}
		b.WriteString("}\n")
	}

	for _, enum := range model.Enums {
		b.WriteString("\n")
		fmt.Fprintf(&b, "export enum %s {\n", enum.Name)
		for _, value := range enum.Values {
			if value.Value == extract.NoValue {
				fmt.Fprintf(&b, "  %s,\n", value.Name)
			} else {
				fmt.Fprintf(&b, "  %s = %s,\n", value.Name, value.Value)
			}
		}
		b.WriteString("}\n")
	}

	return b.String(), nil
}

func tsMemberPrefix(m extract.ModifierKind) string {
	if m == extract.ModifierStatic {
		return "static "
	}
	return ""
}

func tsParams(params []extract.ParameterModel) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, tsType(p.Type)))
	}
	return strings.Join(parts, ", ")
}

// tsType maps common C#/Java type spellings onto TypeScript ones and leaves
// everything else as written.
func tsType(t string) string {
	switch t {
	case "":
		return "void"
	case "string", "String":
		return "string"
	case "int", "long", "short", "float", "double", "decimal", "byte":
		return "number"
	case "bool", "boolean":
		return "boolean"
	case "void":
		return "void"
	default:
		return t
	}
}
