// # internal/generator/plantuml.go
package generator

import (
	"fmt"
	"strings"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/extract"
)

// PlantUMLGenerator renders a declaration model as a class diagram.
type PlantUMLGenerator struct{}

func (g *PlantUMLGenerator) Format() string    { return "plantuml" }
func (g *PlantUMLGenerator) Extension() string { return ".puml" }

func (g *PlantUMLGenerator) Generate(model extract.SourceModel) (string, error) {
	var b strings.Builder
	b.WriteString("@startuml\n")
	b.WriteString("skinparam classAttributeIconSize 0\n")
	fmt.Fprintf(&b, "title %s\n\n", model.Path)

	for _, iface := range model.Interfaces {
		fmt.Fprintf(&b, "interface %s {\n", iface.Name)
		writeUMLMembers(&b, iface.Properties, iface.Methods, nil)
		b.WriteString("}\n")
	}

	for _, class := range model.Classes {
		fmt.Fprintf(&b, "class %s {\n", class.Name)
		writeUMLMembers(&b, class.Properties, class.Methods, class.Constructors)
		b.WriteString("}\n")
	}

	for _, enum := range model.Enums {
		fmt.Fprintf(&b, "enum %s {\n", enum.Name)
		for _, value := range enum.Values {
			if value.Value == extract.NoValue {
				fmt.Fprintf(&b, "  %s\n", value.Name)
			} else {
				fmt.Fprintf(&b, "  %s = %s\n", value.Name, value.Value)
			}
		}
		b.WriteString("}\n")
	}

	b.WriteString("@enduml\n")
	return b.String(), nil
}

func writeUMLMembers(b *strings.Builder, props []extract.PropertyModel, methods []extract.MethodModel, ctors []extract.ConstructorModel) {
	for _, prop := range props {
		fmt.Fprintf(b, "  %s%s : %s\n", umlGlyph(prop.Modifier), prop.Name, prop.Type)
	}
	for _, ctor := range ctors {
		fmt.Fprintf(b, "  +%s(%s)\n", ctor.Name, umlParams(ctor.Parameters))
	}
	for _, method := range methods {
		returnType := method.ReturnType
		if returnType == "" {
			returnType = "void"
		}
		fmt.Fprintf(b, "  %s%s(%s) : %s\n", umlGlyph(method.Modifier), method.Name, umlParams(method.Parameters), returnType)
	}
}

func umlParams(params []extract.ParameterModel) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s : %s", p.Name, p.Type))
	}
	return strings.Join(parts, ", ")
}

// umlGlyph maps the normalized modifier to PlantUML visibility markers.
// Static members use the public glyph.
func umlGlyph(m extract.ModifierKind) string {
	switch m {
	case extract.ModifierPublic, extract.ModifierStatic:
		return "+"
	case extract.ModifierInternal:
		return "~"
	case extract.ModifierProtected:
		return "#"
	default:
		return "-"
	}
}
