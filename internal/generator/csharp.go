// # internal/generator/csharp.go
package generator

import (
	"fmt"
	"strings"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/extract"
)

// CSharpGenerator renders a declaration model as C# stubs. The single
// normalized modifier expands back to keywords: static members render as
// "public static" since only public members survive extraction.
type CSharpGenerator struct{}

func (g *CSharpGenerator) Format() string    { return "csharp" }
func (g *CSharpGenerator) Extension() string { return ".skeleton.cs" }

func (g *CSharpGenerator) Generate(model extract.SourceModel) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// Skeleton generated from %s\n", model.Path)

	for _, iface := range model.Interfaces {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s interface %s\n{\n", csMod(iface.Modifier), iface.Name)
		for _, prop := range iface.Properties {
			fmt.Fprintf(&b, "    %s %s { get; set; }\n", prop.Type, prop.Name)
		}
		for _, method := range iface.Methods {
			fmt.Fprintf(&b, "    %s %s(%s);\n", csReturn(method.ReturnType), method.Name, csParams(method.Parameters))
		}
		b.WriteString("}\n")
	}

	for _, class := range model.Classes {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s class %s\n{\n", csMod(class.Modifier), class.Name)
		for _, prop := range class.Properties {
			fmt.Fprintf(&b, "    %s %s %s { get; set; }\n", csMod(prop.Modifier), prop.Type, prop.Name)
		}
		for _, ctor := range class.Constructors {
			fmt.Fprintf(&b, "    public %s(%s)\n    {\n        // TODO: implement\n    }\n", ctor.Name, csParams(ctor.Parameters))
		}
		for _, method := range class.Methods {
			fmt.Fprintf(&b, "    %s %s %s(%s)\n    {\n        throw new NotImplementedException();\n    }\n",
				csMod(method.Modifier), csReturn(method.ReturnType), method.Name, csParams(method.Parameters))
		}
		b.WriteString("}\n")
	}

	for _, enum := range model.Enums {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s enum %s\n{\n", csMod(enum.Modifier), enum.Name)
		for _, value := range enum.Values {
			if value.Value == extract.NoValue {
				fmt.Fprintf(&b, "    %s,\n", value.Name)
			} else {
				fmt.Fprintf(&b, "    %s = %s,\n", value.Name, value.Value)
			}
		}
		b.WriteString("}\n")
	}

	return b.String(), nil
}

func csMod(m extract.ModifierKind) string {
	if m == extract.ModifierStatic {
		return "public static"
	}
	return m.String()
}

func csReturn(t string) string {
	if t == "" {
		return "void"
	}
	return t
}

func csParams(params []extract.ParameterModel) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		paramType := p.Type
		if paramType == extract.AnyType {
			paramType = "object"
		}
		parts = append(parts, fmt.Sprintf("%s %s", paramType, p.Name))
	}
	return strings.Join(parts, ", ")
}
