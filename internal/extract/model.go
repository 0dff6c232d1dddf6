// # internal/extract/model.go
package extract

// Sentinel values substituted by the builder instead of failing.
const (
	// AnyType is used for parameters declared without a type annotation.
	AnyType = "any"
	// NoValue is used for enum members without a literal initializer.
	NoValue = "no-value"
)

// ModifierKind is the single normalized modifier label attached to every
// extracted declaration. It is never absent; unmarked declarations resolve
// to ModifierPrivate.
type ModifierKind int

const (
	ModifierStatic ModifierKind = iota
	ModifierPublic
	ModifierInternal
	ModifierProtected
	ModifierPrivate
)

func (m ModifierKind) String() string {
	switch m {
	case ModifierStatic:
		return "static"
	case ModifierPublic:
		return "public"
	case ModifierInternal:
		return "internal"
	case ModifierProtected:
		return "protected"
	default:
		return "private"
	}
}

// SourceModel is the normalized description of one source file's public
// declarations. Its field shapes are the contract downstream generators
// depend on. Lists follow declaration order in the file and are empty,
// never nil, when a kind is absent.
type SourceModel struct {
	Path       string           `json:"path"`
	Classes    []ClassModel     `json:"classes"`
	Interfaces []InterfaceModel `json:"interfaces"`
	Enums      []EnumModel      `json:"enums"`
}

type ClassModel struct {
	Name         string             `json:"name"`
	Modifier     ModifierKind       `json:"modifier"`
	Properties   []PropertyModel    `json:"properties"`
	Methods      []MethodModel      `json:"methods"`
	Constructors []ConstructorModel `json:"constructors"`
}

type InterfaceModel struct {
	Name       string          `json:"name"`
	Modifier   ModifierKind    `json:"modifier"`
	Properties []PropertyModel `json:"properties"`
	Methods    []MethodModel   `json:"methods"`
}

type PropertyModel struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Modifier ModifierKind `json:"modifier"`
}

type MethodModel struct {
	Name       string           `json:"name"`
	ReturnType string           `json:"return_type"`
	Modifier   ModifierKind     `json:"modifier"`
	Parameters []ParameterModel `json:"parameters"`
}

type ConstructorModel struct {
	Name       string           `json:"name"`
	Modifier   ModifierKind     `json:"modifier"`
	Parameters []ParameterModel `json:"parameters"`
}

type ParameterModel struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type EnumModel struct {
	Name     string           `json:"name"`
	Modifier ModifierKind     `json:"modifier"`
	Values   []EnumValueModel `json:"values"`
}

type EnumValueModel struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DeclarationCount returns the number of extracted top-level declarations,
// used for scan summaries and metrics.
func (m SourceModel) DeclarationCount() int {
	return len(m.Classes) + len(m.Interfaces) + len(m.Enums)
}
