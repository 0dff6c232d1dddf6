// # internal/extract/extractor.go
//
// Package extract walks a normalized syntax tree and builds the
// language-agnostic declaration model consumed by the skeleton generators.
// It is a total function over any parsed tree: missing type annotations and
// non-literal enum initializers are substituted with sentinels, never
// surfaced as errors.
package extract

import "github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"

// Extract builds the SourceModel for one parsed file. All class, interface
// and enum declarations anywhere in the tree are extracted, nested ones
// included as their own top-level entries, in the order they appear in
// source text.
func Extract(root syntax.Node, path string) SourceModel {
	model := SourceModel{
		Path:       path,
		Classes:    []ClassModel{},
		Interfaces: []InterfaceModel{},
		Enums:      []EnumModel{},
	}

	for _, node := range Collect(root, syntax.KindClass) {
		model.Classes = append(model.Classes, buildClass(node))
	}
	for _, node := range Collect(root, syntax.KindInterface) {
		model.Interfaces = append(model.Interfaces, buildInterface(node))
	}
	for _, node := range Collect(root, syntax.KindEnum) {
		model.Enums = append(model.Enums, buildEnum(node))
	}

	return model
}

func buildClass(node syntax.Node) ClassModel {
	return ClassModel{
		Name:         node.Name(),
		Modifier:     ResolveModifier(node.Modifiers()),
		Properties:   buildProperties(node),
		Methods:      buildMethods(node),
		Constructors: buildConstructors(node),
	}
}

func buildInterface(node syntax.Node) InterfaceModel {
	return InterfaceModel{
		Name:       node.Name(),
		Modifier:   ResolveModifier(node.Modifiers()),
		Properties: buildProperties(node),
		Methods:    buildMethods(node),
	}
}

func buildProperties(container syntax.Node) []PropertyModel {
	candidates := filterVisible(CollectScoped(container, syntax.KindProperty), includeProperty)

	properties := make([]PropertyModel, 0, len(candidates))
	for _, n := range candidates {
		properties = append(properties, PropertyModel{
			Name:     n.Name(),
			Type:     n.TypeText(),
			Modifier: ResolveModifier(n.Modifiers()),
		})
	}
	return properties
}

func buildMethods(container syntax.Node) []MethodModel {
	candidates := filterVisible(CollectScoped(container, syntax.KindMethod), includeMethod)

	methods := make([]MethodModel, 0, len(candidates))
	for _, n := range candidates {
		// Parameters are scoped to the individual method node, not shared
		// across the container's methods.
		methods = append(methods, MethodModel{
			Name:       n.Name(),
			ReturnType: n.TypeText(),
			Modifier:   ResolveModifier(n.Modifiers()),
			Parameters: buildParameters(n),
		})
	}
	return methods
}

func buildConstructors(container syntax.Node) []ConstructorModel {
	candidates := filterVisible(CollectScoped(container, syntax.KindConstructor), includeConstructor)

	constructors := make([]ConstructorModel, 0, len(candidates))
	for _, n := range candidates {
		constructors = append(constructors, ConstructorModel{
			Name:       n.Name(),
			Modifier:   ResolveModifier(n.Modifiers()),
			Parameters: buildParameters(n),
		})
	}
	return constructors
}

func buildParameters(callable syntax.Node) []ParameterModel {
	nodes := CollectScoped(callable, syntax.KindParameter)

	parameters := make([]ParameterModel, 0, len(nodes))
	for _, n := range nodes {
		paramType := n.TypeText()
		if paramType == "" {
			paramType = AnyType
		}
		parameters = append(parameters, ParameterModel{
			Name: n.Name(),
			Type: paramType,
		})
	}
	return parameters
}

func buildEnum(node syntax.Node) EnumModel {
	members := CollectScoped(node, syntax.KindEnumMember)

	values := make([]EnumValueModel, 0, len(members))
	for _, m := range members {
		value := NoValue
		if m.HasLiteralValue() {
			value = m.ValueText()
		}
		values = append(values, EnumValueModel{
			Name:  m.Name(),
			Value: value,
		})
	}

	return EnumModel{
		Name:     node.Name(),
		Modifier: ResolveModifier(node.Modifiers()),
		Values:   values,
	}
}
