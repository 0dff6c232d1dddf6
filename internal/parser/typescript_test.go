// # internal/parser/typescript_test.go
package parser

import (
	"testing"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

func TestTypeScriptClassDeclaration(t *testing.T) {
	root := parseWith(t, "user.ts", `
export class User {
  public name: string;
  private secret: string;

  constructor(name: string) {
    this.name = name;
  }

  public greet(prefix: string): string {
    return prefix + this.name;
  }

  public static count(): number {
    return 0;
  }
}
`)

	classes := findAll(root, syntax.KindClass)
	if len(classes) != 1 || classes[0].Name() != "User" {
		t.Fatalf("expected class User, got %v", classes)
	}

	props := findAll(classes[0], syntax.KindProperty)
	if len(props) != 2 {
		t.Fatalf("expected 2 field definitions, got %d", len(props))
	}
	if props[0].Name() != "name" || props[0].TypeText() != "string" {
		t.Errorf("unexpected first field: %q %q", props[0].Name(), props[0].TypeText())
	}
	if props[0].Modifiers()[0] != "public" {
		t.Errorf("expected public token, got %v", props[0].Modifiers())
	}
	if props[1].Modifiers()[0] != "private" {
		t.Errorf("expected private token, got %v", props[1].Modifiers())
	}

	ctors := findAll(classes[0], syntax.KindConstructor)
	if len(ctors) != 1 {
		t.Fatalf("expected 1 constructor, got %d", len(ctors))
	}
	if len(ctors[0].Children()) != 1 || ctors[0].Children()[0].Name() != "name" {
		t.Errorf("unexpected constructor parameters: %v", ctors[0].Children())
	}

	methods := findAll(classes[0], syntax.KindMethod)
	if len(methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(methods))
	}
	if methods[0].Name() != "greet" || methods[0].TypeText() != "string" {
		t.Errorf("unexpected greet: %q %q", methods[0].Name(), methods[0].TypeText())
	}

	countMods := methods[1].Modifiers()
	if len(countMods) != 2 || countMods[0] != "public" || countMods[1] != "static" {
		t.Errorf("expected [public static] on count, got %v", countMods)
	}
}

func TestTypeScriptInterfaceSignatures(t *testing.T) {
	root := parseWith(t, "shape.ts", `
interface Shape {
  label: string;
  area(scale: number): number;
}
`)

	ifaces := findAll(root, syntax.KindInterface)
	if len(ifaces) != 1 || ifaces[0].Name() != "Shape" {
		t.Fatalf("expected interface Shape, got %v", ifaces)
	}

	props := findAll(ifaces[0], syntax.KindProperty)
	if len(props) != 1 || props[0].Name() != "label" || props[0].TypeText() != "string" {
		t.Errorf("unexpected property signatures: %v", props)
	}

	methods := findAll(ifaces[0], syntax.KindMethod)
	if len(methods) != 1 || methods[0].Name() != "area" {
		t.Fatalf("expected method signature area, got %v", methods)
	}
	params := methods[0].Children()
	if len(params) != 1 || params[0].Name() != "scale" || params[0].TypeText() != "number" {
		t.Errorf("unexpected parameters: %v", params)
	}
}

func TestTypeScriptEnumMembers(t *testing.T) {
	root := parseWith(t, "level.ts", `
enum Level {
  Low,
  Medium = 5,
  High = compute(),
}
`)

	enums := findAll(root, syntax.KindEnum)
	if len(enums) != 1 || enums[0].Name() != "Level" {
		t.Fatalf("expected enum Level, got %v", enums)
	}

	members := findAll(enums[0], syntax.KindEnumMember)
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	if members[0].Name() != "Low" || members[0].HasLiteralValue() {
		t.Errorf("Low should have no initializer")
	}
	if members[1].Name() != "Medium" || !members[1].HasLiteralValue() || members[1].ValueText() != "5" {
		t.Errorf("Medium should carry literal 5, got %q", members[1].ValueText())
	}
	if members[2].Name() != "High" || members[2].HasLiteralValue() {
		t.Errorf("a call initializer is not a literal")
	}
}

func TestTypeScriptUnannotatedParameter(t *testing.T) {
	root := parseWith(t, "fn.ts", `
class Box {
  public unwrap(value) {
    return value;
  }
}
`)

	methods := findAll(root, syntax.KindMethod)
	if len(methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(methods))
	}
	params := methods[0].Children()
	if len(params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(params))
	}
	if params[0].TypeText() != "" {
		t.Errorf("unannotated parameter must surface an empty type, got %q", params[0].TypeText())
	}
}
