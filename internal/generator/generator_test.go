// # internal/generator/generator_test.go
package generator

import (
	"strings"
	"testing"

	derr "github.com/cordeiro-rubens/SkeletonGenerator/internal/errors"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/extract"
)

func sampleModel() extract.SourceModel {
	return extract.SourceModel{
		Path: "src/Account.cs",
		Classes: []extract.ClassModel{
			{
				Name:     "Account",
				Modifier: extract.ModifierPublic,
				Properties: []extract.PropertyModel{
					{Name: "Owner", Type: "string", Modifier: extract.ModifierPublic},
					{Name: "Limit", Type: "int", Modifier: extract.ModifierProtected},
				},
				Methods: []extract.MethodModel{
					{
						Name:       "Deposit",
						ReturnType: "",
						Modifier:   extract.ModifierPublic,
						Parameters: []extract.ParameterModel{
							{Name: "amount", Type: "decimal"},
							{Name: "memo", Type: extract.AnyType},
						},
					},
					{Name: "Count", ReturnType: "int", Modifier: extract.ModifierStatic, Parameters: []extract.ParameterModel{}},
				},
				Constructors: []extract.ConstructorModel{
					{
						Name:     "Account",
						Modifier: extract.ModifierPublic,
						Parameters: []extract.ParameterModel{
							{Name: "owner", Type: "string"},
						},
					},
				},
			},
		},
		Interfaces: []extract.InterfaceModel{
			{
				Name:       "IAuditable",
				Modifier:   extract.ModifierPublic,
				Properties: []extract.PropertyModel{},
				Methods: []extract.MethodModel{
					{Name: "Audit", ReturnType: "bool", Modifier: extract.ModifierPublic, Parameters: []extract.ParameterModel{}},
				},
			},
		},
		Enums: []extract.EnumModel{
			{
				Name:     "Status",
				Modifier: extract.ModifierPublic,
				Values: []extract.EnumValueModel{
					{Name: "Open", Value: extract.NoValue},
					{Name: "Closed", Value: "2"},
				},
			},
		},
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"typescript", "csharp", "plantuml"} {
		g, err := ForFormat(format)
		if err != nil {
			t.Fatalf("ForFormat(%q) returned %v", format, err)
		}
		if g.Format() != format {
			t.Errorf("expected format %q, got %q", format, g.Format())
		}
	}

	_, err := ForFormat("rust")
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !derr.IsCode(err, derr.CodeNotSupported) {
		t.Errorf("expected CodeNotSupported, got %v", err)
	}
}

func TestTypeScriptGenerate(t *testing.T) {
	out, err := (&TypeScriptGenerator{}).Generate(sampleModel())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"export class Account {",
		"export interface IAuditable {",
		"export enum Status {",
		"Owner: string;",
		"Limit: number;",
		"constructor(owner: string) {",
		"Deposit(amount: number, memo: any): void {",
		"static Count(): number {",
		"Audit(): boolean;",
		"  Open,",
		"  Closed = 2,",
		"throw new Error(\"not implemented\");",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("typescript output missing %q\n%s", want, out)
		}
	}
}

func TestCSharpGenerate(t *testing.T) {
	out, err := (&CSharpGenerator{}).Generate(sampleModel())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"public class Account",
		"public interface IAuditable",
		"public enum Status",
		"public string Owner { get; set; }",
		"protected int Limit { get; set; }",
		"public Account(string owner)",
		"public void Deposit(decimal amount, object memo)",
		"public static int Count()",
		"bool Audit();",
		"    Open,",
		"    Closed = 2,",
		"throw new NotImplementedException();",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("csharp output missing %q\n%s", want, out)
		}
	}
}

func TestPlantUMLGenerate(t *testing.T) {
	out, err := (&PlantUMLGenerator{}).Generate(sampleModel())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "@startuml\n") {
		t.Error("diagram must start with @startuml")
	}
	if !strings.HasSuffix(out, "@enduml\n") {
		t.Error("diagram must end with @enduml")
	}

	for _, want := range []string{
		"class Account {",
		"interface IAuditable {",
		"enum Status {",
		"+Owner : string",
		"#Limit : int",
		"+Account(owner : string)",
		"+Deposit(amount : decimal, memo : any) : void",
		"+Count() : int",
		"  Open\n",
		"  Closed = 2\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plantuml output missing %q\n%s", want, out)
		}
	}
}

func TestAllFormatsRenderFullModel(t *testing.T) {
	model := sampleModel()
	for _, g := range All() {
		out, err := g.Generate(model)
		if err != nil {
			t.Errorf("%s: Generate returned %v", g.Format(), err)
		}
		if out == "" {
			t.Errorf("%s: Generate returned empty output", g.Format())
		}
	}
}

func TestExtensions(t *testing.T) {
	cases := map[string]string{
		"typescript": ".skeleton.ts",
		"csharp":     ".skeleton.cs",
		"plantuml":   ".puml",
	}
	for format, ext := range cases {
		g, err := ForFormat(format)
		if err != nil {
			t.Fatal(err)
		}
		if g.Extension() != ext {
			t.Errorf("expected %q extension for %s, got %q", ext, format, g.Extension())
		}
	}
}
