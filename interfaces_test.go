package schemaast

import (
	"testing"

	"github.com/corebridge/schemaast/ast"
	"github.com/corebridge/schemaast/fixture"
)

func TestPatternPropertiesSingleCatchAll(t *testing.T) {
	n := fixture.Object().
		Pattern("^x-", fixture.String()).
		AdditionalProperties(false).
		Build()
	out, err := Translate(n, Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	iface := out.(*ast.Interface)
	if len(iface.Params) != 1 {
		t.Fatalf("Params = %v, want exactly one catch-all param", iface.Params)
	}
	p := iface.Params[0]
	if p.KeyName != catchAllKeyName || p.IsPatternProperty {
		t.Fatalf("single pattern with additionalProperties:false should become the catch-all, got %+v", p)
	}
}

func TestPatternPropertiesMultipleStayPatterns(t *testing.T) {
	n := fixture.Object().
		Pattern("^x-", fixture.String()).
		Pattern("^y-", fixture.Number()).
		AdditionalProperties(false).
		Build()
	out, _ := Translate(n, Options{})
	iface := out.(*ast.Interface)
	if len(iface.Params) != 2 {
		t.Fatalf("Params = %v, want two pattern params", iface.Params)
	}
	for _, p := range iface.Params {
		if !p.IsPatternProperty {
			t.Fatalf("param %+v should be a pattern property, not a catch-all", p)
		}
	}
}

func TestAdditionalPropertiesTrueAddsAnyCatchAll(t *testing.T) {
	n := fixture.Object().Prop("a", fixture.String()).AdditionalProperties(true).Build()
	out, _ := Translate(n, Options{})
	iface := out.(*ast.Interface)
	var found bool
	for _, p := range iface.Params {
		if p.KeyName == catchAllKeyName {
			found = true
			if p.AST.Kind() != ast.KindAny {
				t.Fatalf("catch-all AST = %v, want ANY", p.AST.Kind())
			}
		}
	}
	if !found {
		t.Fatalf("expected a catch-all param for additionalProperties:true")
	}
}

func TestAdditionalPropertiesTrueWithPatternYieldsOneCatchAll(t *testing.T) {
	n := fixture.Object().
		Pattern("^x-", fixture.String()).
		AdditionalProperties(true).
		Build()
	out, _ := Translate(n, Options{})
	iface := out.(*ast.Interface)
	count := 0
	for _, p := range iface.Params {
		if p.KeyName == catchAllKeyName {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("got %d catch-all params, want exactly one", count)
	}
}

func TestUnreachableDefinitionsOnlyWhenOptedIn(t *testing.T) {
	n := fixture.Object().Prop("a", fixture.String()).Def("Hidden", fixture.Number()).Build()

	out, _ := Translate(n, Options{})
	iface := out.(*ast.Interface)
	for _, p := range iface.Params {
		if p.IsUnreachableDefinition {
			t.Fatalf("definitions should not surface as params by default")
		}
	}

	out2, _ := Translate(n, Options{UnreachableDefinitions: true})
	iface2 := out2.(*ast.Interface)
	var found bool
	for _, p := range iface2.Params {
		if p.IsUnreachableDefinition && p.KeyName == "Hidden" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Hidden unreachable-definition param when opted in")
	}
}

func TestMappedKeyInterfaceOnly(t *testing.T) {
	n := fixture.Object().
		PropertyNames(fixture.NamedEnum("Keys", []any{"a", "b"}, []string{"A", "B"})).
		Build()
	out, err := Translate(n, Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	iface, ok := out.(*ast.Interface)
	if !ok {
		t.Fatalf("got %T, want *ast.Interface", out)
	}
	if iface.ParamsKeyType == nil {
		t.Fatalf("expected a non-nil ParamsKeyType for a mapped-key interface")
	}
}

func TestMappedKeyWithConcretePropertiesBecomesIntersection(t *testing.T) {
	n := fixture.Object().
		PropertyNames(fixture.NamedEnum("Keys", []any{"a", "b"}, []string{"A", "B"})).
		Prop("a", fixture.String()).
		Build()
	out, err := Translate(n, Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	inter, ok := out.(*ast.Intersection)
	if !ok {
		t.Fatalf("got %T, want *ast.Intersection", out)
	}
	if len(inter.Members) != 2 {
		t.Fatalf("Members = %v, want two", inter.Members)
	}
	mapped, ok := inter.Members[0].(*ast.Interface)
	if !ok || mapped.ParamsKeyType == nil {
		t.Fatalf("Members[0] = %+v, want a mapped-key interface", inter.Members[0])
	}
	concrete, ok := inter.Members[1].(*ast.Interface)
	if !ok || len(concrete.Params) != 1 || concrete.Params[0].KeyName != "a" {
		t.Fatalf("Members[1] = %+v, want an interface with the concrete param a", inter.Members[1])
	}
}

func TestMappedPropertyNamesWithExtendsIsFatal(t *testing.T) {
	base := fixture.Object().Named("Base").Build()
	n := fixture.Object().
		PropertyNames(fixture.NamedEnum("Keys", []any{"a"}, []string{"A"})).
		Extends(base).
		Build()
	_, err := Translate(n, Options{})
	if err == nil {
		t.Fatalf("expected a fatal error for extends with enum-like propertyNames")
	}
	issues, ok := AsIssues(err)
	if !ok || issues[0].Code != CodeInvalidPropertyNames {
		t.Fatalf("err = %v, want CodeInvalidPropertyNames", err)
	}
}

func TestSuperTypeWithoutNameIsFatal(t *testing.T) {
	unnamed := fixture.Object().Prop("y", fixture.String()).Build() // no title, no id
	n := fixture.Object().Named("Child").Extends(unnamed).Build()
	_, err := Translate(n, Options{})
	if err == nil {
		t.Fatalf("expected a fatal error for an unnamed extends target")
	}
	issues, ok := AsIssues(err)
	if !ok || issues[0].Code != CodeInvalidSuperType {
		t.Fatalf("err = %v, want CodeInvalidSuperType", err)
	}
}

func TestGenericParamsAndValuesPropagate(t *testing.T) {
	n := fixture.Object().
		Prop("v", fixture.String()).
		GenericParams("T").
		GenericValues(fixture.String()).
		Build()
	out, err := Translate(n, Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	iface := out.(*ast.Interface)
	if len(iface.GenericParams) != 1 || iface.GenericParams[0] != "T" {
		t.Fatalf("GenericParams = %v", iface.GenericParams)
	}
	if len(iface.GenericValues) != 1 || iface.GenericValues[0].Kind() != ast.KindString {
		t.Fatalf("GenericValues = %v", iface.GenericValues)
	}
}
