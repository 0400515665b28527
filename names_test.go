package schemaast

import "testing"

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Widget":      "Widget",
		"My Type!!":   "My_Type",
		"My__Type":    "My_Type",
		"  spaced  ":  "spaced",
		"123go":       "_123go",
		"":            "",
		"___":         "",
		"$valid_name": "$valid_name",
	}
	for in, want := range cases {
		if got := sanitizeName(in); got != want {
			t.Errorf("sanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUsedNamesGenerateDeduplicates(t *testing.T) {
	u := newUsedNames()
	first, ok := u.generate("Widget")
	if !ok || first != "Widget" {
		t.Fatalf("first generate = %q, %v", first, ok)
	}
	second, ok := u.generate("Widget")
	if !ok || second != "Widget1" {
		t.Fatalf("second generate = %q, %v, want Widget1", second, ok)
	}
	third, ok := u.generate("Widget")
	if !ok || third != "Widget2" {
		t.Fatalf("third generate = %q, %v, want Widget2", third, ok)
	}
}

func TestUsedNamesEmptySeed(t *testing.T) {
	u := newUsedNames()
	name, ok := u.generate("")
	if ok || name != "" {
		t.Fatalf("generate(\"\") = %q, %v, want \"\", false", name, ok)
	}
}

func TestNameSeedPrecedence(t *testing.T) {
	if got := nameSeed("Title", "id", "defKey"); got != "Title" {
		t.Fatalf("nameSeed title precedence: got %q", got)
	}
	if got := nameSeed("", "id", "defKey"); got != "id" {
		t.Fatalf("nameSeed id fallback: got %q", got)
	}
	if got := nameSeed("", "", "defKey"); got != "defKey" {
		t.Fatalf("nameSeed definitions-key fallback: got %q", got)
	}
	if got := nameSeed("", "", ""); got != "" {
		t.Fatalf("nameSeed with nothing: got %q", got)
	}
}
