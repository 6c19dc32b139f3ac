package sanitize

import "testing"

func TestStringStripsAngleBrackets(t *testing.T) {
	got := String("<script>alert(1)</script>")
	if got != "scriptalert(1)/script" {
		t.Errorf("String = %q, want all angle brackets removed", got)
	}
}

func TestStringStripsJavascriptSchemeCaseInsensitive(t *testing.T) {
	got := String(" javaScript:doEvil() ")
	if got != "doEvil()" {
		t.Errorf("String = %q, want doEvil()", got)
	}
}

func TestStringStripsEventHandlers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`img onerror=alert(1)`, "img alert(1)"},
		{`a ONCLICK = alert(1)`, "a  alert(1)"},
		{`onload=x`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := String(tt.input); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringTrimsWhitespace(t *testing.T) {
	if got := String("  hola  "); got != "hola" {
		t.Errorf("String = %q, want hola", got)
	}
}

func TestStringLeavesCleanTextAlone(t *testing.T) {
	if got := String("Natillera de la cuadra 2025"); got != "Natillera de la cuadra 2025" {
		t.Errorf("String = %q, want input unchanged", got)
	}
}

func TestObjectSanitizesOnlyStrings(t *testing.T) {
	in := map[string]any{
		"name": "<b>x</b>",
		"age":  5,
		"ok":   true,
	}

	out := Object(in)

	if out["name"] != "bx/b" {
		t.Errorf("name = %q, want bx/b", out["name"])
	}
	if out["age"] != 5 {
		t.Errorf("age = %v, want 5 unchanged", out["age"])
	}
	if out["ok"] != true {
		t.Errorf("ok = %v, want true unchanged", out["ok"])
	}
}

func TestObjectDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"name": "<b>x</b>"}

	Object(in)

	if in["name"] != "<b>x</b>" {
		t.Errorf("input mutated: name = %q", in["name"])
	}
}
