package generator

import "testing"

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderString("greeting", "Hello {{.Name}}!", map[string]string{"Name": "World"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if string(out) != "Hello World!" {
		t.Errorf("got %q, want %q", out, "Hello World!")
	}
}

func TestRenderString_Cached(t *testing.T) {
	r := NewRenderer()

	if _, err := r.RenderString("tmpl", "{{.V}}", map[string]int{"V": 1}); err != nil {
		t.Fatalf("first render failed: %v", err)
	}

	out, err := r.RenderString("tmpl", "ignored on cache hit", map[string]int{"V": 2})
	if err != nil {
		t.Fatalf("cached render failed: %v", err)
	}

	if string(out) != "2" {
		t.Errorf("cache should reuse parsed template: got %q", out)
	}
}

func TestRenderString_Helpers(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderString("helpers", "{{pascalCase .}}", "counter_store")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if string(out) != "CounterStore" {
		t.Errorf("got %q, want %q", out, "CounterStore")
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"counter_slice", "CounterSlice"},
		{"counterSlice", "CounterSlice"},
		{"Counter", "Counter"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PascalCase(tt.in); got != tt.want {
			t.Errorf("PascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"counter_store", "counterStore"},
		{"CounterStore", "counterStore"},
		{"counter", "counter"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CamelCase(tt.in); got != tt.want {
			t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
