package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"unicode"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // Protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string.
// The name is used for caching and error messages.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	cacheKey := "string:" + name

	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	tmpl, err := template.New(name).Funcs(r.funcMap).Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// RenderFS renders a template from an embedded filesystem
func (r *Renderer) RenderFS(fs embed.FS, path string, data any) ([]byte, error) {
	cacheKey := "fs:" + path

	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	templateBytes, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
	}

	tmpl, err := template.New(path).Funcs(r.funcMap).Parse(string(templateBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", path, err)
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// ClearCache clears the template cache (useful for testing)
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

// executeTemplate executes a parsed template with the given data
func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// defaultFuncMap returns the default template function map
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"pascalCase": PascalCase, // counter_slice → CounterSlice
		"camelCase":  CamelCase,  // counter_slice → counterSlice
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"quote":      Quote, // test → "test"
		"trim":       strings.TrimSpace,
		"join":       strings.Join,
	}
}

// PascalCase converts snake_case or camelCase to PascalCase.
// Examples: counter_store → CounterStore, counterStore → CounterStore
func PascalCase(s string) string {
	if s == "" {
		return ""
	}

	if strings.Contains(s, "_") {
		parts := strings.Split(s, "_")
		for i, part := range parts {
			if part != "" {
				parts[i] = strings.ToUpper(string(part[0])) + part[1:]
			}
		}
		return strings.Join(parts, "")
	}

	if unicode.IsLower(rune(s[0])) {
		return strings.ToUpper(string(s[0])) + s[1:]
	}

	return s
}

// CamelCase converts snake_case or PascalCase to camelCase.
// Examples: counter_store → counterStore, CounterStore → counterStore
func CamelCase(s string) string {
	if s == "" {
		return ""
	}

	if strings.Contains(s, "_") {
		parts := strings.Split(s, "_")
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i == 0 {
				parts[i] = strings.ToLower(part)
			} else {
				parts[i] = strings.ToUpper(string(part[0])) + strings.ToLower(part[1:])
			}
		}
		return strings.Join(parts, "")
	}

	if unicode.IsUpper(rune(s[0])) {
		return strings.ToLower(string(s[0])) + s[1:]
	}

	return s
}

// Quote wraps a string in double quotes
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}
