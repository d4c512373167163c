// Package fixture renders the ValuePair fixture as source text for
// language-tooling tests, writes it to disk and checks that its deliberately
// incomplete method still produces a syntax error.
package fixture

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
)

// Language is a fixture source language.
type Language string

const (
	LanguageGo     Language = "go"
	LanguagePython Language = "python"
)

// DefaultTypeName is the fixture type's name when Options leaves it empty.
const DefaultTypeName = "ValuePair"

// placeholderNames names the deliberately incomplete method per language.
var placeholderNames = map[Language]string{
	LanguageGo:     "Incomplete",
	LanguagePython: "incomplete",
}

// Options control rendering.
type Options struct {
	Language Language
	Package  string
	TypeName string
	// OmitPlaceholder renders a fixture that parses cleanly.
	OmitPlaceholder bool
}

// Fixture is rendered fixture source.
type Fixture struct {
	Language        Language `json:"language"`
	Package         string   `json:"package,omitempty"`
	TypeName        string   `json:"type_name"`
	FileName        string   `json:"file_name"`
	PlaceholderLine int      `json:"placeholder_line,omitempty"`
	Source          string   `json:"source"`
}

// ValidLanguages returns the languages Render supports.
func ValidLanguages() []string {
	return []string{string(LanguageGo), string(LanguagePython)}
}

// ParseLanguage parses a language name; empty means Go.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", LanguageGo:
		return LanguageGo, nil
	case LanguagePython, "py":
		return LanguagePython, nil
	default:
		return "", ErrUnsupportedLanguage(s)
	}
}

var goTemplate = template.Must(template.New("go").Parse(`// Package {{.Package}} is a language-tooling fixture.
package {{.Package}}

import "fmt"

// {{.TypeName}} holds two numeric values.
type {{.TypeName}} struct {
	a float64
	b float64
}

// New{{.TypeName}} returns a {{.TypeName}} holding a and b.
func New{{.TypeName}}(a, b float64) *{{.TypeName}} {
	return &{{.TypeName}}{a: a, b: b}
}

// Add returns a + b.
func (p *{{.TypeName}}) Add() float64 {
	return p.a + p.b
}

// PrintValues prints 0 through 3, one per line.
func (p *{{.TypeName}}) PrintValues() {
	for i := 0; i < 4; i++ {
		fmt.Println(i)
	}
}
`))

var pythonTemplate = template.Must(template.New("python").Parse(`class {{.TypeName}}:
    """Fixture class for LSP testing."""

    def __init__(self, a, b):
        self.a = a
        self.b = b

    def add(self):
        return self.a + self.b

    def print_values(self):
        for i in range(4):
            print(i)
`))

// placeholders are appended after the template. Go leaves the method body
// open so the file ends at EOF inside it; Python leaves the body empty.
var placeholders = map[Language]string{
	LanguageGo:     "\n// Incomplete is left unfinished on purpose.\nfunc (p *{{.TypeName}}) Incomplete() {\n",
	LanguagePython: "\n    def incomplete(self):\n",
}

// Render renders the fixture for opts.
func Render(opts Options) (*Fixture, error) {
	opts, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	tmpl := goTemplate
	if opts.Language == LanguagePython {
		tmpl = pythonTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, ErrRender(err)
	}

	f := &Fixture{
		Language: opts.Language,
		TypeName: opts.TypeName,
		FileName: fileName(opts),
	}
	if opts.Language == LanguageGo {
		f.Package = opts.Package
	}

	if !opts.OmitPlaceholder {
		buf.WriteString(strings.ReplaceAll(placeholders[opts.Language], "{{.TypeName}}", opts.TypeName))
	}
	f.Source = buf.String()
	f.PlaceholderLine = placeholderLine(f.Source, opts.Language)

	return f, nil
}

func (o Options) resolve() (Options, error) {
	lang, err := ParseLanguage(string(o.Language))
	if err != nil {
		return o, err
	}
	o.Language = lang

	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}
	if !token.IsIdentifier(o.TypeName) {
		return o, ErrInvalidName("type name", o.TypeName)
	}

	if lang == LanguageGo {
		if o.Package == "" {
			o.Package = "fixture"
		}
		if !token.IsIdentifier(o.Package) {
			return o, ErrInvalidName("package", o.Package)
		}
		if !token.IsExported(o.TypeName) {
			return o, ErrInvalidName("type name", o.TypeName).WithHint("Go fixture types must be exported (start with an upper-case letter).")
		}
	}
	return o, nil
}

// placeholderLine returns the 1-based line declaring the placeholder method,
// or 0 when there is none.
func placeholderLine(src string, lang Language) int {
	name := placeholderNames[lang]
	for i, line := range strings.Split(src, "\n") {
		switch lang {
		case LanguageGo:
			if strings.HasPrefix(line, "func ") && strings.Contains(line, ") "+name+"(") {
				return i + 1
			}
		case LanguagePython:
			if strings.HasPrefix(strings.TrimSpace(line), "def "+name+"(") {
				return i + 1
			}
		}
	}
	return 0
}

func fileName(o Options) string {
	base := strings.ToLower(o.TypeName)
	if o.Language == LanguagePython {
		return base + ".py"
	}
	return base + ".go"
}

// ErrUnsupportedLanguage reports a language Render cannot produce.
func ErrUnsupportedLanguage(lang string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeFixture,
		Message: fmt.Sprintf("unsupported fixture language: %q", lang),
		Hint:    fmt.Sprintf("Use one of: %s", strings.Join(ValidLanguages(), ", ")),
	}
}

// ErrInvalidName reports a package or type name that is not an identifier.
func ErrInvalidName(what, name string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeInvalidInput,
		Message: fmt.Sprintf("invalid %s: %q", what, name),
		Hint:    "Names must be valid identifiers.",
	}
}

// ErrRender wraps a template execution failure.
func ErrRender(cause error) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeFixture,
		Message: "failed to render fixture",
		Cause:   cause,
	}
}
