package generator

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"golang.org/x/tools/imports"

	"github.com/toyz/delegate/internal/utils"
	"github.com/toyz/delegate/pkg/delegate"
)

// ShimSpec describes a frozen forwarding shim to generate: a concrete Go
// function declaring the merged signature's parameters by name, packing the
// keyword-only ones into a map and forwarding to the collector-based
// implementation.
type ShimSpec struct {
	Package   string             // package name of the generated file; derived from the output path when empty
	FuncName  string             // name of the generated function
	ImplName  string             // collector-based implementation to forward to
	Signature delegate.Signature // merged signature being frozen
	Results   []string           // result type expressions of the implementation, in order
	Doc       string             // documentation string, emitted as the shim's doc comment
}

// Generator renders frozen forwarding shims as formatted Go source
type Generator struct {
	resolver *utils.GoModParser
}

// New creates a new shim generator
func New() *Generator {
	return &Generator{resolver: utils.NewGoModParser()}
}

const shimTemplate = `// Code generated by delegate. DO NOT EDIT.
// Generation ID: {{.ID}}

package {{.Package}}

{{if .DocLines}}{{range .DocLines}}// {{.}}
{{end}}{{end}}func {{.FuncName}}({{.Params}}){{.Results}} {
{{if .Packed}}	{{.CollectorVar}} := map[string]any{
{{range .Packed}}		{{printf "%q" .Name}}: {{.Var}},
{{end}}	}
{{end}}{{if .CallerCollector}}	for k, v := range {{.CallerCollector}} {
		{{.CollectorVar}}[k] = v
	}
{{end}}	{{.Return}}{{.ImplName}}({{.CallArgs}})
}
`

var shimTmpl = template.Must(template.New("shim").Parse(shimTemplate))

type packedEntry struct {
	Name string // key in the forwarded collector map
	Var  string // generated parameter identifier holding the value
}

type shimData struct {
	ID              string
	Package         string
	DocLines        []string
	FuncName        string
	Params          string
	Results         string
	Packed          []packedEntry
	CollectorVar    string
	CallerCollector string
	Return          string
	ImplName        string
	CallArgs        string
}

// Generate renders the shim as gofmt-clean Go source
func (g *Generator) Generate(spec ShimSpec) ([]byte, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	data := buildShimData(spec)

	var buf bytes.Buffer
	if err := shimTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render shim template: %w", err)
	}

	formatted, err := imports.Process(spec.FuncName+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generated shim does not compile cleanly: %w", err)
	}
	return formatted, nil
}

// WriteFile generates the shim and writes it to outPath, deriving the
// package name from the enclosing module when the spec leaves it empty
func (g *Generator) WriteFile(spec ShimSpec, outPath string) error {
	if spec.Package == "" {
		spec.Package = g.packageNameFor(filepath.Dir(outPath))
	}

	source, err := g.Generate(spec)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, source, 0o644); err != nil {
		return fmt.Errorf("failed to write generated shim: %w", err)
	}
	return nil
}

// packageNameFor resolves the package name for files in dir, preferring the
// import path from the enclosing go.mod and falling back to the directory name
func (g *Generator) packageNameFor(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	if importPath, err := g.resolver.ResolvePackage(abs); err == nil {
		return sanitizeIdent(importPath[strings.LastIndex(importPath, "/")+1:])
	}
	return sanitizeIdent(filepath.Base(abs))
}

func validateSpec(spec ShimSpec) error {
	if spec.FuncName == "" {
		return fmt.Errorf("shim spec has no function name")
	}
	if !token.IsIdentifier(spec.FuncName) {
		return fmt.Errorf("shim function name %q is not a valid Go identifier", spec.FuncName)
	}
	if spec.ImplName == "" {
		return fmt.Errorf("shim spec has no implementation name")
	}
	if err := spec.Signature.Validate(); err != nil {
		return fmt.Errorf("shim spec carries an invalid signature: %w", err)
	}
	return nil
}

func buildShimData(spec ShimSpec) *shimData {
	data := &shimData{
		ID:       uuid.NewString(),
		Package:  spec.Package,
		FuncName: spec.FuncName,
		ImplName: spec.ImplName,
	}
	if data.Package == "" {
		data.Package = "main"
	}

	if spec.Doc != "" {
		data.DocLines = strings.Split(strings.TrimRight(spec.Doc, "\n"), "\n")
	}

	// Every parameter becomes a concrete Go parameter. Positional-or-keyword
	// parameters forward positionally; keyword-only parameters pack into the
	// collector map; a retained collector merges the caller's map last.
	var (
		declared   []string
		positional []string
		names      = make(map[string]bool)
	)
	for _, p := range spec.Signature.Params {
		ident := sanitizeIdent(p.Name)
		for names[ident] {
			ident += "_"
		}
		names[ident] = true

		switch p.Kind {
		case delegate.VariadicKeyword:
			declared = append(declared, ident+" map[string]any")
			data.CallerCollector = ident
		case delegate.KeywordOnly:
			declared = append(declared, ident+" "+paramType(p))
			data.Packed = append(data.Packed, packedEntry{Name: p.Name, Var: ident})
		default:
			declared = append(declared, ident+" "+paramType(p))
			positional = append(positional, ident)
		}
	}

	// The implementation is collector-based: it always receives the
	// positional arguments followed by one map[string]any.
	callArgs := append([]string{}, positional...)
	switch {
	case len(data.Packed) > 0:
		collectorVar := "kw"
		for names[collectorVar] {
			collectorVar += "_"
		}
		data.CollectorVar = collectorVar
		callArgs = append(callArgs, collectorVar)
	case data.CallerCollector != "":
		// Nothing to pack, forward the caller's map untouched.
		callArgs = append(callArgs, data.CallerCollector)
		data.CallerCollector = ""
	default:
		callArgs = append(callArgs, "map[string]any{}")
	}
	data.CallArgs = strings.Join(callArgs, ", ")
	data.Params = strings.Join(declared, ", ")

	switch len(spec.Results) {
	case 0:
	case 1:
		data.Results = " " + spec.Results[0]
		data.Return = "return "
	default:
		data.Results = " (" + strings.Join(spec.Results, ", ") + ")"
		data.Return = "return "
	}

	return data
}

// paramType maps an annotation to a Go type expression, defaulting to any
func paramType(p delegate.Parameter) string {
	if p.Annotation == "" {
		return "any"
	}
	return p.Annotation
}

// sanitizeIdent turns a parameter name into a legal Go identifier
func sanitizeIdent(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	ident := b.String()
	if ident == "" {
		ident = "_p"
	}
	if token.IsKeyword(ident) {
		ident += "_"
	}
	return ident
}
