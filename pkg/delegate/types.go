package delegate

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamKind represents the kind of a formal parameter
type ParamKind int

const (
	// PositionalOrKeyword parameters can be supplied by position or by name
	PositionalOrKeyword ParamKind = iota
	// KeywordOnly parameters can only be supplied by name
	KeywordOnly
	// VariadicKeyword is the open-ended keyword collector (at most one, always last)
	VariadicKeyword
)

// String returns the string representation of the parameter kind
func (k ParamKind) String() string {
	switch k {
	case PositionalOrKeyword:
		return "positional-or-keyword"
	case KeywordOnly:
		return "keyword-only"
	case VariadicKeyword:
		return "variadic-keyword"
	default:
		return "unknown"
	}
}

// ParseParamKind converts a string to a ParamKind
func ParseParamKind(s string) (ParamKind, error) {
	switch s {
	case "positional-or-keyword":
		return PositionalOrKeyword, nil
	case "keyword-only":
		return KeywordOnly, nil
	case "variadic-keyword":
		return VariadicKeyword, nil
	default:
		return 0, fmt.Errorf("unknown parameter kind: %s", s)
	}
}

// Parameter represents a single named formal parameter of a callable
type Parameter struct {
	Name       string    // parameter name, unique within a signature
	Kind       ParamKind // how the parameter can be supplied
	Default    any       // default value, meaningful only when HasDefault is true
	HasDefault bool      // whether the parameter carries a default value
	Annotation string    // informational type descriptor, empty when absent
}

// Required reports whether the parameter must be supplied by the caller
func (p Parameter) Required() bool {
	return !p.HasDefault && p.Kind != VariadicKeyword
}

// String renders the parameter in the canonical signature notation
func (p Parameter) String() string {
	if p.Kind == VariadicKeyword {
		return "**" + p.Name
	}

	var b strings.Builder
	b.WriteString(p.Name)
	if p.Annotation != "" {
		b.WriteString(": ")
		b.WriteString(p.Annotation)
	}
	if p.HasDefault {
		if p.Annotation != "" {
			b.WriteString(" = ")
		} else {
			b.WriteString("=")
		}
		b.WriteString(renderDefault(p.Default))
	}
	return b.String()
}

// renderDefault renders a default value the way the notation parser accepts it
func renderDefault(v any) string {
	switch value := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// Signature is an ordered parameter list plus an optional documentation string.
// A valid signature has unique parameter names and at most one variadic-keyword
// parameter, which must come last.
type Signature struct {
	Params []Parameter
	Doc    string
}

// NewSignature builds a signature from the given parameters and validates it
func NewSignature(params ...Parameter) (Signature, error) {
	sig := Signature{Params: params}
	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// WithDoc returns a copy of the signature carrying the given documentation string
func (s Signature) WithDoc(doc string) Signature {
	out := s.clone()
	out.Doc = doc
	return out
}

// clone returns a deep copy so callers can never alias the parameter slice
func (s Signature) clone() Signature {
	params := make([]Parameter, len(s.Params))
	copy(params, s.Params)
	return Signature{Params: params, Doc: s.Doc}
}

// Lookup returns the parameter with the given name, if present
func (s Signature) Lookup(name string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Collector returns the variadic-keyword parameter, if the signature declares one
func (s Signature) Collector() (Parameter, bool) {
	for _, p := range s.Params {
		if p.Kind == VariadicKeyword {
			return p, true
		}
	}
	return Parameter{}, false
}

// Names returns the parameter names in declaration order
func (s Signature) Names() []string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Name
	}
	return names
}

// Validate checks the signature invariants: non-empty unique names, known
// kinds, and at most one variadic-keyword parameter in the final position
func (s Signature) Validate() error {
	seen := make(map[string]bool, len(s.Params))
	for i, p := range s.Params {
		if p.Name == "" {
			return newInvalidSignatureError(fmt.Sprintf("parameter %d has an empty name", i))
		}
		if p.Kind < PositionalOrKeyword || p.Kind > VariadicKeyword {
			return newInvalidSignatureError(fmt.Sprintf("parameter '%s' has unknown kind %d", p.Name, int(p.Kind)))
		}
		if seen[p.Name] {
			return NewCollisionError(p.Name)
		}
		seen[p.Name] = true

		if p.Kind == VariadicKeyword {
			if p.HasDefault {
				return newInvalidSignatureError(fmt.Sprintf("variadic-keyword parameter '%s' cannot have a default", p.Name))
			}
			if i != len(s.Params)-1 {
				return newInvalidSignatureError(fmt.Sprintf("variadic-keyword parameter '%s' must be the last parameter", p.Name))
			}
		}
	}
	return nil
}

// String renders the signature in the canonical notation, for example
// "(x, *, b: int, c=nil, **kwargs)"
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')

	starEmitted := false
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Kind == KeywordOnly && !starEmitted {
			b.WriteString("*, ")
			starEmitted = true
		}
		b.WriteString(p.String())
	}

	b.WriteByte(')')
	return b.String()
}
