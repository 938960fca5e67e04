package delegate

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Textual signature notation, the same one Signature.String renders:
//
//	(a, b: int, c=nil, *, d, e: string = "x", **kwargs)
//
// A bare '*' switches the following parameters to keyword-only; '**name'
// declares the variadic-keyword collector and must come last.

var signatureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "DStar", Pattern: `\*\*`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Punct", Pattern: `[(),:=.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type signatureNode struct {
	Params []paramNode `parser:"'(' ( @@ ( ',' @@ )* ','? )? ')'"`
}

type paramNode struct {
	Collector *string    `parser:"'**' @Ident"`
	Star      bool       `parser:"| @'*'"`
	Named     *namedNode `parser:"| @@"`
}

type namedNode struct {
	Name       string       `parser:"@Ident"`
	Annotation []string     `parser:"( ':' @Ident ( @'.' @Ident )* )?"`
	Default    *literalNode `parser:"( '=' @@ )?"`
}

type literalNode struct {
	Str    *string `parser:"@String"`
	Number *string `parser:"| @Number"`
	Ident  *string `parser:"| @Ident"`
}

var signatureParser = participle.MustBuild[signatureNode](
	participle.Lexer(signatureLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseSignature parses the textual signature notation into a Signature.
// The result carries no documentation string; attach one with WithDoc.
func ParseSignature(input string) (Signature, error) {
	node, err := signatureParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return Signature{}, wrapError(SyntaxErrorCode, err, "cannot parse signature %q", input)
	}

	var params []Parameter
	keywordOnly := false
	starPending := false
	collectorSeen := false

	for _, p := range node.Params {
		if collectorSeen {
			return Signature{}, newError(SyntaxErrorCode, "signature %q declares parameters after the '**' collector", input)
		}

		switch {
		case p.Collector != nil:
			starPending = false
			collectorSeen = true
			params = append(params, Parameter{Name: *p.Collector, Kind: VariadicKeyword})

		case p.Star:
			if keywordOnly {
				return Signature{}, newError(SyntaxErrorCode, "signature %q has more than one '*' marker", input)
			}
			keywordOnly = true
			starPending = true

		default:
			starPending = false
			param := Parameter{Name: p.Named.Name, Kind: PositionalOrKeyword}
			if keywordOnly {
				param.Kind = KeywordOnly
			}
			if len(p.Named.Annotation) > 0 {
				param.Annotation = strings.Join(p.Named.Annotation, "")
			}
			if p.Named.Default != nil {
				param.Default = p.Named.Default.value()
				param.HasDefault = true
			}
			params = append(params, param)
		}
	}

	if starPending {
		return Signature{}, newError(SyntaxErrorCode, "signature %q has a '*' marker with no keyword-only parameters after it", input)
	}

	sig := Signature{Params: params}
	if err := sig.Validate(); err != nil {
		return Signature{}, wrapError(SyntaxErrorCode, err, "signature %q is invalid", input)
	}
	return sig, nil
}

// MustParseSignature is like ParseSignature but panics on error, for use in
// package-level signature declarations
func MustParseSignature(input string) Signature {
	sig, err := ParseSignature(input)
	if err != nil {
		panic(err)
	}
	return sig
}

// value converts a parsed default literal into its Go value
func (l *literalNode) value() any {
	switch {
	case l.Str != nil:
		if s, err := strconv.Unquote(*l.Str); err == nil {
			return s
		}
		return strings.Trim(*l.Str, `"`)

	case l.Number != nil:
		if strings.Contains(*l.Number, ".") {
			if f, err := strconv.ParseFloat(*l.Number, 64); err == nil {
				return f
			}
		}
		if n, err := strconv.Atoi(*l.Number); err == nil {
			return n
		}
		return *l.Number

	case l.Ident != nil:
		switch *l.Ident {
		case "nil", "None":
			return nil
		case "true", "True":
			return true
		case "false", "False":
			return false
		default:
			return *l.Ident
		}
	}
	return nil
}
