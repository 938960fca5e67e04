package delegate

import (
	"errors"
	"testing"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "()", "()"},
		{"single", "(a)", "(a)"},
		{"positional", "(a, b, c)", "(a, b, c)"},
		{"trailing comma", "(a, b,)", "(a, b)"},
		{"annotated", "(b: int)", "(b: int)"},
		{"dotted annotation", "(id: uuid.UUID)", "(id: uuid.UUID)"},
		{"default nil", "(c=nil)", "(c=nil)"},
		{"default None", "(c=None)", "(c=nil)"},
		{"default int", "(n=3)", "(n=3)"},
		{"default negative", "(n=-1)", "(n=-1)"},
		{"default float", "(f=2.5)", "(f=2.5)"},
		{"default string", `(s="hi")`, `(s="hi")`},
		{"default bool", "(flag=true)", "(flag=true)"},
		{"annotated default", `(s: string = "x")`, `(s: string = "x")`},
		{"keyword only", "(*, a, b)", "(*, a, b)"},
		{"mixed", "(x, *, b: int, c=nil)", "(x, *, b: int, c=nil)"},
		{"collector", "(**kwargs)", "(**kwargs)"},
		{"full", "(a, b: int, c=nil, *, d, e=1, **rest)", "(a, b: int, c=nil, *, d, e=1, **rest)"},
		{"whitespace", "  ( a ,b:int , ** kwargs )  ", "(a, b: int, **kwargs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := ParseSignature(tt.input)
			if err != nil {
				t.Fatalf("ParseSignature(%q) failed: %v", tt.input, err)
			}
			if got := sig.String(); got != tt.want {
				t.Errorf("ParseSignature(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSignatureErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no parens", "a, b"},
		{"unclosed", "(a, b"},
		{"duplicate star", "(*, a, *, b)"},
		{"trailing star", "(a, *)"},
		{"lone star", "(*)"},
		{"param after collector", "(**kwargs, a)"},
		{"star after collector", "(**kwargs, *)"},
		{"two collectors", "(**a, **b)"},
		{"duplicate name", "(a, a)"},
		{"missing name", "(a, : int)"},
		{"garbage", "(a; b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSignature(tt.input)
			if err == nil {
				t.Fatalf("ParseSignature(%q) should have failed", tt.input)
			}
		})
	}
}

func TestParseSignatureErrorCode(t *testing.T) {
	_, err := ParseSignature("(a, *)")

	var base *BaseError
	if !errors.As(err, &base) {
		t.Fatalf("expected a *BaseError, got %T", err)
	}
	if base.ErrorCode() != SyntaxErrorCode {
		t.Errorf("expected SyntaxErrorCode, got %s", base.ErrorCode())
	}
}

func TestParseSignatureDefaultValues(t *testing.T) {
	sig := MustParseSignature(`(a=nil, b=7, c=2.5, d="hi", e=false, f=sentinel)`)

	tests := []struct {
		name string
		want any
	}{
		{"a", nil},
		{"b", 7},
		{"c", 2.5},
		{"d", "hi"},
		{"e", false},
		{"f", "sentinel"},
	}

	for _, tt := range tests {
		p, ok := sig.Lookup(tt.name)
		if !ok {
			t.Fatalf("parameter %s missing", tt.name)
		}
		if !p.HasDefault {
			t.Errorf("parameter %s should have a default", tt.name)
		}
		if p.Default != tt.want {
			t.Errorf("parameter %s default = %#v, want %#v", tt.name, p.Default, tt.want)
		}
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"()",
		"(a, b, c)",
		"(*, a, b, c)",
		"(x, *, b: int, c=nil, d, e=nil)",
		"(*, a, b, c, **kwargs)",
		`(path: string, mode: string = "r", **kwargs)`,
	}

	for _, input := range inputs {
		sig := MustParseSignature(input)
		again := MustParseSignature(sig.String())
		if again.String() != sig.String() {
			t.Errorf("round trip changed %q to %q", sig.String(), again.String())
		}
	}
}

func TestMustParseSignaturePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParseSignature should panic on invalid input")
		}
	}()
	MustParseSignature("(a, *)")
}
