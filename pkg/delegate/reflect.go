package delegate

import (
	"context"
	"fmt"
	"reflect"
)

var (
	contextType   = reflect.TypeOf((*context.Context)(nil)).Elem()
	collectorType = reflect.TypeOf(map[string]any(nil))
)

// Describe derives a Signature from a Go function value. Each input becomes a
// positional-or-keyword parameter named from names (falling back to argN),
// annotated with its Go type. A trailing map[string]any input becomes the
// variadic-keyword collector; a leading context.Context is not part of the
// advertised parameter list. Variadic functions are not supported: the data
// model has no variadic-positional kind.
func Describe(fn any, names ...string) (Signature, error) {
	val := reflect.ValueOf(fn)
	if !val.IsValid() {
		return Signature{}, newReflectionError("expected a function, got nil")
	}
	typ := val.Type()
	if typ.Kind() != reflect.Func {
		return Signature{}, newReflectionError("expected a function, got %v", typ.Kind())
	}
	if typ.IsVariadic() {
		return Signature{}, newReflectionError("variadic functions are not supported")
	}

	start := 0
	if typ.NumIn() > 0 && typ.In(0) == contextType {
		start = 1
	}

	var params []Parameter
	named := 0
	for i := start; i < typ.NumIn(); i++ {
		in := typ.In(i)

		if i == typ.NumIn()-1 && in == collectorType {
			name := DefaultCollectorName
			if named < len(names) {
				name = names[named]
			}
			params = append(params, Parameter{Name: name, Kind: VariadicKeyword})
			break
		}

		name := fmt.Sprintf("arg%d", i-start)
		if named < len(names) {
			name = names[named]
		}
		named++

		params = append(params, Parameter{
			Name:       name,
			Kind:       PositionalOrKeyword,
			Annotation: in.String(),
		})
	}

	sig := Signature{Params: params}
	if err := sig.Validate(); err != nil {
		return Signature{}, wrapError(ReflectionErrorCode, err, "derived signature is invalid")
	}
	return sig, nil
}

// DescribeFunc is a convenience wrapper combining Describe and NewFunc
func DescribeFunc(fn any, doc string, names ...string) (*Func, error) {
	sig, err := Describe(fn, names...)
	if err != nil {
		return nil, err
	}
	return &Func{Impl: fn, Sig: sig.WithDoc(doc)}, nil
}

// newReflectionError reports a function value the reflection builder cannot describe
func newReflectionError(format string, args ...any) *BaseError {
	return newError(ReflectionErrorCode, format, args...)
}
