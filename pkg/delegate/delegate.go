package delegate

// Func is an immutable described callable: an optional Go function value
// paired with its advertised signature. Delegation never mutates a Func;
// it constructs a new one carrying the merged signature.
type Func struct {
	Impl any       // the underlying Go function value, may be nil for pure descriptors
	Sig  Signature // the advertised signature
}

// NewFunc pairs a function value with its advertised signature
func NewFunc(impl any, sig Signature) *Func {
	return &Func{Impl: impl, Sig: sig.clone()}
}

// Doc returns the callable's advertised documentation string
func (f *Func) Doc() string {
	return f.Sig.Doc
}

// String renders the callable's advertised signature
func (f *Func) String() string {
	return f.Sig.String()
}

// Delegate merges the source callable's parameters into the wrapper's
// advertised signature and returns a new Func sharing the wrapper's
// implementation. This is the decoration step: it happens once, at
// wrapper-definition time, and fails fast on declaration errors.
func Delegate(source, wrapper *Func, opts ...Option) (*Func, error) {
	merged, err := Merge(source.Sig, wrapper.Sig, NewConfig(opts...))
	if err != nil {
		return nil, err
	}
	return &Func{Impl: wrapper.Impl, Sig: merged}, nil
}

// MustDelegate is like Delegate but panics on error, for use in package
// initialization where a misdeclared delegation must abort start-up
func MustDelegate(source, wrapper *Func, opts ...Option) *Func {
	fn, err := Delegate(source, wrapper, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}
