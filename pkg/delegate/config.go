package delegate

// DefaultCollectorName is the collector name assumed when none is configured
const DefaultCollectorName = "kwargs"

// Config controls how a source signature is merged into a wrapper signature.
// Build one with NewConfig and treat it as immutable afterwards.
type Config struct {
	// KeywordOnly converts the source's positional-or-keyword parameters to
	// keyword-only before merging, preventing positional collisions
	KeywordOnly bool

	// PreserveDoc takes the merged documentation string from the source
	PreserveDoc bool

	// InheritDefaults lets source parameters keep their default values in the
	// merged signature; when false an inherited parameter becomes required
	InheritDefaults bool

	// Freeze requests a concrete forwarding shim in place of the collector
	// (the merged parameter list itself is unaffected)
	Freeze bool

	// CollectorName is the name the wrapper's variadic-keyword parameter must have
	CollectorName string

	// IgnoredNames excludes source parameters from the merge entirely
	IgnoredNames map[string]bool
}

// DefaultConfig returns the default merge configuration: keyword-only
// conversion on, documentation inherited from the source, defaults inherited,
// collector named "kwargs"
func DefaultConfig() Config {
	return Config{
		KeywordOnly:     true,
		PreserveDoc:     true,
		InheritDefaults: true,
		CollectorName:   DefaultCollectorName,
	}
}

// Ignored reports whether the given source parameter name is excluded
func (c Config) Ignored(name string) bool {
	return c.IgnoredNames[name]
}

// Option configures a merge
type Option func(*Config)

// NewConfig builds a Config from DefaultConfig plus the given options
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithKeywordOnly controls conversion of source positional-or-keyword
// parameters to keyword-only (on by default)
func WithKeywordOnly(enabled bool) Option {
	return func(c *Config) {
		c.KeywordOnly = enabled
	}
}

// WithPreserveDoc controls whether the merged documentation string is taken
// from the source (on by default)
func WithPreserveDoc(enabled bool) Option {
	return func(c *Config) {
		c.PreserveDoc = enabled
	}
}

// WithInheritDefaults controls whether source defaults survive the merge
// (on by default)
func WithInheritDefaults(enabled bool) Option {
	return func(c *Config) {
		c.InheritDefaults = enabled
	}
}

// WithFreeze requests generation of a concrete forwarding shim
func WithFreeze(enabled bool) Option {
	return func(c *Config) {
		c.Freeze = enabled
	}
}

// WithCollectorName sets the name the wrapper's collector must have
func WithCollectorName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.CollectorName = name
		}
	}
}

// WithIgnore excludes the given source parameter names from the merge
func WithIgnore(names ...string) Option {
	return func(c *Config) {
		if c.IgnoredNames == nil {
			c.IgnoredNames = make(map[string]bool, len(names))
		}
		for _, name := range names {
			c.IgnoredNames[name] = true
		}
	}
}
