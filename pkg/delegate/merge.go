package delegate

import "sort"

// Merge merges the source signature's parameters into the wrapper signature
// and returns the merged signature. The wrapper must declare a
// variadic-keyword collector under cfg.CollectorName; source parameters that
// are ignored or explicitly re-declared by the wrapper are dropped; the
// surviving source parameters are appended after the wrapper's own, grouped
// stably by kind. The collector only survives in the merged parameter list
// when the source itself declares one. Neither input is mutated.
func Merge(source, wrapper Signature, cfg Config) (Signature, error) {
	if cfg.CollectorName == "" {
		cfg.CollectorName = DefaultCollectorName
	}

	if err := source.Validate(); err != nil {
		return Signature{}, wrapError(ConfigurationErrorCode, err, "invalid source signature")
	}
	if err := wrapper.Validate(); err != nil {
		return Signature{}, wrapError(ConfigurationErrorCode, err, "invalid wrapper signature")
	}

	sourceCollector, sourceHasCollector := source.Collector()
	wrapperCollector, wrapperHasCollector := wrapper.Collector()
	if !wrapperHasCollector {
		if sourceHasCollector {
			return Signature{}, newSourceCollectorError(sourceCollector.Name)
		}
		return Signature{}, newMissingCollectorError(cfg.CollectorName)
	}
	if wrapperCollector.Name != cfg.CollectorName {
		return Signature{}, newCollectorNameError(wrapperCollector.Name, cfg.CollectorName)
	}

	// Wrapper's explicit (non-collector) declarations win name collisions.
	explicit := make(map[string]bool, len(wrapper.Params))
	for _, p := range wrapper.Params {
		if p.Kind != VariadicKeyword {
			explicit[p.Name] = true
		}
	}

	// Candidate set from the source: ignored names dropped, positional-or-keyword
	// optionally converted to keyword-only, defaults stripped unless inherited.
	var candidates []Parameter
	for _, p := range source.Params {
		if cfg.Ignored(p.Name) {
			continue
		}
		if p.Kind == VariadicKeyword {
			// Carried under the configured name; reconciled below.
			continue
		}
		if explicit[p.Name] {
			continue
		}
		if cfg.KeywordOnly && p.Kind == PositionalOrKeyword {
			p.Kind = KeywordOnly
		}
		if !cfg.InheritDefaults {
			p.Default = nil
			p.HasDefault = false
		}
		candidates = append(candidates, p)
	}

	// Wrapper parameters in declaration order, with annotation inheritance:
	// a wrapper parameter that shadows a source parameter and carries no
	// annotation of its own adopts the source's.
	merged := make([]Parameter, 0, len(wrapper.Params)+len(candidates)+1)
	for _, p := range wrapper.Params {
		if p.Kind == VariadicKeyword {
			continue
		}
		if p.Annotation == "" {
			if src, ok := source.Lookup(p.Name); ok && !cfg.Ignored(p.Name) {
				p.Annotation = src.Annotation
			}
		}
		merged = append(merged, p)
	}

	merged = append(merged, candidates...)

	// Variadic-keyword reconciliation: exactly one collector survives, and
	// only when the source declares one of its own.
	if sourceHasCollector {
		collector := sourceCollector
		collector.Name = cfg.CollectorName
		merged = append(merged, collector)
	}

	// Stable grouping by kind only: positional-or-keyword, then keyword-only,
	// then the collector. Relative order within a group is preserved.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Kind < merged[j].Kind
	})

	result := Signature{Params: merged, Doc: wrapper.Doc}
	if cfg.PreserveDoc {
		result.Doc = source.Doc
	}

	if err := result.Validate(); err != nil {
		return Signature{}, err
	}
	return result, nil
}
