package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/delegate/pkg/delegate"
)

func TestSuggestions(t *testing.T) {
	_, err := delegate.Merge(
		delegate.MustParseSignature("(a)"),
		delegate.MustParseSignature("(**opts)"),
		delegate.DefaultConfig(),
	)
	assert.NotEmpty(t, suggestions(err))

	assert.Nil(t, suggestions(assert.AnError))
}
