package delegate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "ConfigurationError", ConfigurationErrorCode.String())
	assert.Equal(t, "CollisionError", CollisionErrorCode.String())
	assert.Equal(t, "SyntaxError", SyntaxErrorCode.String())
	assert.Equal(t, "ReflectionError", ReflectionErrorCode.String())
	assert.Equal(t, "UnknownError", UnknownErrorCode.String())
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("bad wiring for '%s'", "kwargs")

	assert.Equal(t, ConfigurationErrorCode, err.ErrorCode())
	assert.Contains(t, err.Error(), "ConfigurationError")
	assert.Contains(t, err.Error(), "bad wiring for 'kwargs'")
	assert.Empty(t, err.Context())
}

func TestCollisionError(t *testing.T) {
	err := NewCollisionError("mode")

	assert.Equal(t, CollisionErrorCode, err.ErrorCode())
	assert.Equal(t, "mode", err.Name)
	assert.Equal(t, "mode", err.Context()["parameter"])
	assert.NotEmpty(t, err.Suggestions())
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("root cause")
	err := wrapError(ConfigurationErrorCode, cause, "invalid source signature")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid source signature")
}

func TestErrorContextAndSuggestions(t *testing.T) {
	err := newError(UnknownErrorCode, "something")
	err.WithContext("key", 1).WithSuggestion("try harder")

	assert.Equal(t, 1, err.Context()["key"])
	assert.Equal(t, []string{"try harder"}, err.Suggestions())
}

func TestMergeErrorsCarryCode(t *testing.T) {
	_, err := Merge(MustParseSignature("(a)"), MustParseSignature("(x)"), DefaultConfig())
	require.Error(t, err)

	var coded interface{ ErrorCode() ErrorCode }
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, ConfigurationErrorCode, coded.ErrorCode())
}
