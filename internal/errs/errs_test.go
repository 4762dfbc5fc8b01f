package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapDataFetchError("WTI", cause, "failed to fetch commodity data")

	assert.Contains(t, err.Error(), "WTI")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestNarrativeError_EmbedsCause(t *testing.T) {
	cause := errors.New("401 API key not valid")
	err := WrapNarrativeError(cause, "LLM call failed, check your Gemini API key and remaining quota")

	assert.Contains(t, err.Error(), "check your Gemini API key")
	assert.Contains(t, err.Error(), "401 API key not valid")
	assert.ErrorIs(t, err, cause)
}

func TestTaxonomyIsDistinguishable(t *testing.T) {
	var wrapped error = fmt.Errorf("request aborted: %w", NewConfigurationError("gemini api key is not configured"))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, wrapped, &cfgErr)

	var fetchErr *DataFetchError
	assert.False(t, errors.As(wrapped, &fetchErr))
}
