package errs

import "fmt"

// ConfigurationError means a required credential or setting is missing.
// The request is aborted before any network call is made.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// DataFetchError covers every way a market data request can fail:
// transport errors, non-2xx status, provider error payloads, rate
// limiting, malformed response shapes and empty result sets.
type DataFetchError struct {
	Symbol  string
	Message string
	Err     error
}

func (e *DataFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Symbol, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Symbol, e.Message)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

func NewDataFetchError(symbol, format string, args ...interface{}) *DataFetchError {
	return &DataFetchError{Symbol: symbol, Message: fmt.Sprintf(format, args...)}
}

func WrapDataFetchError(symbol string, err error, format string, args ...interface{}) *DataFetchError {
	return &DataFetchError{Symbol: symbol, Message: fmt.Sprintf(format, args...), Err: err}
}

// AnalysisError means a computation was requested on a series that cannot
// support it, e.g. statistics over an empty series.
type AnalysisError struct {
	Message string
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func NewAnalysisError(format string, args ...interface{}) *AnalysisError {
	return &AnalysisError{Message: fmt.Sprintf(format, args...)}
}

// NarrativeError means the LLM call failed. The underlying cause text is
// embedded so the user can self-diagnose (bad key, exhausted quota).
type NarrativeError struct {
	Message string
	Err     error
}

func (e *NarrativeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *NarrativeError) Unwrap() error {
	return e.Err
}

func WrapNarrativeError(err error, format string, args ...interface{}) *NarrativeError {
	return &NarrativeError{Message: fmt.Sprintf(format, args...), Err: err}
}
