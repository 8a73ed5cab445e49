package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeNetwork       ErrorType = "NETWORK"
	TypeAPI           ErrorType = "API"
	TypeParse         ErrorType = "PARSE"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if status, ok := e.Context["status"].(int); ok && status != 0 {
			msg += fmt.Sprintf(" - HTTP %d", status)
		}
		if body, ok := e.Context["body"].(string); ok && body != "" {
			msg += fmt.Sprintf(" - %s", body)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrMissingAccessToken = NewAppError(TypeConfiguration, "Missing required flag --access_token", nil).
				WithSuggestion("Create a token under Settings > Applications on your Gitea server")

	ErrMissingGiteaURL = NewAppError(TypeConfiguration, "Missing required flag --gitea_url", nil).
				WithSuggestion("Pass the base URL of your Gitea server, e.g. https://gitea.example.com")

	ErrMissingRepoOwner = NewAppError(TypeConfiguration, "Missing required flag --repo_owner", nil)

	ErrMissingRepository = NewAppError(TypeConfiguration, "Missing required flag --repository", nil)

	ErrMissingDays = NewAppError(TypeConfiguration, "Missing required flag --number_of_days", nil).
			WithSuggestion("Pass the inactivity threshold in days, e.g. --number_of_days 30")

	ErrInvalidDays = NewAppError(TypeConfiguration, "--number_of_days must be a non-negative integer", nil)

	ErrInvalidGiteaURL = NewAppError(TypeConfiguration, "--gitea_url is not a valid http(s) URL", nil).
				WithSuggestion("Include the scheme, e.g. https://gitea.example.com")
)

// Network and API errors
var (
	ErrRequestFailed = NewAppError(TypeNetwork, "Failed to reach the Gitea server", nil).
				WithSuggestion("Check the server URL and your network connection")

	ErrUnexpectedStatus = NewAppError(TypeAPI, "Gitea returned a non-success status", nil).
				WithSuggestion("Verify the access token and that the owner/repository exist")
)

// Parse errors
var (
	ErrMalformedResponse = NewAppError(TypeParse, "Could not decode the branch listing", nil).
				WithSuggestion("Make sure --gitea_url points at a Gitea server, not a web page")

	ErrNoUsableBranches = NewAppError(TypeParse, "No branch in the listing had a usable last-commit timestamp", nil)
)
