package app

// ServerResponseError is returned by service methods that a HTTP
// server uses. These errors hold the HTTP response body and status
// code to be returned by the server. This data is considered safe and
// can be seen by external sources.
//
// Use the ServerErrorResponse method to get the data that is safe to
// be displayed to external sources.
type ServerResponseError struct {
	// The underlying error. Not shown to external sources.
	Err error

	// The HTTP response body.
	Msg string

	// The HTTP status code.
	StatusCode int
}

func (e *ServerResponseError) Error() string {
	if e.Err == nil {
		return e.Msg
	}

	return e.Err.Error()
}

func (e *ServerResponseError) Unwrap() error {
	return e.Err
}

// ServerErrorResponse returns the status code and the response body.
func (e *ServerResponseError) ServerErrorResponse() (int, string) {
	return e.StatusCode, e.Msg
}
