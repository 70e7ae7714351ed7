package cache

// ErrorHandler carries the HTTP status a cache miss or corruption should map
// to, so handlers can surface it without re-classifying the error.
type ErrorHandler struct {
	Err        error
	StatusCode int
}

func NewErrorHandler(err error, statusCode int) ErrorHandler {
	return ErrorHandler{Err: err, StatusCode: statusCode}
}

func (e ErrorHandler) Error() string {
	return e.Err.Error()
}

func (e ErrorHandler) Unwrap() error {
	return e.Err
}
