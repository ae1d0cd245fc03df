package pkg

import "fmt"

// AppError is the closed error shape every failure is normalized to at the
// HTTP boundary. Message is safe for end users; Err keeps the internal cause
// for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the wire form of an AppError.
type HTTPError struct {
	StatusCode  int    `json:"status_code"`
	Code        string `json:"code"`
	UserMessage string `json:"message"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		StatusCode:  e.HTTPStatus,
		Code:        e.Code,
		UserMessage: e.Message,
	}
}
