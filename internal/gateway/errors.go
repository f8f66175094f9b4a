package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError ответ сервера со статусом вне диапазона 2xx.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.Status, http.StatusText(e.Status))
}

// ParseError тело успешного ответа не удалось разобрать.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "malformed response body: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TransportError запрос не дошел до сервера или ответ не был получен.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsHTTPError сообщает, вызвана ли ошибка статусом ответа, и возвращает его.
func IsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// IsParseError сообщает, вызвана ли ошибка некорректным телом ответа.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
