package session

import (
	"errors"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
)

// unwrapMessage текст ошибки без префиксов операций.
func unwrapMessage(err error) string {
	var parseErr *gateway.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Error()
	}
	var transportErr *gateway.TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Error()
	}
	return err.Error()
}
