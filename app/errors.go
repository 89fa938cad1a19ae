package app

import (
	"errors"
	"fmt"

	"github.com/a-h/jsonapi"
	"github.com/a-h/lawbuddy/client"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindConnectivity
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConnectivity:
		return "connectivity"
	case KindApplication:
		return "application"
	default:
		return "unexpected"
	}
}

// ValidationError is returned when user input is rejected before any
// request is made.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func Classify(err error) Kind {
	var ve ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var ne client.NetworkError
	if errors.As(err, &ne) {
		return KindConnectivity
	}
	var ise jsonapi.InvalidStatusError
	if errors.As(err, &ise) {
		return KindApplication
	}
	return KindUnexpected
}

// Message returns the text shown to the user for a failed question.
func Message(err error) string {
	switch Classify(err) {
	case KindValidation:
		var ve ValidationError
		errors.As(err, &ve)
		return ve.Message
	case KindConnectivity:
		var ne client.NetworkError
		errors.As(err, &ne)
		return fmt.Sprintf("Network error: %v", ne.Err)
	case KindApplication:
		var ise jsonapi.InvalidStatusError
		errors.As(err, &ise)
		return fmt.Sprintf("API Error: %d - %s", ise.Status, ise.Body)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
