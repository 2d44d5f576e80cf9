package member

import "errors"

// Error types.
var (
	ErrFieldNotFound    = errors.New("field not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrIndexerNotFound  = errors.New("indexer not found")
	ErrMethodNotFound   = errors.New("method not found")

	// ErrMemberNotFound is returned by the combined field-or-property
	// lookup when both categories fail.
	ErrMemberNotFound = errors.New("member not found")

	// ErrNilArgument is returned when an argument required to be non-nil,
	// such as every argument of an inferred-type invocation, is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrInvalidReceiver is returned when the supplied receiver does not
	// fit the resolved member, for example a value receiver passed to a
	// field write or to a pointer-receiver method.
	ErrInvalidReceiver = errors.New("invalid receiver")

	// ErrReadOnlyProperty is returned when writing a property that was
	// registered without a setter.
	ErrReadOnlyProperty = errors.New("read-only property")

	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")
	ErrInvalidArgumentValue   = errors.New("invalid argument value")
)
