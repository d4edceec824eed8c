package geometry

import "errors"

// Kind classifies why an input was rejected
type Kind int

const (
	// KindType means the input could not be interpreted as a real number
	KindType Kind = iota + 1
	// KindValue means the input is numeric but outside its allowed domain
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrType  = errors.New("geometry: not a real number")
	ErrValue = errors.New("geometry: value out of range")
)

// Error reports a rejected radius or angle
type Error struct {
	Kind  Kind
	Param string // "radius" or "angle"
	Msg   string
}

func (e *Error) Error() string {
	return e.Param + " " + e.Msg
}

// Is lets errors.Is(err, ErrType) and errors.Is(err, ErrValue) select on Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == KindType
	case ErrValue:
		return e.Kind == KindValue
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or 0 if there is none.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return 0
}

func typeError(param string) error {
	return &Error{Kind: KindType, Param: param, Msg: "must be a real number"}
}

func valueError(param, msg string) error {
	return &Error{Kind: KindValue, Param: param, Msg: msg}
}
