package clay

import "fmt"

// ErrorType classifies errors reported by the layout core.
type ErrorType int

const (
	// ErrorTypeElementsCapacityExceeded means more elements were declared in
	// one pass than the context was configured for.
	ErrorTypeElementsCapacityExceeded ErrorType = iota + 1
	// ErrorTypeDuplicateID means two elements in one pass share an explicit id.
	ErrorTypeDuplicateID
	// ErrorTypeUnbalancedElements means open and close calls do not pair up.
	ErrorTypeUnbalancedElements
	// ErrorTypeInternal covers out-of-bounds access to core state, such as
	// asking for the open element outside a declaration pass.
	ErrorTypeInternal
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeElementsCapacityExceeded:
		return "elements capacity exceeded"
	case ErrorTypeDuplicateID:
		return "duplicate id"
	case ErrorTypeUnbalancedElements:
		return "unbalanced elements"
	case ErrorTypeInternal:
		return "internal error"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// Sentinel errors, one per ErrorType, for use with errors.Is.
var (
	ErrElementsCapacityExceeded = ErrorData{Type: ErrorTypeElementsCapacityExceeded}
	ErrDuplicateID              = ErrorData{Type: ErrorTypeDuplicateID}
	ErrUnbalancedElements       = ErrorData{Type: ErrorTypeUnbalancedElements}
	ErrInternal                 = ErrorData{Type: ErrorTypeInternal}
)

// ErrorData is a single error reported by the core.
type ErrorData struct {
	Type ErrorType
	Text string
}

func (e ErrorData) Error() string {
	if e.Text == "" {
		return "clay: " + e.Type.String()
	}
	return "clay: " + e.Type.String() + ": " + e.Text
}

// Is matches any ErrorData of the same Type.
func (e ErrorData) Is(target error) bool {
	t, ok := target.(ErrorData)
	return ok && t.Type == e.Type
}

// ErrorHandler receives errors reported during a pass. Reporting never
// aborts the pass.
type ErrorHandler func(ErrorData)
