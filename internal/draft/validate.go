package draft

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"go.uber.org/multierr"

	"github.com/zestagio/queue-composer/pkg/distinct"
)

//nolint:stylecheck // messages are shown to users as is
var (
	ErrBodyNotDefined         = errors.New("Body is not defined.")
	ErrAttributeNameNotUnique = errors.New("Attribute Name is not unique.")
)

type AttributeProblem int

const (
	ProblemNameUndefined AttributeProblem = iota + 1
	ProblemValueUndefined
	ProblemNotANumber
	ProblemInvalidType
)

var attributeProblemFormats = map[AttributeProblem]string{
	ProblemNameUndefined:  "Attribute Name at position %d is undefined.",
	ProblemValueUndefined: "Attribute Value at position %d is undefined.",
	ProblemNotANumber:     "Attribute value at position %d is not a number.",
	ProblemInvalidType:    "Attribute Data Type at position %d is invalid.",
}

// AttributeError describes a problem with the attribute at zero-based Position.
type AttributeError struct {
	Position int
	Problem  AttributeProblem
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf(attributeProblemFormats[e.Problem], e.Position)
}

// ValidationError combines every problem found in a message.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return multierr.Errors(e.err)
}

// Reasons returns human-readable problems in detection order.
func (e *ValidationError) Reasons() []string {
	errs := multierr.Errors(e.err)
	reasons := make([]string, 0, len(errs))
	for _, err := range errs {
		reasons = append(reasons, err.Error())
	}
	return reasons
}

// ValidationResult is either valid or invalid with a non-empty list of reasons.
type ValidationResult struct {
	err error
}

// Invalid builds a failed result from the given reasons.
// It is used to surface send failures in the same shape as validation problems.
func Invalid(reasons ...error) ValidationResult {
	return ValidationResult{err: multierr.Combine(reasons...)}
}

func (r ValidationResult) IsValid() bool {
	return r.err == nil
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.err == nil {
		return nil
	}
	return &ValidationError{err: r.err}
}

func (r ValidationResult) Reasons() []string {
	if r.err == nil {
		return nil
	}
	return (&ValidationError{err: r.err}).Reasons()
}

// Validate checks the message exhaustively: every problem is reported, in order.
func Validate(msg Message) ValidationResult {
	var err error

	if FormatBody(msg.Body) == "" {
		err = multierr.Append(err, ErrBodyNotDefined)
	}

	if !distinct.By(msg.Attributes, func(a Attribute) string { return a.Name }) {
		err = multierr.Append(err, ErrAttributeNameNotUnique)
	}

	for i, a := range msg.Attributes {
		if a.Name == "" {
			err = multierr.Append(err, &AttributeError{Position: i, Problem: ProblemNameUndefined})
		}

		if a.Value == "" {
			err = multierr.Append(err, &AttributeError{Position: i, Problem: ProblemValueUndefined})
		} else if a.Type.isNumeric() && !isNumber(a.Value) {
			err = multierr.Append(err, &AttributeError{Position: i, Problem: ProblemNotANumber})
		}

		if !a.Type.IsValid() {
			err = multierr.Append(err, &AttributeError{Position: i, Problem: ProblemInvalidType})
		}
	}

	return ValidationResult{err: err}
}

// decimalLiteral leaves out what ParseFloat accepts beyond plain decimals:
// digit separators, hex floats, Inf and NaN.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func isNumber(s string) bool {
	if !decimalLiteral.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}
