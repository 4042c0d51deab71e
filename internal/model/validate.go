package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
)

// Credit score bounds accepted by the analyzer.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// ErrInvalidInput is the sentinel every ValidationError matches via errors.Is.
var ErrInvalidInput = eris.New("invalid financial data")

// ValidationError reports why a record cannot be analyzed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// CheckPreconditions is the fail-fast check run before any metric is computed.
func CheckPreconditions(d *FinancialData) error {
	if d == nil {
		return &ValidationError{Field: "record", Reason: "financial data is required"}
	}
	if !(d.Income.PrimarySalary > 0) {
		return &ValidationError{
			Field:  "income.primarySalary",
			Reason: fmt.Sprintf("must be greater than 0 (got %v)", d.Income.PrimarySalary),
		}
	}
	if score := d.Liabilities.CreditScore; score < MinCreditScore || score > MaxCreditScore {
		return &ValidationError{
			Field:  "liabilities.creditScore",
			Reason: fmt.Sprintf("must be between %d and %d (got %d)", MinCreditScore, MaxCreditScore, score),
		}
	}
	return nil
}

// Validate checks the full record schema (ranges, enum membership, non-negative
// amounts) using struct tags, then the analyzer preconditions. Collaborators
// that assemble records from files or forms call it before handing the record
// to the analyzer.
func Validate(d *FinancialData) error {
	if d == nil {
		return CheckPreconditions(nil)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return eris.Wrap(err, "model: validate record")
		}
		fe := fieldErrs[0]
		return &ValidationError{
			Field:  fieldPath(fe.Namespace()),
			Reason: describeTag(fe),
		}
	}
	return CheckPreconditions(d)
}

// fieldPath drops the root type name from a validator namespace
// ("FinancialData.income.primarySalary" -> "income.primarySalary").
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s (got %v)", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s (got %v)", fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s (got %v)", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s] (got %q)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
