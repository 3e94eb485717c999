package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"villa_cms/internal/storage"
)

// Record is the constraint both repository backends place on entity types:
// a value type whose pointer can be stamped with its identity.
type Record[T any] interface {
	*T
	GetID() int64
	SetIdentity(id int64, createdAt time.Time)
	Validate() error
	Clone() T
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the domain enum rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("doccategory", func(fl validator.FieldLevel) bool {
			return DocumentCategory(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
			return MediaType(fl.Field().String()).Valid()
		})
		// sort_order columns are INT.
		_ = validate.RegisterValidation("sortorder", func(fl validator.FieldLevel) bool {
			v := fl.Field().Int()
			return v >= math.MinInt32 && v <= math.MaxInt32
		})
	})

	return validate
}

// validateStruct runs the struct tags and converts the result into a
// *storage.ValidationError. extra problems are appended after tag problems.
func validateStruct(v any, extra ...string) error {
	var problems []string

	if err := Validator().Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return storage.NewValidationError(err.Error())
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	problems = append(problems, extra...)
	if len(problems) > 0 {
		return storage.NewValidationError(problems...)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "sortorder":
		return fmt.Sprintf("%s must be between %d and %d", field, math.MinInt32, math.MaxInt32)
	case "category", "doccategory", "mediatype", "oneof":
		return fmt.Sprintf("%s has unknown value %q", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// NormalizeEmail is applied by every backend before storing or looking up an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Patch is implemented by every per-entity patch type. Apply merges the set
// fields into the record and may refuse the change.
type Patch[T any] interface {
	Apply(*T) error
}

type toucher interface {
	Touch(at time.Time)
}

type emptier interface {
	Empty() bool
}

// Stamped wraps p.Apply for a store whose clock is now. Records that carry a
// modification time are touched only when the patch sets at least one field.
func Stamped[T any, P Patch[T]](p P, now func() time.Time) func(*T) error {
	return func(v *T) error {
		if err := p.Apply(v); err != nil {
			return err
		}
		if e, ok := any(p).(emptier); ok && e.Empty() {
			return nil
		}
		if t, ok := any(v).(toucher); ok {
			t.Touch(now())
		}
		return nil
	}
}
