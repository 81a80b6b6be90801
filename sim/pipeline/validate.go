package pipeline

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/canesim/canesim/sim"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the input records.
// Field errors carry the yaml wire name so messages name the form field.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

func validateStruct(s any) error {
	return convertValidationError(validatorInstance().Struct(s))
}

// convertValidationError normalizes validator errors into *sim.ValidationError. A missing
// field wins over a range violation so presence is always reported first.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &sim.ValidationError{Field: "input", Reason: err.Error()}
	}

	for _, ve := range ves {
		if ve.Tag() == "required" {
			return sim.NewMissingFieldError(ve.Field())
		}
	}
	ve := ves[0]
	return &sim.ValidationError{Field: ve.Field(), Reason: rangeReason(ve)}
}

var rangeOps = map[string]string{"gt": ">", "gte": ">=", "lt": "<", "lte": "<="}

func rangeReason(ve validator.FieldError) string {
	if op, ok := rangeOps[ve.Tag()]; ok {
		return fmt.Sprintf("must be %s %s, got %v", op, ve.Param(), ve.Value())
	}
	return fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
}
