package storage

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-errors"
)

// newValidator returns a validator that reports fields by their json name
// and understands the "direction" tag.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("direction", validateDirection)

	return v
}

func validateDirection(fl validator.FieldLevel) bool {
	_, ok := game.ParseDirection(fl.Field().String())
	return ok
}

// structErrors validates s and returns one error per violated field.
func structErrors(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	el := errors.NewErrorList()
	for _, fe := range verrs {
		el.Add(describe(fe))
	}
	return el.Err()
}

func describe(fe validator.FieldError) error {
	field := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		switch fe.Kind() {
		case reflect.Map, reflect.Slice:
			return fmt.Errorf("%s must have at least %s entries", field, fe.Param())
		}
		return fmt.Errorf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "direction":
		return fmt.Errorf("%s is not one of North, South, East, West", field)
	default:
		return fmt.Errorf("%s failed %q validation", field, fe.Tag())
	}
}

// fieldPath drops the top-level struct name from a validator namespace,
// so "WorldFile.rooms[hall].name" becomes "rooms[hall].name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
