package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-auth-gate/models"
)

// Go field names accepted by Validate for partial validation of
// [models.Credentials].
const (
	FieldUserID   = "UserID"
	FieldPassword = "Password"
	FieldProfile  = "Profile"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// CredentialsValidator validates [models.Credentials] using the `validate`
// struct tags declared on the model plus the custom "userid" tag.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names ("user_id") instead of Go names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		return userIDPattern.MatchString(fl.Field().String())
	})

	return &CredentialsValidator{validate: v}
}

// Validate checks obj, which must be a models.Credentials or a pointer to
// one. When fields are given only those Go fields are checked.
//
// Every returned error wraps [ErrInvalidField] or [ErrUnsupportedType].
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var creds models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		creds = value
	case *models.Credentials:
		if value == nil {
			return fmt.Errorf("%w: nil credentials", ErrUnsupportedType)
		}
		creds = *value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, creds, fields...)
	} else {
		err = v.validate.StructCtx(ctx, creds)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, fmt.Errorf("%w: %s failed on %q", ErrInvalidField, fe.Namespace(), fe.Tag()))
	}

	return errors.Join(errs...)
}
