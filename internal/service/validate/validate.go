// Package validate runs struct-tag validation on service inputs and reports
// failures as *domain.ValidationError.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json name so messages match request keys.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("followup_method", followUpMethod)
		_ = v.RegisterValidation("nonul", noNUL)

		instance = v
	})
	return instance
}

// Struct validates s and converts every failed tag into a FieldError.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "max":
		return "max " + fe.Param() + " characters"
	case "nonul":
		return domain.MsgContainsNUL
	case "followup_method":
		return "must be one of 电话, 微信, 邮件, 拜访, 其他"
	}
	return "invalid (" + fe.Tag() + ")"
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func noNUL(fl validator.FieldLevel) bool {
	return !domain.ContainsNUL(fl.Field().String())
}

func followUpMethod(fl validator.FieldLevel) bool {
	return domain.FollowUpMethod(fl.Field().String()).IsValid()
}
