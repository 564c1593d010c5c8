package form

import (
	"errors"
	"strings"
	"sync"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/richtext"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/go-playground/validator/v10"
)

// ValidationError — первое нарушенное правило формы с сообщением для пользователя.
type ValidationError struct {
	Field   string
	Message string
}

func (v *ValidationError) Error() string {
	return v.Field + ": " + v.Message
}

func (v *ValidationError) Unwrap() error {
	return e.ErrValidation
}

func (v *ValidationError) PublicMessage() string {
	return v.Message
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator возвращает общий экземпляр валидатора с зарегистрированными
// правилами notblank, richtext и icon.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("richtext", func(fl validator.FieldLevel) bool {
			return !richtext.IsBlank(fl.Field().String())
		})
		validate.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			return domain.Icon(fl.Field().String()).Valid()
		})
	})
	return validate
}

// check валидирует структуру и возвращает только первое нарушение
// в порядке объявления полей.
func check(v any, messages map[string]string) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return e.Wrap("form.check", err)
	}

	first := verrs[0]
	msg, ok := messages[first.Field()]
	if !ok {
		msg = first.Field() + " tidak valid"
	}
	return &ValidationError{Field: first.Field(), Message: msg}
}
