package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperror "goinventory/internal/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator retorna a instância compartilhada do validador.
// A instância faz cache das structs analisadas e é segura para uso concorrente.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		// Usa o nome do campo JSON nas mensagens de erro.
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return instance
}

// Struct valida v e traduz falhas em apperror.ValidationError.
func Struct(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.NewValidationError(Describe(verrs))
	}
	return apperror.NewValidationError(err.Error())
}

// Describe monta uma mensagem legível a partir dos erros do validador.
func Describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "max":
		return fmt.Sprintf("%s excede o máximo de %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de [%s]", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s deve ser uma cor hexadecimal", field)
	default:
		return fmt.Sprintf("%s é inválido (%s)", field, fe.Tag())
	}
}
