package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mensagens usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// ValidateStruct aplica as tags validate e devolve uma mensagem por campo inválido
func ValidateStruct(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return messages
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("o campo %s é obrigatório", field)
	case "email":
		return fmt.Sprintf("o campo %s deve ser um e-mail válido", field)
	case "url":
		return fmt.Sprintf("o campo %s deve ser uma URL válida", field)
	case "min":
		return fmt.Sprintf("o campo %s deve ter no mínimo %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("o campo %s deve ter no máximo %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("o campo %s deve ser um de: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("o campo %s é inválido", field)
	}
}
