// Package validate centraliza la validación de requests con los tags
// `validate` de los DTOs.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct valida un DTO contra sus tags. Devuelve el error crudo del
// validador; el handler lo clasifica (ValidationError o CreationError
// según la operación).
func Struct(s any) error {
	return v.Struct(s)
}
