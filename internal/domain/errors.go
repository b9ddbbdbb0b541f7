package domain

import "errors"

// Kind clasifica un fallo de dominio. Todo error que sale de un caso de uso
// o de un repositorio pertenece a exactamente una de estas clases; el mapeo
// a status HTTP es responsabilidad exclusiva de la capa de transporte.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindCreation
	KindConflict
	KindForbidden
	KindInternal
)

// Códigos numéricos estables del diccionario de errores. Son contrato con
// los clientes: no renumerar.
const (
	CodeNotFound   = 3
	CodeValidation = 6
	CodeCreation   = 7
	CodeForbidden  = 8
	CodeInternal   = 9
	CodeConflict   = 26
)

// Error es un fallo de dominio clasificado: clase, código numérico estable
// y causa legible. Implementa error y se compara por clase con errors.Is.
type Error struct {
	Kind  Kind
	Code  int
	Cause string
}

func (e *Error) Error() string { return e.Cause }

// Is compara por Kind, de modo que errors.Is(err, domain.ErrNotFound)
// funciona aunque la causa sea distinta.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinelas por clase, con la causa genérica. Para causas específicas usar
// los constructores de abajo.
var (
	ErrNotFound   = &Error{Kind: KindNotFound, Code: CodeNotFound, Cause: "recurso no encontrado"}
	ErrValidation = &Error{Kind: KindValidation, Code: CodeValidation, Cause: "entrada inválida"}
	ErrCreation   = &Error{Kind: KindCreation, Code: CodeCreation, Cause: "faltan campos requeridos"}
	ErrConflict   = &Error{Kind: KindConflict, Code: CodeConflict, Cause: "conflicto con el estado actual"}
	ErrForbidden  = &Error{Kind: KindForbidden, Code: CodeForbidden, Cause: "acceso denegado"}
	ErrInternal   = &Error{Kind: KindInternal, Code: CodeInternal, Cause: "error interno"}
)

// NotFound construye un error de clase NotFound con causa específica.
func NotFound(cause string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Cause: cause}
}

// Validation construye un error de clase ValidationError.
func Validation(cause string) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Cause: cause}
}

// Creation construye un error de clase CreationError (validación en alta).
func Creation(cause string) *Error {
	return &Error{Kind: KindCreation, Code: CodeCreation, Cause: cause}
}

// Conflict construye un error de clase Conflict (violación de unicidad).
func Conflict(cause string) *Error {
	return &Error{Kind: KindConflict, Code: CodeConflict, Cause: cause}
}

// Forbidden construye un error de clase Forbidden.
func Forbidden(cause string) *Error {
	return &Error{Kind: KindForbidden, Code: CodeForbidden, Cause: cause}
}

// Internal envuelve un fallo inesperado de infraestructura. Garantiza que
// ningún error crudo de persistencia cruce la frontera del componente.
func Internal(err error) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Kind: KindInternal, Code: CodeInternal, Cause: err.Error()}
}

// String devuelve el nombre de la clase para respuestas y logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "ValidationError"
	case KindCreation:
		return "CreationError"
	case KindConflict:
		return "Conflict"
	case KindForbidden:
		return "Forbidden"
	default:
		return "Internal"
	}
}
