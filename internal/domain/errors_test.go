package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreshreposo/ecommerce-api/internal/domain"
)

// Los códigos numéricos son contrato con los clientes: si este test falla,
// alguien renumeró el diccionario de errores.
func TestCodigosEstables(t *testing.T) {
	assert.Equal(t, 3, domain.CodeNotFound)
	assert.Equal(t, 6, domain.CodeValidation)
	assert.Equal(t, 7, domain.CodeCreation)
	assert.Equal(t, 8, domain.CodeForbidden)
	assert.Equal(t, 9, domain.CodeInternal)
	assert.Equal(t, 26, domain.CodeConflict)
}

func TestErrorsIs_ComparaPorClase(t *testing.T) {
	err := domain.NotFound("producto no encontrado")

	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"dos errores de la misma clase deben matchear aunque la causa difiera")
	assert.False(t, errors.Is(err, domain.ErrValidation))
	assert.False(t, errors.Is(err, domain.ErrForbidden))
}

func TestInternal_EnvuelveErroresCrudos(t *testing.T) {
	raw := fmt.Errorf("pq: connection refused")
	err := domain.Internal(raw)

	require.NotNil(t, err)
	assert.Equal(t, domain.KindInternal, err.Kind)
	assert.Equal(t, domain.CodeInternal, err.Code)
	assert.True(t, errors.Is(err, domain.ErrInternal))
}

func TestInternal_NoReclasificaErroresYaClasificados(t *testing.T) {
	original := domain.Conflict("el code ya existe")
	wrapped := domain.Internal(original)

	assert.Equal(t, domain.KindConflict, wrapped.Kind,
		"un error ya clasificado debe pasar intacto por Internal")
	assert.Equal(t, domain.CodeConflict, wrapped.Code)
}

func TestInternal_NilEsNil(t *testing.T) {
	assert.Nil(t, domain.Internal(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NotFound", domain.KindNotFound.String())
	assert.Equal(t, "ValidationError", domain.KindValidation.String())
	assert.Equal(t, "CreationError", domain.KindCreation.String())
	assert.Equal(t, "Conflict", domain.KindConflict.String())
	assert.Equal(t, "Forbidden", domain.KindForbidden.String())
	assert.Equal(t, "Internal", domain.KindInternal.String())
}
