package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreshreposo/ecommerce-api/internal/application/dto"
	"github.com/andreshreposo/ecommerce-api/internal/domain"
)

func TestStatusForKind(t *testing.T) {
	cases := []struct {
		kind domain.Kind
		want int
	}{
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindValidation, http.StatusBadRequest},
		{domain.KindCreation, http.StatusBadRequest},
		{domain.KindConflict, http.StatusConflict},
		{domain.KindForbidden, http.StatusForbidden},
		{domain.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusForKind(tc.kind), "kind %s", tc.kind)
	}
}

func respondVia(t *testing.T, err error) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, reqErr)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp, body
}

func TestRespondError_ErrorClasificado(t *testing.T) {
	resp, body := respondVia(t, domain.Conflict("ya existe un producto con code X"))

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Conflict", body.Error.Kind)
	assert.Equal(t, 26, body.Error.Code)
	assert.Equal(t, "ya existe un producto con code X", body.Error.Message)
}

// Un error crudo que llegue hasta el transporte nunca sale tal cual:
// se clasifica como Internal.
func TestRespondError_ErrorCrudoSeEnvuelve(t *testing.T) {
	resp, body := respondVia(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal", body.Error.Kind)
	assert.Equal(t, domain.CodeInternal, body.Error.Code)
}
