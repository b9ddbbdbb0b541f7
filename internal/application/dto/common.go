package dto

// PageRequest paginación para listados. Page es 1-based como en el
// front original; cualquier valor no positivo es ValidationError.
type PageRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit vienen en cero.
func (p *PageRequest) DefaultPage() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset traduce la página 1-based a offset de SQL.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ErrorBody es el error clasificado que viaja al cliente: clase, código
// numérico estable y mensaje. El status HTTP lo decide el transporte.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse envoltorio de error HTTP.
type ErrorResponse struct {
	Status string    `json:"status"`
	Error  ErrorBody `json:"error"`
}

// SuccessResponse envoltorio de éxito HTTP, con el payload de la operación.
type SuccessResponse struct {
	Status  string `json:"status"`
	Payload any    `json:"payload"`
}
