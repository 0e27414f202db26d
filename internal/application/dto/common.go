package dto

// PageResponse metadatos de página en respuestas de listados.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP. Message incluye ids y cantidades del
// error de dominio para que el cliente pueda mostrar un mensaje preciso.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
