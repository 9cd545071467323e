package dto

// Tipos del sobre uniforme de respuesta.
const (
	TypeSuccess = "SUCCESS"
	TypeError   = "ERROR"
)

// ResponseObject sobre uniforme de todas las respuestas HTTP.
type ResponseObject struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Type    string      `json:"type"`
}

// OK construye una respuesta exitosa.
func OK(message string, data interface{}) ResponseObject {
	return ResponseObject{Message: message, Data: data, Type: TypeSuccess}
}

// Fail construye una respuesta de error (data siempre null).
func Fail(message string) ResponseObject {
	return ResponseObject{Message: message, Data: nil, Type: TypeError}
}

// PageRequest parámetros de paginación (query params page/size).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize aplica defaults y límites: page >= 0, 1 <= size <= 100.
func (p *PageRequest) Normalize() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 10
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// Limit tamaño de página para la consulta SQL.
func (p PageRequest) Limit() int { return p.Size }

// Offset desplazamiento para la consulta SQL.
func (p PageRequest) Offset() int { return p.Page * p.Size }

// PageResponse metadatos de paginación de un listado.
type PageResponse struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// NewPageResponse calcula los metadatos a partir del total.
func NewPageResponse(req PageRequest, total int) PageResponse {
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return PageResponse{Page: req.Page, Size: req.Size, TotalElements: total, TotalPages: pages}
}

// PagedData listado paginado genérico.
type PagedData struct {
	Content interface{}  `json:"content"`
	Meta    PageResponse `json:"meta"`
}
