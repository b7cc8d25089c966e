package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse sobre de respuesta para altas y mutaciones ({"status":"success","data":...}).
type SuccessResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// Success construye un SuccessResponse.
func Success(data interface{}) SuccessResponse {
	return SuccessResponse{Status: "success", Data: data}
}
