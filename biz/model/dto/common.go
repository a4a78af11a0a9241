package dto

// CommonResp is the envelope every endpoint answers with. Data is omitted on
// failure responses.
type CommonResp struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
