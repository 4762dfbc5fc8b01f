package dto

import "net/http"

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewSuccessResponse(message string, data interface{}) *BaseResponse {
	return NewBaseResponse(http.StatusOK, message, data)
}

// AnalyzeRequest is the POST /api/v1/analyze payload.
type AnalyzeRequest struct {
	AssetClass       string  `json:"asset_class" validate:"required,oneof=commodity stock"`
	Symbol           string  `json:"symbol" validate:"required"`
	Question         string  `json:"question" validate:"required"`
	InvestmentAmount float64 `json:"investment_amount" validate:"required,gt=0"`
}
