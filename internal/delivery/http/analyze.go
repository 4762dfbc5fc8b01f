package http

import (
	"net/http"

	"commodity-advisor/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.POST("/analyze", h.Analyze)
		v1.GET("/history", h.History)
	}
}

func (h *HttpAPIHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	param := dto.AnalyzeParam{
		AssetClass:       dto.AssetClass(req.AssetClass),
		Symbol:           req.Symbol,
		Question:         req.Question,
		InvestmentAmount: req.InvestmentAmount,
	}

	result, err := h.service.AnalysisService.Analyze(c.Request().Context(), param)
	if err != nil {
		code := statusForError(err)
		return c.JSON(code, dto.NewBaseResponse(code, err.Error(), nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("analysis completed", result))
}

func (h *HttpAPIHandler) History(c echo.Context) error {
	records := h.service.AnalysisService.RecentHistory()
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("analysis history", records))
}
