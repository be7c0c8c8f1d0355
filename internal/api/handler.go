package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"agropulse/internal/domain/dto"
	"agropulse/internal/mockseries"
	"agropulse/internal/service"
)

// Handler provides HTTP handlers for the advisory endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and bodies
//   - Call the advisory service
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.AdvisoryService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.AdvisoryService): Advisory business logic dependency.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.AdvisoryService) *Handler {
	return &Handler{svc: svc}
}

// PostFarmerAdvice handles POST /api/farmer/advice requests.
//
// PostFarmerAdvice godoc
// @Summary      Get farming advice for a crop
// @Description  Returns agronomic advice from the completion API, or locally generated fallback advice when the upstream is unavailable
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AdviceRequest  true  "Advice request"
// @Success      200      {object}  dto.AdviceResponse     "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/farmer/advice [post]
func (h *Handler) PostFarmerAdvice(c *gin.Context) {
	var req dto.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body: crop is required", err))
		return
	}
	req.Crop = strings.ToLower(strings.TrimSpace(req.Crop))
	if req.Crop == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("crop is required", nil))
		return
	}

	advice, err := h.svc.FarmerAdvice(c.Request.Context(), service.AdviceQuery{
		Crop:     req.Crop,
		Location: strings.TrimSpace(req.Location),
		Season:   strings.TrimSpace(req.Season),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to generate advice", err))
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{
		Crop:        advice.Crop,
		Advice:      advice.Text,
		Source:      advice.Source,
		GeneratedAt: advice.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// PostBuyerTiming handles POST /api/buyer/timing requests.
//
// PostBuyerTiming godoc
// @Summary      Get purchase-timing advice for a crop
// @Description  Returns a buy-now-or-wait recommendation from the completion API, or fallback guidance when the upstream is unavailable
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        request  body      dto.TimingRequest  true  "Timing request"
// @Success      200      {object}  dto.AdviceResponse     "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/buyer/timing [post]
func (h *Handler) PostBuyerTiming(c *gin.Context) {
	var req dto.TimingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body: crop is required", err))
		return
	}
	req.Crop = strings.ToLower(strings.TrimSpace(req.Crop))
	if req.Crop == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("crop is required", nil))
		return
	}

	advice, err := h.svc.BuyerTiming(c.Request.Context(), service.TimingQuery{
		Crop:     req.Crop,
		Quantity: strings.TrimSpace(req.Quantity),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to generate timing advice", err))
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{
		Crop:        advice.Crop,
		Advice:      advice.Text,
		Source:      advice.Source,
		GeneratedAt: advice.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetMarketTrends handles GET /api/market/trends/:crop requests.
//
// GetMarketTrends godoc
// @Summary      Get price history and trend commentary for a crop
// @Description  Returns a synthesized daily price history over the requested number of days plus a trend commentary
// @Tags         market
// @Produce      json
// @Param        crop  path      string  true   "Crop name"  example(wheat)
// @Param        days  query     int     false  "History length in days (default 30, max 365)"  example(30)
// @Success      200   {object}  dto.TrendResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/market/trends/{crop} [get]
func (h *Handler) GetMarketTrends(c *gin.Context) {
	crop := strings.TrimSpace(c.Param("crop"))
	if crop == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("crop is required", nil))
		return
	}

	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	trend, err := h.svc.MarketTrends(c.Request.Context(), crop, days)
	if err != nil {
		h.writeServiceError(c, err, "failed to build market trends")
		return
	}

	c.JSON(http.StatusOK, dto.NewTrendResponse(trend))
}

// GetMarketOverview handles GET /api/market/overview requests.
//
// GetMarketOverview godoc
// @Summary      Get price trends for several crops at once
// @Description  Returns trends for the named crops (comma-separated), or for the whole catalog when none are named
// @Tags         market
// @Produce      json
// @Param        crops  query     string  false  "Comma-separated crop names"  example(wheat,rice)
// @Param        days   query     int     false  "History length in days (default 30, max 365)"  example(30)
// @Success      200    {object}  dto.OverviewResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/market/overview [get]
func (h *Handler) GetMarketOverview(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	var crops []string
	if raw := strings.TrimSpace(c.Query("crops")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if name := strings.TrimSpace(part); name != "" {
				crops = append(crops, name)
			}
		}
	}

	trends, err := h.svc.MarketOverview(c.Request.Context(), crops, days)
	if err != nil {
		h.writeServiceError(c, err, "failed to build market overview")
		return
	}

	resp := dto.OverviewResponse{Trends: make([]dto.TrendResponse, 0, len(trends))}
	for i := range trends {
		resp.Trends = append(resp.Trends, dto.NewTrendResponse(&trends[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// parseDays reads the optional "days" query parameter. Zero means "use
// the configured default" and is resolved by the service. On a malformed
// value it writes a 400 and reports ok=false.
func (h *Handler) parseDays(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("days"))
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("days must be a positive integer", err))
		return 0, false
	}
	return days, true
}

// writeServiceError maps service errors onto HTTP status codes: parameter
// violations become 400, everything else 500.
func (h *Handler) writeServiceError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrDaysOutOfRange),
		errors.Is(err, service.ErrTooManyCrops),
		errors.Is(err, mockseries.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msg, err))
	}
}
