package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"numlookup/internal/aggregate"
	"numlookup/internal/metrics"
	"numlookup/internal/validation"
)

// LookupHandler serves the aggregated phone number lookup.
type LookupHandler struct {
	agg *aggregate.Aggregator
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(agg *aggregate.Aggregator) *LookupHandler {
	return &LookupHandler{agg: agg}
}

// GetDetails handles GET /get_details?number=<phone>. Validation
// failures return 400; once validation passes the response is always
// 200, with upstream failures embedded in the document.
func (h *LookupHandler) GetDetails(c fiber.Ctx) error {
	number := c.Query("number")
	if number == "" {
		metrics.RecordLookup("missing_number")
		return jsonError(c, fiber.StatusBadRequest, "Mobile number is required")
	}
	if !validation.ValidateMobileNumber(number) {
		metrics.RecordLookup("invalid_number")
		return jsonError(c, fiber.StatusBadRequest, "Invalid mobile number format")
	}

	start := time.Now()
	doc := h.agg.Aggregate(c.Context(), number)
	slog.Info("lookup completed", "elapsed", time.Since(start))
	metrics.RecordLookup("ok")

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to encode response")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
