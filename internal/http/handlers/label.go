package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorlabs/obrador-backend/internal/http/response"
	"github.com/obradorlabs/obrador-backend/internal/label"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/services"
)

type LabelHandler struct {
	log    *logger.Logger
	labels services.LabelService
}

func NewLabelHandler(log *logger.Logger, labels services.LabelService) *LabelHandler {
	return &LabelHandler{
		log:    log.With("handler", "LabelHandler"),
		labels: labels,
	}
}

type printRequest struct {
	label.Request
	LotID  uint   `json:"lot_id"`
	Device string `json:"device"`
}

func (h *LabelHandler) render(c *gin.Context, req printRequest) ([]byte, bool) {
	if req.LotID != 0 {
		doc, err := h.labels.RenderForLot(c.Request.Context(), req.LotID, req.Request)
		if err != nil {
			response.RespondError(c, http.StatusNotFound, "render_failed", err)
			return nil, false
		}
		return doc, true
	}
	return h.labels.Render(req.Request), true
}

// Preview returns the encoded printer document without sending it anywhere.
func (h *LabelHandler) Preview(c *gin.Context) {
	var req printRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	doc, ok := h.render(c, req)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

// Print encodes and sends the document to the printer sink.
func (h *LabelHandler) Print(c *gin.Context) {
	var req printRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	doc, ok := h.render(c, req)
	if !ok {
		return
	}
	if err := h.labels.Print(c.Request.Context(), doc, req.Device); err != nil {
		response.RespondError(c, http.StatusBadGateway, "print_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"printed": true, "bytes": len(doc)})
}
