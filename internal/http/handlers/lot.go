package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obradorlabs/obrador-backend/internal/http/response"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/services"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type LotHandler struct {
	log       *logger.Logger
	genealogy services.GenealogyService
}

func NewLotHandler(log *logger.Logger, genealogy services.GenealogyService) *LotHandler {
	return &LotHandler{
		log:       log.With("handler", "LotHandler"),
		genealogy: genealogy,
	}
}

func (h *LotHandler) Create(c *gin.Context) {
	var input services.CreateLotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	lot, err := h.genealogy.CreateLot(c.Request.Context(), input)
	var cerr *pkgerrors.CompositionError
	switch {
	case errors.As(err, &cerr):
		response.RespondError(c, http.StatusUnprocessableEntity, "bad_composition_entry", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_lot", err)
	case err != nil:
		response.RespondError(c, http.StatusInternalServerError, "create_failed", err)
	default:
		response.RespondCreated(c, lot)
	}
}

// List returns all lots newest first, narrowed to one elaboration when the
// elaboration_id query parameter is present.
func (h *LotHandler) List(c *gin.Context) {
	var (
		lots []*types.Lot
		err  error
	)
	if raw := c.Query("elaboration_id"); raw != "" {
		id, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_elaboration_id", perr)
			return
		}
		lots, err = h.genealogy.ListLotsByElaboration(c.Request.Context(), uint(id))
	} else {
		lots, err = h.genealogy.ListLots(c.Request.Context())
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, lots)
}

func (h *LotHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	lot, err := h.genealogy.GetLot(c.Request.Context(), uint(id))
	if errors.Is(err, pkgerrors.ErrNotFound) {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	response.RespondOK(c, lot)
}

func (h *LotHandler) Composition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	entries, err := h.genealogy.GetLotComposition(c.Request.Context(), uint(id))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "composition_failed", err)
		return
	}
	response.RespondOK(c, entries)
}

func (h *LotHandler) ListComposition(c *gin.Context) {
	entries, err := h.genealogy.ListComposition(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, entries)
}
