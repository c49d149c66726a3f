package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obradorlabs/obrador-backend/internal/data/repos"
	"github.com/obradorlabs/obrador-backend/internal/http/response"
	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type ElaborationHandler struct {
	log          *logger.Logger
	elaborations repos.ElaborationRepo
}

func NewElaborationHandler(log *logger.Logger, elaborations repos.ElaborationRepo) *ElaborationHandler {
	return &ElaborationHandler{
		log:          log.With("handler", "ElaborationHandler"),
		elaborations: elaborations,
	}
}

func (h *ElaborationHandler) Create(c *gin.Context) {
	var body struct {
		Name         string `json:"name" binding:"required"`
		Type         int    `json:"type"`
		Ingredients  string `json:"ingredients"`
		Allergens    string `json:"allergens"`
		Conservation string `json:"conservation"`
		DaysValid    int    `json:"days_valid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	elab := &types.Elaboration{
		Name:         body.Name,
		Type:         types.ElaborationType(body.Type).Normalize(),
		Ingredients:  body.Ingredients,
		Allergens:    body.Allergens,
		Conservation: body.Conservation,
		DaysValid:    body.DaysValid,
	}
	if _, err := h.elaborations.Create(dbctx.Context{Ctx: c.Request.Context()}, []*types.Elaboration{elab}); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "create_failed", err)
		return
	}
	response.RespondCreated(c, elab)
}

func (h *ElaborationHandler) List(c *gin.Context) {
	rows, err := h.elaborations.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, rows)
}

func (h *ElaborationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	elab, err := h.elaborations.GetByID(dbctx.Context{Ctx: c.Request.Context()}, uint(id))
	if errors.Is(err, pkgerrors.ErrNotFound) {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	response.RespondOK(c, elab)
}

// Rename fails with 409 once the elaboration has lots, because issued
// traceability codes embed the elaboration identity.
func (h *ElaborationHandler) Rename(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	err = h.elaborations.UpdateName(dbctx.Context{Ctx: c.Request.Context()}, uint(id), body.Name)
	switch {
	case errors.Is(err, pkgerrors.ErrElaborationRenamed):
		response.RespondError(c, http.StatusConflict, "name_frozen", err)
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case err != nil:
		response.RespondError(c, http.StatusInternalServerError, "rename_failed", err)
	default:
		response.RespondOK(c, gin.H{"id": id, "name": body.Name})
	}
}
