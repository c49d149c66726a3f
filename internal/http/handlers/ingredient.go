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

type IngredientHandler struct {
	log         *logger.Logger
	ingredients repos.IngredientRepo
}

func NewIngredientHandler(log *logger.Logger, ingredients repos.IngredientRepo) *IngredientHandler {
	return &IngredientHandler{
		log:         log.With("handler", "IngredientHandler"),
		ingredients: ingredients,
	}
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var body struct {
		Name      string `json:"name" binding:"required"`
		Allergens string `json:"allergens"`
		Supplier  string `json:"supplier"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	ing := &types.Ingredient{Name: body.Name, Allergens: body.Allergens, Supplier: body.Supplier}
	if _, err := h.ingredients.Create(dbctx.Context{Ctx: c.Request.Context()}, []*types.Ingredient{ing}); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "create_failed", err)
		return
	}
	response.RespondCreated(c, ing)
}

func (h *IngredientHandler) List(c *gin.Context) {
	rows, err := h.ingredients.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, rows)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	ing, err := h.ingredients.GetByID(dbctx.Context{Ctx: c.Request.Context()}, uint(id))
	if errors.Is(err, pkgerrors.ErrNotFound) {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	response.RespondOK(c, ing)
}
