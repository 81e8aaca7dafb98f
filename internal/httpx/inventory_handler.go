package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pizzacraft/backend/internal/catalog"
	"github.com/pizzacraft/backend/internal/stock"
	"github.com/pizzacraft/backend/internal/users"
)

type InventoryHandler struct {
	Catalog  *catalog.Repo
	Stock    *stock.Service
	Sessions *users.Sessions
}

type adjustStockReq struct {
	Stock int `json:"stock"`
}

func (h *InventoryHandler) Register(r *chi.Mux) {
	r.Get("/inventory", h.listIngredients)
	r.Patch("/inventory/{id}", AdminOnly(h.Sessions, h.adjustStock))
}

func (h *InventoryHandler) listIngredients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	out, err := h.Catalog.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if out == nil {
		out = []catalog.Ingredient{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *InventoryHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req adjustStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ing, err := h.Stock.Adjust(ctx, id, req.Stock)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ing)
}
