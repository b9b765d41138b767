package v1

import (
	"net/http"
	"strconv"

	"shopfront/internal/usecase"
	"shopfront/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GET /api/v1/products?q=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.ListProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeFetchError(w, r, err, "Failed to fetch products")
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// GET /api/v1/products/{id}
func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		writeFetchError(w, r, err, "Failed to fetch product")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}
