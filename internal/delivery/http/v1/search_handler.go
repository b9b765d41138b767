package v1

import (
	"net/http"

	"shopfront/internal/domain"
	"shopfront/internal/usecase"
	"shopfront/pkg/utils"
)

type SearchHandler struct {
	searchUC *usecase.SearchUsecase
}

func NewSearchHandler(searchUC *usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
	}
}

// GET /api/v1/search?q=&page=&limit=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 0)

	products, pagination, err := h.searchUC.Search(r.Context(), query, page, limit)
	if err != nil {
		writeFetchError(w, r, err, "Search failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    products,
		Meta:    &pagination,
	})
}
