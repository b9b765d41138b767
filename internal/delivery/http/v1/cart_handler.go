package v1

import (
	"net/http"
	"strconv"

	"shopfront/internal/domain"
	"shopfront/internal/usecase"
	"shopfront/pkg/utils"
)

type CartHandler struct {
	cartUC *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: uc}
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
	Total string            `json:"total"`
}

func newCartResponse(c *domain.Cart) cartResponse {
	return cartResponse{
		Items: c.Items(),
		Count: c.Count(),
		Total: c.TotalString(),
	}
}

type cartItemReq struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, newCartResponse(h.cartUC.Cart(sid)))
}

// POST /api/v1/cart adds one unit of productId.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req cartItemReq
	if err := utils.DecodeJSON(r, &req); err != nil || req.ProductID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	cart, err := h.cartUC.AddToCart(r.Context(), sid, req.ProductID)
	if err != nil {
		writeFetchError(w, r, err, "Failed to add product")
		return
	}
	utils.WriteJSON(w, http.StatusOK, newCartResponse(cart))
}

// PUT /api/v1/cart sets the quantity of a line.
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req cartItemReq
	if err := utils.DecodeJSON(r, &req); err != nil || req.ProductID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Quantity < 1 {
		utils.WriteError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	utils.WriteJSON(w, http.StatusOK, newCartResponse(h.cartUC.UpdateQuantity(sid, req.ProductID, req.Quantity)))
}

// DELETE /api/v1/cart/{productId}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	utils.WriteJSON(w, http.StatusOK, newCartResponse(h.cartUC.RemoveFromCart(sid, productID)))
}
