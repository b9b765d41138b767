package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"shopfront/internal/domain"
	"shopfront/internal/usecase"
	"shopfront/pkg/logger"
	"shopfront/pkg/utils"
)

const (
	productsError = "Error loading products!"
	productError  = "Error loading product!"
)

type layoutData struct {
	Title     string
	Search    string
	CartCount int
}

type productsPage struct {
	layoutData
	Products []domain.Product
	Next     string
	Error    string
}

type productPage struct {
	layoutData
	Product *domain.Product
	Error   string
}

type cartPage struct {
	layoutData
	Items []domain.CartItem
	Total string
}

// StorefrontHandler serves the product list, product detail and cart pages.
type StorefrontHandler struct {
	catalogUC *usecase.CatalogUsecase
	cartUC    *usecase.CartUsecase
	imageUC   *usecase.ImageUsecase
	pages     *Renderer
}

func NewStorefrontHandler(catalogUC *usecase.CatalogUsecase, cartUC *usecase.CartUsecase, imageUC *usecase.ImageUsecase) (*StorefrontHandler, error) {
	pages, err := NewRenderer("storefront")
	if err != nil {
		return nil, err
	}
	return &StorefrontHandler{catalogUC: catalogUC, cartUC: cartUC, imageUC: imageUC, pages: pages}, nil
}

// Register mounts the storefront pages on mux.
func (h *StorefrontHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Products)
	mux.HandleFunc("GET /product/{id}", h.Product)
	mux.HandleFunc("GET /cart", h.Cart)
	mux.HandleFunc("POST /cart/add", h.AddToCart)
	mux.HandleFunc("POST /cart/update", h.UpdateCart)
	mux.HandleFunc("POST /cart/remove", h.RemoveFromCart)
	mux.HandleFunc("GET /thumb/{id}", h.Thumbnail)
	mux.Handle("GET /static/", StaticHandler())
}

func (h *StorefrontHandler) layout(r *http.Request, title string) layoutData {
	data := layoutData{Title: title, Search: r.URL.Query().Get("q")}
	if sid, ok := domain.SessionIDFromContext(r.Context()); ok {
		data.CartCount = h.cartUC.Cart(sid).Count()
	}
	return data
}

// GET /?q=
func (h *StorefrontHandler) Products(w http.ResponseWriter, r *http.Request) {
	data := productsPage{layoutData: h.layout(r, ""), Next: r.URL.RequestURI()}

	products, err := h.catalogUC.ListProducts(r.Context(), data.Search)
	if err != nil {
		data.Error = productsError
		h.pages.Render(w, r, http.StatusBadGateway, "products", data)
		return
	}
	data.Products = products
	h.pages.Render(w, r, http.StatusOK, "products", data)
}

// GET /product/{id}
func (h *StorefrontHandler) Product(w http.ResponseWriter, r *http.Request) {
	data := productPage{layoutData: h.layout(r, "")}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		data.Error = productError
		h.pages.Render(w, r, http.StatusNotFound, "product", data)
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		data.Error = productError
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		h.pages.Render(w, r, status, "product", data)
		return
	}
	data.Product = product
	data.Title = product.Title
	h.pages.Render(w, r, http.StatusOK, "product", data)
}

// GET /cart
func (h *StorefrontHandler) Cart(w http.ResponseWriter, r *http.Request) {
	data := cartPage{layoutData: h.layout(r, "Cart")}
	if sid, ok := domain.SessionIDFromContext(r.Context()); ok {
		cart := h.cartUC.Cart(sid)
		data.Items = cart.Items()
		data.Total = cart.TotalString()
	} else {
		data.Total = "0.00"
	}
	h.pages.Render(w, r, http.StatusOK, "cart", data)
}

// POST /cart/add adds one unit and sends the browser back where it came from.
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sid, productID, ok := h.cartForm(w, r)
	if !ok {
		return
	}
	if _, err := h.cartUC.AddToCart(r.Context(), sid, productID); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Int("product_id", productID).Msg("Add to cart failed")
	}
	http.Redirect(w, r, returnPath(r, "/cart"), http.StatusSeeOther)
}

// POST /cart/update; quantities below 1 leave the line unchanged.
func (h *StorefrontHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	sid, productID, ok := h.cartForm(w, r)
	if !ok {
		return
	}
	if quantity, err := strconv.Atoi(r.PostFormValue("quantity")); err == nil {
		h.cartUC.UpdateQuantity(sid, productID, quantity)
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// POST /cart/remove
func (h *StorefrontHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sid, productID, ok := h.cartForm(w, r)
	if !ok {
		return
	}
	h.cartUC.RemoveFromCart(sid, productID)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// GET /thumb/{id}?w=
func (h *StorefrontHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	width := utils.ParseInt(r.URL.Query().Get("w"), usecase.DefaultThumbnailWidth)

	thumb, err := h.imageUC.Thumbnail(r.Context(), id, width)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", thumb.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(thumb.Data)
}

func (h *StorefrontHandler) cartForm(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	sid, ok := domain.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", 0, false
	}
	productID, err := strconv.Atoi(r.PostFormValue("productId"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return "", 0, false
	}
	return sid, productID, true
}

// returnPath picks the form's next field, then a same-host Referer, then fallback.
func returnPath(r *http.Request, fallback string) string {
	if next := utils.SafeRedirect(r.PostFormValue("next"), ""); next != "" {
		return next
	}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Host != "" && ref.Host == r.Host {
		return utils.SafeRedirect(ref.RequestURI(), fallback)
	}
	return fallback
}
