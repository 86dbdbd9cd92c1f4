package httpapi

import (
	"net/http"
	"strconv"
	"supplements-backend/internal/components/assert"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/services/supplements"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	report_handler_encode   = "handler.encode"
	report_handler_internal = "handler.internal"
)

type addToCartRequest struct {
	SupplementID string `json:"supplementId" validate:"required"`
	StoreInfoID  string `json:"storeInfoId" validate:"required"`
	Quantity     int    `json:"quantity" validate:"min=1"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type checkoutRequest struct {
	CartItemIDs []string `json:"cartItemIds" validate:"omitempty,dive,required"`
}

type addLookupOptionRequest struct {
	Name string `json:"name" validate:"required"`
}

type cartResponse struct {
	Items []supplements.CartItem `json:"items"`
	Total float64                `json:"total"`
}

type totalResponse struct {
	Total float64 `json:"total"`
}

type priceResponse struct {
	Price float64 `json:"price"`
}

type orderResponse struct {
	supplements.Order
	Total float64 `json:"total"`
}

func newOrderResponse(order supplements.Order) orderResponse {
	return orderResponse{Order: order, Total: order.Total()}
}

// Handler exposes a supplements.Service as a json api.
type Handler struct {
	svc      supplements.Service
	tel      telemetry.API
	validate *validator.Validate
}

func NewHandler(svc supplements.Service, tel telemetry.API) Handler {
	assert.NotNil(tel, "telemetry api")
	return Handler{
		svc:      svc,
		tel:      telemetry.NewScopedAPI("httpapi", tel),
		validate: validator.New(),
	}
}

// Router returns the routes of the api along with /metrics.
func (h Handler) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	h.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())
	return router
}

func (h Handler) RegisterRoutes(router chi.Router) {
	router.Get("/supplements", h.handleListSupplements)
	router.Post("/supplements", h.handleCreateSupplement)
	router.Get("/supplements/{id}", h.handleGetSupplement)
	router.Patch("/supplements/{id}", h.handleUpdateSupplement)
	router.Delete("/supplements/{id}", h.handleDeleteSupplement)
	router.Post("/supplements/{id}/stores", h.handleAddStoreInfo)

	router.Get("/stores/{id}", h.handleGetStoreInfo)
	router.Patch("/stores/{id}", h.handleUpdateStoreInfo)
	router.Delete("/stores/{id}", h.handleDeleteStoreInfo)
	router.Post("/stores/{id}/refresh", h.handleRefreshStoreInfo)

	router.Get("/search", h.handleSearch)
	router.Get("/categories", h.handleListCategories)

	router.Get("/cart", h.handleListCart)
	router.Delete("/cart", h.handleClearCart)
	router.Get("/cart/total", h.handleCartTotal)
	router.Post("/cart/items", h.handleAddToCart)
	router.Put("/cart/items/{id}", h.handleSetQuantity)
	router.Delete("/cart/items/{id}", h.handleRemoveFromCart)

	router.Post("/checkout", h.handleCheckout)
	router.Get("/orders", h.handleListOrders)
	router.Get("/orders/{id}", h.handleGetOrder)
	router.Delete("/orders/{id}", h.handleDeleteOrder)

	router.Post("/refresh", h.handleRefreshAll)
	router.Get("/snapshot", h.handleExportSnapshot)
	router.Put("/snapshot", h.handleImportSnapshot)

	router.Get("/lookups/{kind}", h.handleListLookupOptions)
	router.Post("/lookups/{kind}", h.handleAddLookupOption)
	router.Delete("/lookups/{kind}/{name}", h.handleDeleteLookupOption)
}

func (h Handler) handleListSupplements(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.ListSupplements(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, catalog)
}

func (h Handler) handleCreateSupplement(w http.ResponseWriter, r *http.Request) {
	var req supplements.CreateSupplementRequest
	if err := h.decode(r, &req, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	created, err := h.svc.CreateSupplement(r.Context(), req)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, created)
}

func (h Handler) handleGetSupplement(w http.ResponseWriter, r *http.Request) {
	supplement, err := h.svc.GetSupplement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, supplement)
}

func (h Handler) handleUpdateSupplement(w http.ResponseWriter, r *http.Request) {
	var patch supplements.SupplementPatch
	if err := h.decode(r, &patch, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	updated, err := h.svc.UpdateSupplement(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, updated)
}

func (h Handler) handleDeleteSupplement(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteSupplement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleAddStoreInfo(w http.ResponseWriter, r *http.Request) {
	var req supplements.AddStoreInfoRequest
	if err := h.decode(r, &req, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	store, err := h.svc.AddStoreInfo(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, store)
}

func (h Handler) handleGetStoreInfo(w http.ResponseWriter, r *http.Request) {
	store, err := h.svc.GetStoreInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, store)
}

func (h Handler) handleUpdateStoreInfo(w http.ResponseWriter, r *http.Request) {
	var patch supplements.StoreInfoPatch
	if err := h.decode(r, &patch, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	store, err := h.svc.UpdateStoreInfo(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, store)
}

func (h Handler) handleDeleteStoreInfo(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteStoreInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleRefreshStoreInfo(w http.ResponseWriter, r *http.Request) {
	price, err := h.svc.RefreshPrice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		// a store that could not be scraped is not a server error
		if statusOf(err) == http.StatusInternalServerError && !isPersistence(err) {
			h.respondWithJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, priceResponse{Price: price})
}

func (h Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			h.respondWithBadRequest(w, err)
			return
		}
	}
	results, err := h.svc.SearchSupplements(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, results)
}

func (h Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, categories)
}

func (h Handler) handleListCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListCart(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	res := cartResponse{
		Items: items,
		Total: supplements.TotalOf(items),
	}
	h.respondWithJSON(w, http.StatusOK, res)
}

func (h Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	err := h.svc.ClearCart(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleCartTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalPrice(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, totalResponse{Total: total})
}

func (h Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := h.decode(r, &req, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	item, err := h.svc.AddToCart(r.Context(), req.SupplementID, req.StoreInfoID, req.Quantity)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, item)
}

func (h Handler) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := h.decode(r, &req, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	err := h.svc.SetQuantity(r.Context(), chi.URLParam(r, "id"), *req.Quantity)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := h.decode(r, &req, true); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	order, err := h.svc.Checkout(r.Context(), req.CartItemIDs...)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, newOrderResponse(order))
}

func (h Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	res := make([]orderResponse, len(orders))
	for i, order := range orders {
		res[i] = newOrderResponse(order)
	}
	h.respondWithJSON(w, http.StatusOK, res)
}

func (h Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, newOrderResponse(order))
}

func (h Handler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleRefreshAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.RefreshAllPrices(r.Context())
	if err != nil && !report.Cancelled {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, report)
}

func (h Handler) handleExportSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.ExportSnapshot(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, snapshot)
}

func (h Handler) handleImportSnapshot(w http.ResponseWriter, r *http.Request) {
	var snapshot supplements.Snapshot
	if err := h.decode(r, &snapshot, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	err := h.svc.ImportSnapshot(r.Context(), snapshot)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleListLookupOptions(w http.ResponseWriter, r *http.Request) {
	kind, err := supplements.ParseLookupKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	options, err := h.svc.ListLookupOptions(r.Context(), kind)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, options)
}

func (h Handler) handleAddLookupOption(w http.ResponseWriter, r *http.Request) {
	kind, err := supplements.ParseLookupKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	var req addLookupOptionRequest
	if err := h.decode(r, &req, false); err != nil {
		h.respondWithBadRequest(w, err)
		return
	}
	err = h.svc.AddLookupOption(r.Context(), kind, req.Name)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) handleDeleteLookupOption(w http.ResponseWriter, r *http.Request) {
	kind, err := supplements.ParseLookupKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	err = h.svc.DeleteLookupOption(r.Context(), kind, chi.URLParam(r, "name"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
