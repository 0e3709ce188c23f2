package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/i18n"
	"aroma-storefront/internal/order"
	"aroma-storefront/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Storefront service.StorefrontServiceInterface
	Logger     *zap.Logger
}

func NewHandler(storefront service.StorefrontServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Storefront: storefront, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/languages", h.getLanguages).Methods("GET")

	r.HandleFunc("/api/sessions", h.startSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/language", h.setLanguage).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/order-type", h.setOrderType).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/category", h.selectCategory).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/items", h.getItems).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/items/{itemId}", h.getItem).Methods("GET")

	r.HandleFunc("/api/sessions/{id}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/cart/open", h.openCart).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/close", h.closeCart).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/items/{itemId}", h.addToCart).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/items/{itemId}", h.removeFromCart).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/staged/{itemId}", h.stageQuantity).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/staged/{itemId}/commit", h.commitStaged).Methods("POST")

	r.HandleFunc("/api/sessions/{id}/checkout", h.beginCheckout).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/checkout", h.cancelCheckout).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/customer", h.updateCustomer).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/orders", h.confirmOrder).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/orders", h.getOrders).Methods("GET")

	r.HandleFunc("/api/tables/{table}/qrcode", h.getTableQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, i18n.Languages())
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req service.StartRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Language == "" && r.Header.Get("Accept-Language") != "" {
		req.Language = string(i18n.Negotiate(r.Header.Get("Accept-Language")))
	}
	view, err := h.Storefront.StartSession(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.Session(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	view, err := h.Storefront.SetLanguage(r.Context(), mux.Vars(r)["id"], body.Language)
	h.respond(w, view, err)
}

func (h *Handler) setOrderType(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderType string `json:"orderType"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	view, err := h.Storefront.SetOrderType(r.Context(), mux.Vars(r)["id"], body.OrderType)
	h.respond(w, view, err)
}

func (h *Handler) selectCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	view, err := h.Storefront.SelectCategory(r.Context(), mux.Vars(r)["id"], body.Category)
	h.respond(w, view, err)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Storefront.Categories(r.Context(), mux.Vars(r)["id"])
	h.respond(w, categories, err)
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Storefront.CategoryItems(r.Context(), mux.Vars(r)["id"])
	h.respond(w, items, err)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}
	item, err := h.Storefront.Item(r.Context(), mux.Vars(r)["id"], itemID)
	h.respond(w, item, err)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.Cart(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.ClearCart(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.OpenCart(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) closeCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.CloseCart(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}
	view, err := h.Storefront.AddToCart(r.Context(), mux.Vars(r)["id"], itemID)
	h.respond(w, view, err)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}
	view, err := h.Storefront.RemoveFromCart(r.Context(), mux.Vars(r)["id"], itemID)
	h.respond(w, view, err)
}

func (h *Handler) stageQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}
	var body struct {
		Delta int `json:"delta"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	staged, err := h.Storefront.StageQuantity(r.Context(), mux.Vars(r)["id"], itemID, body.Delta)
	h.respond(w, map[string]int{"itemId": itemID, "staged": staged}, err)
}

func (h *Handler) commitStaged(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDVar(w, r)
	if !ok {
		return
	}
	view, err := h.Storefront.CommitStaged(r.Context(), mux.Vars(r)["id"], itemID)
	h.respond(w, view, err)
}

func (h *Handler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.BeginCheckout(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.Storefront.CancelCheckout(r.Context(), mux.Vars(r)["id"])
	h.respond(w, view, err)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var info domain.CustomerInfo
	if !decodeBody(w, r, &info) {
		return
	}
	view, err := h.Storefront.UpdateCustomer(r.Context(), mux.Vars(r)["id"], info)
	h.respond(w, view, err)
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.Storefront.ConfirmOrder(r.Context(), mux.Vars(r)["id"])
	var submitErr *order.SubmitError
	if errors.As(err, &submitErr) {
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":  err.Error(),
			"result": result,
		})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	records, err := h.Storefront.OrderHistory(r.Context(), mux.Vars(r)["id"])
	h.respond(w, records, err)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	table, err := strconv.Atoi(mux.Vars(r)["table"])
	if err != nil {
		http.Error(w, "Invalid table number", http.StatusBadRequest)
		return
	}
	png, err := h.Storefront.TableQRCode(table)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) respond(w http.ResponseWriter, v interface{}, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErr *order.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": validationErr.Message,
			"kind":  string(validationErr.Kind),
		})
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, service.ErrItemNotFound):
		http.Error(w, "Menu item not found", http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidTable),
		errors.Is(err, domain.ErrUnsupportedLanguage),
		errors.Is(err, domain.ErrInvalidOrderType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func itemIDVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return 0, false
	}
	return itemID, true
}
