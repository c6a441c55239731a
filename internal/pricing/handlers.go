package pricing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/cart"
	"github.com/noah-isme/backend-pricing/internal/catalog"
	"github.com/noah-isme/backend-pricing/internal/common"
	"github.com/noah-isme/backend-pricing/internal/delivery"
	"github.com/noah-isme/backend-pricing/internal/geo"
	"github.com/noah-isme/backend-pricing/internal/obs"
	"github.com/noah-isme/backend-pricing/internal/packaging"
)

// Handler wires the pricing computers to HTTP.
type Handler struct {
	Catalog  *catalog.Service
	Origin   *geo.Point
	validate *validator.Validate
}

// NewHandler constructs a Handler with request validation ready.
func NewHandler(cat *catalog.Service, origin *geo.Point) *Handler {
	return &Handler{
		Catalog:  cat,
		Origin:   origin,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type packagingPayload struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Shared bool            `json:"shared"`
}

type quoteItemPayload struct {
	ProductID string            `json:"productId" validate:"required"`
	Title     string            `json:"title"`
	UnitPrice decimal.Decimal   `json:"unitPrice"`
	Qty       int               `json:"qty" validate:"gte=0"`
	Packaging *packagingPayload `json:"packaging"`
}

type pointPayload struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type quoteRequest struct {
	Items             []quoteItemPayload `json:"items" validate:"dive"`
	DeliveryMethodID  string             `json:"deliveryMethodId"`
	AreaName          string             `json:"areaName"`
	Destination       *pointPayload      `json:"destination"`
	TaxRatePercent    *float64           `json:"taxRatePercent" validate:"omitempty,gte=0"`
	DeliveryContactID string             `json:"deliveryContactId"`
	BillingContactID  string             `json:"billingContactId"`
	CheckSubmission   bool               `json:"checkSubmission"`
}

// Quote prices a cart preview. It never fails on missing delivery data; the
// optional submission check reports what would block order creation.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid quote request", validationDetails(err))
		return
	}

	var method *delivery.Method
	if req.DeliveryMethodID != "" {
		m, err := h.Catalog.DeliveryMethod(r.Context(), req.DeliveryMethodID)
		if err != nil {
			common.WriteError(w, catalogError(err, "delivery method"))
			return
		}
		method = &m
	}

	rate, err := h.taxRate(r, req.TaxRatePercent)
	if err != nil {
		common.WriteError(w, catalogError(err, "tax rate"))
		return
	}

	state := NewState(h.Origin, rate)
	for _, it := range req.Items {
		state = Apply(state, AddItem{Item: toItem(it)})
	}
	state = Apply(state, SelectDelivery{Method: method, AreaName: req.AreaName})
	if req.Destination != nil {
		state = Apply(state, SetDestination{Point: &geo.Point{Lat: req.Destination.Lat, Lng: req.Destination.Lng}})
	}

	pricingType := ""
	if method != nil {
		pricingType = string(method.Pricing)
	}
	obs.ObserveQuote(pricingType)

	data := map[string]any{
		"pricing": state.Result,
		"items":   state.Items,
		"distanceKm": delivery.DistanceKm(delivery.Selection{
			Origin:      state.Origin,
			Destination: state.Destination,
		}),
	}
	if req.CheckSubmission {
		data["submissionIssues"] = submissionIssues(req, method)
	}
	common.JSONData(w, http.StatusOK, data)
}

type invoiceItemPayload struct {
	ProductID string          `json:"productId"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Qty       int             `json:"qty" validate:"gte=0"`
}

type invoiceRequest struct {
	Items           []invoiceItemPayload `json:"items" validate:"required,dive"`
	DiscountPercent float64              `json:"discountPercent" validate:"gte=0,lte=100"`
	TaxRatePercent  *float64             `json:"taxRatePercent" validate:"omitempty,gte=0"`
}

// Reconcile recomputes the authoritative totals for an already-created order
// being edited by staff.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid reconcile request", validationDetails(err))
		return
	}

	rate, err := h.taxRate(r, req.TaxRatePercent)
	if err != nil {
		common.WriteError(w, catalogError(err, "tax rate"))
		return
	}

	items := make([]cart.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, cart.Item{
			ProductID: it.ProductID,
			UnitPrice: it.SalePrice,
			Qty:       it.Qty,
		})
	}
	res := ReconcileInvoice(InvoiceInput{
		Items:           items,
		TaxRatePercent:  rate,
		DiscountPercent: decimal.NewFromFloat(req.DiscountPercent),
	})
	obs.ObserveInvoiceReconcile()

	common.JSONData(w, http.StatusOK, map[string]any{"pricing": res})
}

// DeliveryMethods lists the delivery-method catalog.
func (h *Handler) DeliveryMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.Catalog.DeliveryMethods(r.Context())
	if err != nil {
		common.WriteError(w, catalogError(err, "delivery methods"))
		return
	}
	common.JSONData(w, http.StatusOK, methods)
}

// RefreshCatalog drops the cached catalog entries so staff edits show up
// without waiting for the TTL.
func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Invalidate(r.Context()); err != nil {
		common.WriteError(w, common.NewAppError("INTERNAL", "unable to refresh catalog", http.StatusInternalServerError, err))
		return
	}
	obs.ObserveCatalogRefresh()
	common.JSONData(w, http.StatusOK, map[string]any{"refreshed": true})
}

func catalogError(err error, what string) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return common.NewAppError("NOT_FOUND", what+" not found", http.StatusNotFound, err)
	}
	return common.NewAppError("INTERNAL", "unable to load "+what, http.StatusInternalServerError, err)
}

func (h *Handler) taxRate(r *http.Request, override *float64) (decimal.Decimal, error) {
	if override != nil {
		return decimal.NewFromFloat(*override), nil
	}
	return h.Catalog.TaxRatePercent(r.Context())
}

func toItem(p quoteItemPayload) cart.Item {
	item := cart.Item{
		ProductID: p.ProductID,
		Title:     p.Title,
		UnitPrice: p.UnitPrice,
		Qty:       p.Qty,
	}
	if p.Packaging != nil {
		item.Packaging = &packaging.Cost{ID: p.Packaging.ID, Amount: p.Packaging.Amount, Shared: p.Packaging.Shared}
	}
	return item
}

// submissionIssues lists the preconditions the caller must satisfy before
// creating the order. The computation itself already succeeded.
func submissionIssues(req quoteRequest, method *delivery.Method) []string {
	issues := make([]string, 0, 4)
	if method == nil {
		issues = append(issues, "DELIVERY_METHOD_REQUIRED")
	} else if method.Pricing == delivery.PricingSelectedArea && len(method.Areas) > 0 && strings.TrimSpace(req.AreaName) == "" {
		issues = append(issues, "DELIVERY_AREA_REQUIRED")
	}
	if strings.TrimSpace(req.DeliveryContactID) == "" {
		issues = append(issues, "DELIVERY_CONTACT_REQUIRED")
	}
	if strings.TrimSpace(req.BillingContactID) == "" {
		issues = append(issues, "BILLING_CONTACT_REQUIRED")
	}
	return issues
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, map[string]string{
			"field": fe.Namespace(),
			"rule":  fe.Tag(),
		})
	}
	return details
}
