package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/imovelhub/rent-billing/internal/domain"
	"github.com/imovelhub/rent-billing/internal/service"
	customError "github.com/imovelhub/rent-billing/pkg/errors"
	"github.com/imovelhub/rent-billing/pkg/response"
	"github.com/imovelhub/rent-billing/pkg/utils"
)

type BillingHandler struct {
	service   *service.BillingService
	validator *validator.Validate
}

func NewBillingHandler(service *service.BillingService) *BillingHandler {
	return &BillingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateCharge handles POST /api/v1/charges
func (h *BillingHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	charge, err := h.service.CreateCharge(r.Context(), &request)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, charge)
}

// ListCharges handles GET /api/v1/charges
func (h *BillingHandler) ListCharges(w http.ResponseWriter, r *http.Request) {
	charges, err := h.service.ListCharges(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, &domain.ChargeListResponse{
		Charges: charges,
		Total:   len(charges),
	})
}

// GetInvoice handles GET /api/v1/charges/{chargeId}/invoice?as_of=YYYY-MM-DD
// Without as_of the charge is valued as of today; passing it gives
// deterministic previews.
func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	chargeID := mux.Vars(r)["chargeId"]

	asOf, err := parseAsOf(r.URL.Query().Get("as_of"))
	if err != nil {
		response.BadRequest(w, "Invalid as_of (use YYYY-MM-DD)", err)
		return
	}

	invoice, err := h.service.GetInvoice(r.Context(), chargeID, asOf)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, &domain.InvoiceResponse{
		ChargeID: chargeID,
		AsOf:     asOf.Format(utils.DateLayout),
		Invoice:  invoice,
	})
}

// RecordPayment handles POST /api/v1/charges/{chargeId}/payment
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	chargeID := mux.Vars(r)["chargeId"]

	var request domain.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	paidAt, err := parseAsOf(request.PaidAt)
	if err != nil {
		response.BadRequest(w, "Invalid paid_at (use YYYY-MM-DD)", err)
		return
	}

	payment, invoice, err := h.service.RecordPayment(r.Context(), chargeID, request.Amount, paidAt)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, &domain.RecordPaymentResponse{
		Payment: payment,
		Invoice: invoice,
	})
}

func parseAsOf(q string) (time.Time, error) {
	if strings.TrimSpace(q) == "" {
		return time.Now().UTC(), nil
	}
	return utils.ParseDate(q)
}

func writeBusinessError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "Unexpected error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeChargeNotFound:
		response.NotFound(w, businessErr.Message)
	case customError.ErrCodeChargeAlreadyExists:
		response.Conflict(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeChargeAlreadyPaid, customError.ErrCodePaymentAmountMismatch:
		response.UnprocessableEntity(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeInvalidAmount, customError.ErrCodeInvalidRate, customError.ErrCodeInvalidDate:
		response.BadRequest(w, businessErr.Message, businessErr.Err)
	default:
		response.InternalServerError(w, businessErr.Message, businessErr.Err)
	}
}
