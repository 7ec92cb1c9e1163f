package api

import (
	"net/http"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/service"
)

type CustomerHandler struct {
	responder
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService, strict bool) *CustomerHandler {
	return &CustomerHandler{responder: responder{strict: strict}, customers: customers}
}

// Create handles POST /customers and acknowledges instead of echoing the document.
//
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body models.CustomerRequest true "Customer's information"
// @Success 200 {object} models.MessageResponse "Customer added."
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := h.customers.Create(r.Context(), req.FirstName, req.LastName, req.UserName); err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, models.MessageResponse{Message: service.MsgCustomerAdded})
}

// CreateInvoice handles POST /customers/{username}/invoices
//
// @Summary Add an invoice to a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param username path string true "Customer user name"
// @Param invoice body models.InvoiceRequest true "Invoice"
// @Success 200 {object} models.MessageResponse "Invoice added."
// @Failure 401 {object} models.MessageResponse "Customer not found"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /customers/{username}/invoices [post]
func (h *CustomerHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.InvoiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.customers.AddInvoice(r.Context(), r.PathValue("username"), req.Invoice()); err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, models.MessageResponse{Message: service.MsgInvoiceAdded})
}

// ListInvoices handles GET /customers/{username}/invoices
//
// @Summary List a customer's invoices
// @Tags Customers
// @Produce json
// @Param username path string true "Customer user name"
// @Success 200 {array} models.Invoice
// @Failure 401 {object} models.MessageResponse "Customer not found"
// @Failure 500 {object} models.MessageResponse "Server Exception"
// @Failure 501 {object} models.MessageResponse "Database Exception"
// @Router /customers/{username}/invoices [get]
func (h *CustomerHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.customers.ListInvoices(r.Context(), r.PathValue("username"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, invoices)
}
