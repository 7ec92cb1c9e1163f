package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/restapis/internal/models"
	"github.com/mmynk/restapis/internal/storage"
)

// Acks returned by the customer endpoints in place of the documents.
const (
	MsgCustomerAdded = "Customer added."
	MsgInvoiceAdded  = "Invoice added."
)

// CustomerStore is the storage CustomerService needs.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByUserName(ctx context.Context, userName string) (*models.Customer, error)
	AddInvoice(ctx context.Context, customerID string, invoice models.Invoice) error
}

// CustomerService manages customers and their embedded invoices.
type CustomerService struct {
	store CustomerStore
}

func NewCustomerService(store CustomerStore) *CustomerService {
	return &CustomerService{store: store}
}

// Create persists a new customer with no invoices.
func (s *CustomerService) Create(ctx context.Context, firstName, lastName, userName string) (*models.Customer, error) {
	customer := &models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		UserName:  userName,
		Invoices:  []models.Invoice{},
	}
	if err := validate(customer); err != nil {
		return nil, err
	}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	slog.Info("Customer created", "customer_id", customer.ID, "user_name", userName)
	return customer, nil
}

// AddInvoice appends an invoice to the first customer with the given user name.
//
// The append itself is atomic in the store; the lookup that precedes it is not,
// so a customer deleted in between surfaces as ErrCustomerNotFound.
func (s *CustomerService) AddInvoice(ctx context.Context, userName string, invoice models.Invoice) error {
	if err := validate(&invoice); err != nil {
		return err
	}

	customer, err := s.store.GetCustomerByUserName(ctx, userName)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}

	if err := s.store.AddInvoice(ctx, customer.ID, invoice); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	slog.Info("Invoice added", "customer_id", customer.ID, "line_items", len(invoice.LineItems))
	return nil
}

// ListInvoices returns the invoices of the first customer with the given user name.
func (s *CustomerService) ListInvoices(ctx context.Context, userName string) ([]models.Invoice, error) {
	customer, err := s.store.GetCustomerByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if customer.Invoices == nil {
		return []models.Invoice{}, nil
	}
	return customer.Invoices, nil
}
