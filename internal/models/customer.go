package models

// LineItem is one line of an invoice.
type LineItem struct {
	Name     string  `json:"name" bson:"name" validate:"required"`
	Price    float64 `json:"price" bson:"price"`
	Quantity float64 `json:"quantity" bson:"quantity"`
}

// Invoice is an invoice embedded in a customer document.
type Invoice struct {
	Subtotal    float64    `json:"subtotal" bson:"subtotal"`
	Tax         float64    `json:"tax" bson:"tax"`
	DateCreated string     `json:"dateCreated" bson:"dateCreated" validate:"required"`
	DateShipped string     `json:"dateShipped" bson:"dateShipped" validate:"required"`
	LineItems   []LineItem `json:"lineItems" bson:"lineItems" validate:"required,dive"`
}

// Customer is a shopper document.
//
// UserName is the lookup key for invoice operations. It is not unique at the
// schema level; when duplicates exist the first match (in identifier order) wins.
type Customer struct {
	ID        string    `json:"_id" bson:"_id"`
	FirstName string    `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string    `json:"lastName" bson:"lastName" validate:"required"`
	UserName  string    `json:"userName" bson:"userName" validate:"required"`
	Invoices  []Invoice `json:"invoices" bson:"invoices" validate:"dive"`
}

// CustomerRequest is the body of POST /customers.
type CustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
}

// LineItemRequest is one line of an InvoiceRequest.
type LineItemRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Quantity *float64 `json:"quantity" validate:"required"`
}

// InvoiceRequest is the body of POST /customers/{username}/invoices.
type InvoiceRequest struct {
	Subtotal    *float64          `json:"subtotal" validate:"required"`
	Tax         *float64          `json:"tax" validate:"required"`
	DateCreated string            `json:"dateCreated" validate:"required"`
	DateShipped string            `json:"dateShipped" validate:"required"`
	LineItems   []LineItemRequest `json:"lineItems" validate:"required,dive"`
}

// Invoice converts a validated request into an invoice.
// Callers must validate first; nil numerics are read as zero.
func (r InvoiceRequest) Invoice() Invoice {
	items := make([]LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, LineItem{
			Name:     li.Name,
			Price:    deref(li.Price),
			Quantity: deref(li.Quantity),
		})
	}
	return Invoice{
		Subtotal:    deref(r.Subtotal),
		Tax:         deref(r.Tax),
		DateCreated: r.DateCreated,
		DateShipped: r.DateShipped,
		LineItems:   items,
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
