package model

// PriceDetails describes the single product offered for purchase.
type PriceDetails struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ProductName string `json:"productName"`
}

// PaymentCustomer carries the billing details required for a payment
// intent. Name and address line1 are mandatory for export transactions.
type PaymentCustomer struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address CustomerAddress `json:"address"`
}

// CustomerAddress is a postal address attached to a payment customer.
type CustomerAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CreatePaymentIntentRequest starts a card payment.
type CreatePaymentIntentRequest struct {
	Customer PaymentCustomer `json:"customer"`
}

// PaymentIntentResponse returns the client secret the frontend needs to
// confirm the payment.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
