package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/customer"
	"github.com/stripe/stripe-go/v78/paymentintent"
	"github.com/stripe/stripe-go/v78/price"
	"github.com/stripe/stripe-go/v78/product"

	"github.com/tylerhq/tyler-go/internal/model"
)

var (
	ErrCustomerDetailsRequired = errors.New("customer name and address are required")
	ErrPaymentProvider         = errors.New("payment provider error")
)

// PaymentService wraps the Stripe SDK for the single-product checkout.
type PaymentService struct {
	priceID   string
	productID string
}

// NewPaymentService creates a PaymentService and sets the Stripe API key
// process-wide, the way the SDK expects.
func NewPaymentService(apiKey, priceID, productID string) *PaymentService {
	stripe.Key = apiKey
	return &PaymentService{priceID: priceID, productID: productID}
}

// PriceDetails fetches the amount, currency, and product name for the
// configured price.
func (s *PaymentService) PriceDetails(_ context.Context) (model.PriceDetails, error) {
	p, err := price.Get(s.priceID, nil)
	if err != nil {
		return model.PriceDetails{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	prod, err := product.Get(s.productID, nil)
	if err != nil {
		return model.PriceDetails{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	return model.PriceDetails{
		Amount:      p.UnitAmount,
		Currency:    string(p.Currency),
		ProductName: prod.Name,
	}, nil
}

// CreateIntent registers a Stripe customer with the submitted billing
// details and opens a payment intent for the configured price. Name and
// address are mandatory for export transactions.
func (s *PaymentService) CreateIntent(_ context.Context, req model.CreatePaymentIntentRequest) (model.PaymentIntentResponse, error) {
	if req.Customer.Name == "" || req.Customer.Address.Line1 == "" {
		return model.PaymentIntentResponse{}, ErrCustomerDetailsRequired
	}

	p, err := price.Get(s.priceID, nil)
	if err != nil {
		return model.PaymentIntentResponse{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	cus, err := customer.New(&stripe.CustomerParams{
		Name:  stripe.String(req.Customer.Name),
		Email: stripe.String(req.Customer.Email),
		Phone: stripe.String(req.Customer.Phone),
		Address: &stripe.AddressParams{
			Line1:      stripe.String(req.Customer.Address.Line1),
			Line2:      stripe.String(req.Customer.Address.Line2),
			City:       stripe.String(req.Customer.Address.City),
			State:      stripe.String(req.Customer.Address.State),
			PostalCode: stripe.String(req.Customer.Address.PostalCode),
			Country:    stripe.String(req.Customer.Address.Country),
		},
	})
	if err != nil {
		return model.PaymentIntentResponse{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	pi, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.UnitAmount),
		Currency: stripe.String(string(p.Currency)),
		Customer: stripe.String(cus.ID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	})
	if err != nil {
		return model.PaymentIntentResponse{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	return model.PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
