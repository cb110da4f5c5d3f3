package payway

import (
	"context"

	"github.com/alovak/payway/models"
	"golang.org/x/exp/slog"
)

// CreateCustomer stores a customer in the gateway.
//
// With no CustomID set, it POSTs to /customers and the gateway assigns the
// customer number. With a CustomID, it PUTs to /customers/{customId} so the
// caller's own key is used; the PUT upserts. The configured merchant and
// bank account ids are merged into the request.
//
// Exactly one of the customer and the field error list is returned when err
// is nil.
func (c *Client) CreateCustomer(ctx context.Context, customer *models.Customer, idempotencyKey string) (*models.Customer, FieldErrors, error) {
	data := customer.ToWire()
	data.Set("merchantId", c.config.MerchantID)
	data.Set("bankAccountId", c.config.BankAccountID)

	c.logger.Info("sending create customer request")

	var resp *response
	var err error
	if customer.CustomID != "" {
		resp, err = c.putRequest(ctx, customersPath+"/"+customer.CustomID, data)
	} else {
		resp, err = c.postRequest(ctx, customersPath, data, c.config.SecretAPIKey, idempotencyKey)
	}
	if err != nil {
		return nil, nil, err
	}

	fieldErrors, err := validateResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	created, err := models.CustomerFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("customer created", slog.String("customerNumber", created.CustomerNumber))

	return created, nil, nil
}

// GetCustomer returns a customer's payment setup, contact details, custom
// fields and notes.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*models.Customer, FieldErrors, error) {
	resp, err := c.getRequest(ctx, customersPath+"/"+customerID)
	if err != nil {
		return nil, nil, err
	}

	fieldErrors, err := validateResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	customer, err := models.CustomerFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return customer, nil, nil
}
