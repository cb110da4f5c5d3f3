package payway

import (
	"context"

	"github.com/alovak/payway/models"
)

// ListMerchants returns the merchant facilities visible to the secret key.
func (c *Client) ListMerchants(ctx context.Context) ([]models.Merchant, FieldErrors, error) {
	resp, err := c.getRequest(ctx, merchantsPath)
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

	merchants, err := models.MerchantsFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return merchants, nil, nil
}

// ListBankAccounts returns the merchant's own settlement bank accounts.
func (c *Client) ListBankAccounts(ctx context.Context) ([]models.SettlementAccount, FieldErrors, error) {
	resp, err := c.getRequest(ctx, bankAccountsPath)
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

	accounts, err := models.SettlementAccountsFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return accounts, nil, nil
}
