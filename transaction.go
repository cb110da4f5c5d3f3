package payway

import (
	"context"
	"net/url"

	"github.com/alovak/payway/models"
	"golang.org/x/exp/slog"
)

// GetTransaction looks up a transaction by its gateway-assigned id.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, FieldErrors, error) {
	resp, err := c.getRequest(ctx, transactionsPath+"/"+transactionID)
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

	transaction, err := models.TransactionFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return transaction, nil, nil
}

// VoidTransaction voids a transaction that has not yet settled.
func (c *Client) VoidTransaction(ctx context.Context, transactionID, idempotencyKey string) (*models.Transaction, FieldErrors, error) {
	c.logger.Info("sending void transaction request", slog.String("transactionId", transactionID))

	resp, err := c.postRequest(ctx, transactionsPath+"/"+transactionID+"/void", url.Values{}, c.config.SecretAPIKey, idempotencyKey)
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

	transaction, err := models.TransactionFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return transaction, nil, nil
}

// RefundTransaction refunds amount against a settled parent transaction.
// orderNumber and ipAddress are optional pass-through references; leave
// them empty to omit them from the request.
func (c *Client) RefundTransaction(ctx context.Context, transactionID, amount, orderNumber, ipAddress, idempotencyKey string) (*models.Transaction, FieldErrors, error) {
	data := url.Values{}
	data.Set("transactionType", TransactionTypeRefund)
	data.Set("parentTransactionId", transactionID)
	data.Set("principalAmount", amount)
	if orderNumber != "" {
		data.Set("orderNumber", orderNumber)
	}
	if ipAddress != "" {
		data.Set("customerIpAddress", ipAddress)
	}

	c.logger.Info("sending refund transaction request", slog.String("transactionId", transactionID))

	resp, err := c.postRequest(ctx, transactionsPath, data, c.config.SecretAPIKey, idempotencyKey)
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

	transaction, err := models.TransactionFromWire(resp.body)
	if err != nil {
		return nil, nil, err
	}

	return transaction, nil, nil
}
