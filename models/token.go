package models

import (
	"encoding/json"
	"fmt"
)

// TokenResponse is the result of tokenizing a card or bank account. The
// token is single-use and expires gateway-side if not attached to a
// customer or payment in time.
type TokenResponse struct {
	Token         string
	PaymentMethod string
}

func TokenResponseFromWire(body []byte) (*TokenResponse, error) {
	var wire struct {
		SingleUseTokenID string `json:"singleUseTokenId"`
		PaymentMethod    string `json:"paymentMethod"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}
	return &TokenResponse{
		Token:         wire.SingleUseTokenID,
		PaymentMethod: wire.PaymentMethod,
	}, nil
}
