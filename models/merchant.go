package models

import (
	"encoding/json"
	"fmt"
)

// Merchant is a merchant facility with its settlement accounts. Surcharge
// BSB and account number are only present when surcharges are settled
// separately.
type Merchant struct {
	MerchantID              string `json:"merchantId"`
	MerchantName            string `json:"merchantName"`
	SettlementBSB           string `json:"settlementBsb"`
	SettlementAccountNumber string `json:"settlementAccountNumber"`
	SurchargeBSB            string `json:"surchargeBsb"`
	SurchargeAccountNumber  string `json:"surchargeAccountNumber"`
}

// MerchantsFromWire parses the gateway's merchant listing, which wraps the
// merchants in a data array.
func MerchantsFromWire(body []byte) ([]Merchant, error) {
	var wire struct {
		Data []Merchant `json:"data"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing merchants: %w", err)
	}
	return wire.Data, nil
}
