package models

import "net/url"

// Card holds raw credit card details for tokenization. It is transient by
// contract: it exists only for the duration of a single tokenize call and
// must never be logged or stored.
type Card struct {
	CardNumber      string
	CVN             string
	CardholderName  string
	ExpiryDateMonth string
	ExpiryDateYear  string
}

func (c *Card) ToWire() url.Values {
	v := url.Values{}
	setWire(v, "cardNumber", c.CardNumber)
	setWire(v, "cvn", c.CVN)
	setWire(v, "cardholderName", c.CardholderName)
	setWire(v, "expiryDateMonth", c.ExpiryDateMonth)
	setWire(v, "expiryDateYear", c.ExpiryDateYear)
	return v
}
