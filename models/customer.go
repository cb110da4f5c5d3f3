package models

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Customer represents a customer stored in the gateway with its contact
// details and payment setup.
//
// CustomID is a caller-assigned key; when set, creation upserts via PUT
// instead of letting the gateway assign a CustomerNumber. Token is
// write-only: it is sent on create/update and never comes back in
// responses. CustomerNumber is gateway-assigned and read-only.
type Customer struct {
	CustomID          string
	CustomerName      string
	EmailAddress      string
	SendEmailReceipts bool
	PhoneNumber       string
	Street1           string
	Street2           string
	CityName          string
	State             string
	PostalCode        string
	Token             string
	CustomerNumber    string
	PaymentSetup      *PaymentSetup
	Notes             string

	// CustomFields carries the gateway's open custom fields
	// (customField1..customField4 and anything it adds later) by wire name.
	CustomFields map[string]string
}

func (c *Customer) ToWire() url.Values {
	v := url.Values{}
	setWire(v, "customerName", c.CustomerName)
	setWire(v, "emailAddress", c.EmailAddress)
	v.Set("sendEmailReceipts", boolWire(c.SendEmailReceipts))
	setWire(v, "phoneNumber", c.PhoneNumber)
	setWire(v, "street1", c.Street1)
	setWire(v, "street2", c.Street2)
	setWire(v, "cityName", c.CityName)
	setWire(v, "state", c.State)
	setWire(v, "postalCode", c.PostalCode)
	setWire(v, "notes", c.Notes)
	setWire(v, "singleUseTokenId", c.Token)
	for name, value := range c.CustomFields {
		setWire(v, name, value)
	}
	return v
}

type customerWire struct {
	CustomerNumber flexString `json:"customerNumber"`
	Contact        struct {
		CustomerName      string `json:"customerName"`
		EmailAddress      string `json:"emailAddress"`
		SendEmailReceipts bool   `json:"sendEmailReceipts"`
		PhoneNumber       string `json:"phoneNumber"`
		Address           struct {
			Street1    string `json:"street1"`
			Street2    string `json:"street2"`
			CityName   string `json:"cityName"`
			State      string `json:"state"`
			PostalCode string `json:"postalCode"`
		} `json:"address"`
	} `json:"contact"`
	PaymentSetup *paymentSetupWire `json:"paymentSetup"`
	CustomFields map[string]string `json:"customFields"`
	Notes        string            `json:"notes"`
}

// CustomerFromWire flattens the gateway's nested customer response
// (contact, address, paymentSetup, customFields) into a Customer.
func CustomerFromWire(body []byte) (*Customer, error) {
	var wire customerWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing customer: %w", err)
	}

	customer := &Customer{
		CustomerNumber:    string(wire.CustomerNumber),
		CustomerName:      wire.Contact.CustomerName,
		EmailAddress:      wire.Contact.EmailAddress,
		SendEmailReceipts: wire.Contact.SendEmailReceipts,
		PhoneNumber:       wire.Contact.PhoneNumber,
		Street1:           wire.Contact.Address.Street1,
		Street2:           wire.Contact.Address.Street2,
		CityName:          wire.Contact.Address.CityName,
		State:             wire.Contact.Address.State,
		PostalCode:        wire.Contact.Address.PostalCode,
		Notes:             wire.Notes,
	}

	if wire.PaymentSetup != nil {
		customer.PaymentSetup = wire.PaymentSetup.toModel()
	}
	if len(wire.CustomFields) > 0 {
		customer.CustomFields = wire.CustomFields
	}

	return customer, nil
}
