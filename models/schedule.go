package models

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Schedule is a customer's regular payment schedule. NextPaymentDate uses
// the gateway's "02 Jan 2006" date format.
type Schedule struct {
	Frequency              string
	NextPaymentDate        string
	RegularPrincipalAmount string
}

func (s *Schedule) ToWire() url.Values {
	v := url.Values{}
	setWire(v, "frequency", s.Frequency)
	setWire(v, "nextPaymentDate", s.NextPaymentDate)
	setWire(v, "regularPrincipalAmount", s.RegularPrincipalAmount)
	return v
}

type scheduleWire struct {
	Frequency              string     `json:"frequency"`
	NextPaymentDate        string     `json:"nextPaymentDate"`
	RegularPrincipalAmount flexString `json:"regularPrincipalAmount"`
}

func ScheduleFromWire(body []byte) (*Schedule, error) {
	var wire scheduleWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}
	return &Schedule{
		Frequency:              wire.Frequency,
		NextPaymentDate:        wire.NextPaymentDate,
		RegularPrincipalAmount: string(wire.RegularPrincipalAmount),
	}, nil
}
