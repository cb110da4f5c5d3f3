package models

import (
	"encoding/json"
	"net/url"
)

// setWire adds key=value to the outbound form, omitting unset values.
// The gateway distinguishes an absent field from an empty one, so optional
// fields that were never populated must not be sent at all.
func setWire(v url.Values, key, value string) {
	if value == "" {
		return
	}
	v.Set(key, value)
}

// boolWire serializes booleans to the literal strings the gateway expects.
func boolWire(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// flexString accepts either a JSON string or a JSON number. The gateway
// returns generated identifiers (customer numbers, transaction ids) as
// numbers but echoes caller-assigned ones as strings.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())
	return nil
}
