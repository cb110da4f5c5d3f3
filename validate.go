package payway

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fatalStatusCodes are transport/auth/protocol failures the caller cannot
// recover from within the call. 404 and 422 are deliberately absent: those
// carry documented per-field validation errors and come back as data.
var fatalStatusCodes = map[int]struct{}{
	400: {}, 401: {}, 403: {}, 405: {}, 406: {}, 407: {},
	409: {}, 410: {}, 415: {}, 429: {}, 501: {}, 503: {},
}

// validateResponse classifies a raw gateway response. Exactly one of the
// results is populated: a FieldErrors list for documented validation
// failures (HTTP 404/422), an error for fatal conditions, or neither on
// success, in which case the caller deserializes the body.
//
// A 500 with a parseable body still raises, even though its shape matches
// the recoverable errors. The gateway documents server errors as
// non-recoverable per call, so the asymmetry is kept.
func validateResponse(resp *response) (FieldErrors, error) {
	if _, fatal := fatalStatusCodes[resp.status]; fatal {
		return nil, newStatusError(resp.status, fmt.Sprintf("%d Client Error: %s for url: %s",
			resp.status, http.StatusText(resp.status), resp.url))
	}

	switch resp.status {
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		var wire struct {
			Data FieldErrors `json:"data"`
		}
		if err := json.Unmarshal(resp.body, &wire); err != nil {
			return nil, fmt.Errorf("parsing validation errors: %w", err)
		}
		return wire.Data, nil

	case http.StatusInternalServerError:
		var serverErr ServerError
		if err := json.Unmarshal(resp.body, &serverErr); err != nil {
			return nil, newStatusError(resp.status, "Internal server error")
		}
		return nil, newStatusError(resp.status, serverErr.ToMessage())
	}

	return nil, nil
}
