package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := extractDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessableEntity, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// extractDetail returns the "detail" field of a FastAPI-style error body when
// it is a string, and the trimmed raw body otherwise. Validation errors carry
// a list under "detail" and are kept verbatim.
func extractDetail(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return ""
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		return body
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return body
	}

	return detail
}
