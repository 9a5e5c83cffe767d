// Package clients provides typed HTTP clients for service-to-service calls.
// Every service exposes the shared response envelope, so the clients decode
// it once and surface domain errors the same way local repositories do.
package clients

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klassifikator/backend/internal/domain/shared"
)

const defaultTimeout = 10 * time.Second

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newRestyClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
}

// decode unwraps the response envelope into dest. A 404 or an envelope
// NOT_FOUND code maps to shared.ErrNotFound so callers can branch on it.
func decode(resp *resty.Response, dest interface{}) error {
	if err := checkEnvelope(resp); err != nil {
		return err
	}
	if dest == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("malformed response from %s: %w", resp.Request.URL, err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("malformed payload from %s: %w", resp.Request.URL, err)
	}
	return nil
}

func checkEnvelope(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	var env envelope
	_ = json.Unmarshal(resp.Body(), &env)

	if resp.StatusCode() == http.StatusNotFound {
		return shared.ErrNotFound
	}
	if env.Error != nil {
		if env.Error.Code == "NOT_FOUND" {
			return shared.ErrNotFound
		}
		return shared.NewDomainError(env.Error.Code, env.Error.Message)
	}
	return fmt.Errorf("request to %s failed: status %d", resp.Request.URL, resp.StatusCode())
}
