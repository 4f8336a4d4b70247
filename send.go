package tbank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// apiResult is implemented by response envelopes that carry the gateway's
// Success flag and error triplet.
type apiResult interface {
	Successful() bool
	APIError() (code, message, details string)
}

// Send performs one authenticated exchange: marshal, attach bearer auth,
// send, classify the HTTP status before any parsing, then decode with exact
// path reporting. It never retries and never caches; every call is a fresh
// round trip and the only network I/O in the SDK happens here.
func Send[T any](ctx context.Context, c *Client, method, url string, body any) (*T, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, NewValidationError(fmt.Errorf("marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("build request: %v", err), Err: err}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.Debug("sending request", "method", method, "url", url)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			c.logger.Debug("request timed out", "url", url, "error", err)
			return nil, &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
		}
		c.logger.Debug("network error", "url", url, "error", err)
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	// The raw body is captured unconditionally: server and API errors keep
	// it verbatim, and decode failures report against it.
	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		if isTimeout(readErr) {
			return nil, &Error{Kind: KindTimeout, Message: "response read timed out", Err: readErr}
		}
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("read response body: %v", readErr), Err: readErr}
	}
	rawBody := string(raw)

	c.logger.Debug("response received", "url", url, "status", resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, &Error{Kind: KindUnauthorized, Message: "credential rejected"}
	case http.StatusForbidden:
		return nil, &Error{Kind: KindForbidden, Message: "access denied"}
	case http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Message: "endpoint not found"}
	case http.StatusTooManyRequests:
		return nil, &Error{Kind: KindRateLimited, Message: "rate limited"}
	}
	if resp.StatusCode >= 500 {
		return nil, &Error{Kind: KindServer, Message: fmt.Sprintf("server returned status %d", resp.StatusCode), Body: rawBody}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindAPI, Message: fmt.Sprintf("gateway returned status %d", resp.StatusCode), Body: rawBody}
	}

	value, decodeErr := decode[T](raw)
	if decodeErr != nil {
		c.logger.Debug("deserialization failed", "url", url, "path", decodeErr.Path, "error", decodeErr.Message)
		return nil, decodeErr
	}

	if res, ok := any(value).(apiResult); ok && !res.Successful() {
		code, message, details := res.APIError()
		c.logger.Debug("business rejection", "url", url, "error_code", code, "message", message)
		return nil, &Error{
			Kind:    KindAPI,
			Code:    code,
			Message: businessMessage(message, details),
			Body:    rawBody,
		}
	}

	return value, nil
}

func businessMessage(message, details string) string {
	switch {
	case message != "" && details != "":
		return message + ": " + details
	case message != "":
		return message
	case details != "":
		return details
	}
	return "gateway rejected the request"
}

// decode parses a 2xx body into the expected shape. On failure the error
// names the exact JSON path at which decoding stopped, the decoder's
// message, and the full raw body.
func decode[T any](raw []byte) (*T, *Error) {
	var v T
	err := json.Unmarshal(raw, &v)
	if err == nil {
		return &v, nil
	}

	path := "$"
	message := err.Error()

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			path = typeErr.Field
		}
		message = fmt.Sprintf("cannot decode JSON %s into %s (offset %d)", typeErr.Value, typeErr.Type, typeErr.Offset)
	case errors.As(err, &syntaxErr):
		path = fmt.Sprintf("$ (offset %d)", syntaxErr.Offset)
		message = syntaxErr.Error()
	}

	return nil, &Error{
		Kind:    KindDeserialize,
		Message: message,
		Path:    path,
		Body:    string(raw),
		Err:     err,
	}
}

// isTimeout distinguishes deadline expiry from other transport failures so
// a timeout is never conflated with, say, a refused connection.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
