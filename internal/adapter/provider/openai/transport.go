package openai

import (
	"context"
	"net/http"
)

type statusKey struct{}

// withStatus makes the HTTP status of the next response readable through
// status once the chat model returns.
func withStatus(ctx context.Context, status *int) context.Context {
	return context.WithValue(ctx, statusKey{}, status)
}

// statusTransport records response codes for the retry decision, since the
// chat model surfaces failures as opaque errors.
type statusTransport struct {
	next http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if resp != nil {
		if status, ok := req.Context().Value(statusKey{}).(*int); ok {
			*status = resp.StatusCode
		}
	}
	return resp, err
}
