package fluidinfo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// RawRequest is a fully encoded request handed to a Transport.
type RawRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// RawResponse is what a Transport returns: the status, headers and the
// complete body.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs exactly one HTTP exchange. Implementations must read
// the whole response body and release the connection before returning.
// An HTTP error status is not an error.
type Transport interface {
	RoundTrip(ctx context.Context, req *RawRequest) (*RawResponse, error)
}

// RestyTransport is the default Transport, backed by go-resty.
type RestyTransport struct {
	resty *resty.Client
}

// NewRestyTransport creates a transport on top of the given HTTP client.
// A nil client gets a fresh http.Client with no timeout. Retries stay
// disabled.
func NewRestyTransport(httpClient *http.Client) *RestyTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	r := resty.NewWithClient(httpClient).
		SetRetryCount(0).
		SetLogger(slogLogger{logger: slog.Default().With(slog.String("component", "resty"))})
	return &RestyTransport{resty: r}
}

// Resty exposes the underlying resty client for further configuration.
func (t *RestyTransport) Resty() *resty.Client {
	return t.resty
}

// RoundTrip implements Transport.
func (t *RestyTransport) RoundTrip(ctx context.Context, req *RawRequest) (*RawResponse, error) {
	r := t.resty.R().SetContext(ctx)
	for k, values := range req.Header {
		for _, v := range values {
			r.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}
	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// slogLogger routes resty's internal messages to slog.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l slogLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l slogLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
