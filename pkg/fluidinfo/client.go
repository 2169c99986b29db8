package fluidinfo

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// There are two Fluidinfo instances. MainInstance is the default;
// SandboxInstance is a scratch instance for testing whose data is wiped
// from time to time.
const (
	MainInstance    = "https://fluiddb.fluidinfo.com"
	SandboxInstance = "https://sandbox.fluidinfo.com"
)

// Client is a Fluidinfo session: an instance URL, an optional credential
// and the transport used to reach the instance. A Client is safe for
// concurrent use; Login and Logout racing with in-flight calls are
// last-writer-wins.
type Client struct {
	mu        sync.RWMutex
	instance  string
	auth      string
	userAgent string
	transport Transport
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithInstance sets the base instance URL.
func WithInstance(instance string) Option {
	return func(c *Client) {
		c.instance = strings.TrimSuffix(instance, "/")
	}
}

// WithTransport sets the transport used for every call.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithHTTPClient uses the default resty transport on top of httpClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport = NewRestyTransport(httpClient)
	}
}

// WithCredentials logs the client in at construction time.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.auth = basicAuth(username, password)
	}
}

// WithUserAgent sets the User-Agent header sent with every call.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Fluidinfo client for MainInstance.
func New(opts ...Option) *Client {
	c := &Client{
		instance: MainInstance,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewRestyTransport(nil)
	}
	return c
}

// Login stores a Basic credential for username and password. No request
// is made; a wrong password only shows up as a 401 on the next call.
func (c *Client) Login(username, password string) {
	auth := basicAuth(username, password)
	c.mu.Lock()
	c.auth = auth
	c.mu.Unlock()
}

// Logout drops the stored credential. Calling it when logged out is a no-op.
func (c *Client) Logout() {
	c.mu.Lock()
	c.auth = ""
	c.mu.Unlock()
}

// LoggedIn reports whether a credential is stored.
func (c *Client) LoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.auth != ""
}

// Instance returns the base instance URL.
func (c *Client) Instance() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.instance
}

// SetInstance switches the base instance URL for subsequent calls.
func (c *Client) SetInstance(instance string) {
	c.mu.Lock()
	c.instance = strings.TrimSuffix(instance, "/")
	c.mu.Unlock()
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// Request describes one call to the API.
type Request struct {
	Method string
	Path   Path
	// Body is encoded according to its Kind; see Classify.
	Body any
	// Mime, when set, is sent as the Content-Type of a non-structured body.
	Mime string
	// Query parameters appended to the URL.
	Query url.Values
	// Tags are sent as repeated tag=<name> parameters on /values requests.
	Tags []string
	// Header entries override the session headers.
	Header http.Header
}

// CallOption adjusts a Request built by the verb helpers.
type CallOption func(*Request)

// WithBody sets the request body.
func WithBody(body any) CallOption {
	return func(r *Request) { r.Body = body }
}

// WithMime sets an explicit mime type for the body.
func WithMime(mime string) CallOption {
	return func(r *Request) { r.Mime = mime }
}

// WithQuery adds query parameters.
func WithQuery(query url.Values) CallOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(url.Values, len(query))
		}
		for k, values := range query {
			r.Query[k] = append(r.Query[k], values...)
		}
	}
}

// WithQueryParam sets a single query parameter.
func WithQueryParam(key, value string) CallOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(url.Values)
		}
		r.Query.Set(key, value)
	}
}

// WithTags lists the tags to return from a /values request.
func WithTags(tags ...string) CallOption {
	return func(r *Request) { r.Tags = append(r.Tags, tags...) }
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) CallOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set(key, value)
	}
}

// Get is a convenience wrapper for Call with GET.
func (c *Client) Get(ctx context.Context, path Path, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, opts)
}

// Post is a convenience wrapper for Call with POST.
func (c *Client) Post(ctx context.Context, path Path, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, opts)
}

// Put is a convenience wrapper for Call with PUT.
func (c *Client) Put(ctx context.Context, path Path, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, opts)
}

// Delete is a convenience wrapper for Call with DELETE.
func (c *Client) Delete(ctx context.Context, path Path, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, opts)
}

// Head is a convenience wrapper for Call with HEAD.
func (c *Client) Head(ctx context.Context, path Path, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodHead, path, opts)
}

func (c *Client) do(ctx context.Context, method string, path Path, opts []CallOption) (*Response, error) {
	req := &Request{Method: method, Path: path}
	for _, opt := range opts {
		opt(req)
	}
	return c.Call(ctx, req)
}

// Call encodes req, performs one HTTP exchange and decodes the reply.
// Errors are *EncodingError, *TransportError or *DecodingError; an HTTP
// error status is returned as a normal Response.
func (c *Client) Call(ctx context.Context, req *Request) (*Response, error) {
	method := strings.ToUpper(req.Method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead:
	default:
		return nil, &EncodingError{Method: req.Method, Path: req.Path.String(), Err: ErrUnsupportedMethod}
	}

	c.mu.RLock()
	instance, auth, userAgent := c.instance, c.auth, c.userAgent
	c.mu.RUnlock()

	body, err := encodeBody(method, req.Path, req.Body, req.Mime)
	if err != nil {
		return nil, &EncodingError{Method: method, Path: req.Path.String(), Err: err}
	}

	header := make(http.Header)
	header.Set("Accept", "*/*")
	if auth != "" {
		header.Set("Authorization", auth)
	}
	if userAgent != "" {
		header.Set("User-Agent", userAgent)
	}
	for k, values := range req.Header {
		header[http.CanonicalHeaderKey(k)] = append([]string(nil), values...)
	}
	if body.contentType != "" {
		header.Set("Content-Type", body.contentType)
	}

	rawURL := BuildURL(instance, req.Path, req.Query, req.Tags)
	start := time.Now()

	raw, err := c.transport.RoundTrip(ctx, &RawRequest{
		Method: method,
		URL:    rawURL,
		Header: header,
		Body:   body.payload,
	})
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", method),
			slog.String("path", req.Path.String()),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, &TransportError{Method: method, URL: rawURL, Err: err}
	}

	resp, err := decodeResponse(raw)
	if err != nil {
		slog.Debug("HTTP response could not be decoded",
			slog.String("method", method),
			slog.String("path", req.Path.String()),
			slog.Int("status", raw.StatusCode),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	slog.Debug("HTTP request completed",
		slog.String("method", method),
		slog.String("path", req.Path.String()),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return resp, nil
}
