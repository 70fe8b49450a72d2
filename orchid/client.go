package orchid

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/ipconfigure/go-orchid/httpclient"
	"github.com/ipconfigure/go-orchid/logger"
	"github.com/ipconfigure/go-orchid/security"
)

// All API endpoints hang off this prefix on the server.
const servicePrefix = "/service/"

// Client talks to a single Orchid Core VMS server.
//
// The only cross-call state is the active credential, which SetBearerToken
// and SetAuth replace in place. That swap is not synchronized with
// in-flight requests; callers needing concurrent access should serialize
// credential mutation or use one client per logical session.
type Client struct {
	http *httpclient.Client
}

type options struct {
	auth           *httpclient.AuthConfig
	username       string
	password       string
	connectTimeout time.Duration
	readTimeout    time.Duration
	tls            *security.TLSConfig
	log            *logger.Logger
	tracer         trace.Tracer
	httpClient     *httpclient.Client
}

// Option configures a Client at construction.
type Option func(*options)

// WithAuth sets the credential object for the client. Ignored when
// WithBasicAuth is also supplied.
func WithAuth(auth *httpclient.AuthConfig) Option {
	return func(o *options) { o.auth = auth }
}

// WithBasicAuth sets a username/password pair. When both this and WithAuth
// are supplied, the pair wins.
func WithBasicAuth(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithBearerToken sets an initial bearer credential. Equivalent to
// WithAuth(httpclient.BearerAuth(token)).
func WithBearerToken(token string) Option {
	return func(o *options) { o.auth = httpclient.BearerAuth(token) }
}

// WithTimeout broadcasts a single scalar to both the connect and read legs.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = d
		o.readTimeout = d
	}
}

// WithTimeouts sets the connect and read timeouts independently.
func WithTimeouts(connect, read time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = connect
		o.readTimeout = read
	}
}

// WithTLS sets TLS settings for the transport.
func WithTLS(tls *security.TLSConfig) Option {
	return func(o *options) { o.tls = tls }
}

// WithLogger enables debug logging of every dispatch.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithTracer opens a span around every dispatch.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithHTTPClient substitutes a pre-built dispatcher, overriding every other
// transport option.
func WithHTTPClient(c *httpclient.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// New creates a client for the Orchid Core VMS server at address
// (scheme://host[:port]). Without credential options, requests are issued
// unauthenticated.
func New(address string, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient != nil {
		return &Client{http: o.httpClient}, nil
	}

	var log *logger.Logger
	if o.log != nil {
		log = o.log.WithComponent("orchid")
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:        address,
		ConnectTimeout: o.connectTimeout,
		ReadTimeout:    o.readTimeout,
		Auth:           resolveAuth(o),
		TLS:            o.tls,
		Tracer:         o.tracer,
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// resolveAuth picks the active credential: a username/password pair beats a
// credential object; neither means unauthenticated.
func resolveAuth(o options) *httpclient.AuthConfig {
	if o.username != "" && o.password != "" {
		return httpclient.BasicAuth(o.username, o.password)
	}
	return o.auth
}

// SetBearerToken installs a bearer credential for subsequent requests,
// discarding the prior credential. This is the documented follow-up to
// CreateUserSession and CreateRemoteSession.
func (c *Client) SetBearerToken(token string) {
	c.http.SetBearerToken(token)
}

// SetAuth replaces the active credential.
func (c *Client) SetAuth(auth *httpclient.AuthConfig) {
	c.http.SetAuth(auth)
}

// Unwrap returns the underlying dispatcher.
func (c *Client) Unwrap() *httpclient.Client {
	return c.http
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.Close()
}

// request funnels every endpoint method through the dispatcher.
func (c *Client) request(ctx context.Context, method, path string, body any) (*Response, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: method,
		Path:   servicePrefix + strings.TrimLeft(path, "/"),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Response: resp}, nil
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, nil)
}

func (c *Client) put(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPut, path, body)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPatch, path, body)
}

func (c *Client) delete(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodDelete, path, nil)
}
