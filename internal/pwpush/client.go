package pwpush

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/ppc-cli/ppc/internal/configs"
	logger "github.com/ppc-cli/ppc/internal/logging"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	headerUserEmail = "X-User-Email"
	headerUserToken = "X-User-Token"
	formContentType = "application/x-www-form-urlencoded"
)

// Client submits requests to a Password Pusher instance. It holds no
// per-instance state, so one Client may serve any number of instances.
type Client struct {
	httpClient *http.Client
	log        logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used to send requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the diagnostic sink. By default nothing is logged.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient returns a Client. The default HTTP client has its own transport
// with no keep-alive pooling shared with other clients and no overall
// timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{httpClient: cleanhttp.DefaultClient()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the creation endpoint for kind on inst.
func Endpoint(inst configs.Instance, kind Kind) string {
	return inst.BaseURL() + "/" + kind.Prefix() + ".json"
}

// PublishText pushes a text secret. Any HTTP response is a successful
// Outcome; only transport and response-read errors fail.
func (c *Client) PublishText(ctx context.Context, inst configs.Instance, push TextPush) Outcome {
	endpoint := Endpoint(inst, KindText)
	c.log.Debugf("publishing text push to %s", endpoint)
	c.log.Tracef("request fields: %s", strings.Join(TextFields(push), ", "))

	return c.post(ctx, inst, endpoint, BuildTextBody(push))
}

func (c *Client) post(ctx context.Context, inst configs.Instance, endpoint, body string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		c.log.Debugf("could not build request: %v", err)
		return Failed(err)
	}
	req.Header.Set("Content-Type", formContentType)

	if inst.Credentials != nil {
		c.log.Debugf("authenticating as %s", inst.Credentials.Email)
		req.Header.Set(headerUserEmail, inst.Credentials.Email)
		req.Header.Set(headerUserToken, inst.Credentials.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debugf("request failed: %v", err)
		return Failed(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Debugf("reading response body failed after status %d: %v", resp.StatusCode, err)
		return Failed(err)
	}

	c.log.Debugf("received status %d with %d byte body", resp.StatusCode, len(data))
	return Succeeded(resp.StatusCode, string(data))
}
