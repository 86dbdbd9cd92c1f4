package prices

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"supplements-backend/internal/components/assert"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/restyutil"
	"time"
	"unicode/utf8"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

var (
	// ErrNetwork is a transport failure or a timeout.
	ErrNetwork = errors.New("network error")
	// ErrBadResponse is a non-200 status or a body that isn't text.
	ErrBadResponse = errors.New("bad response")
	// ErrPriceNotFound means no selector of the host's profile yielded a price.
	ErrPriceNotFound = errors.New("price not found")
	ErrInvalidURL    = errors.New("invalid url")
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type ClientOptions struct {
	// defaults to DefaultUserAgent
	UserAgent string
	// defaults to 30 seconds
	Timeout time.Duration
	// defaults to 2 requests per second, a negative value disables rate limiting
	RequestsPerSecond float64
	// defaults to 2
	Burst            int
	BypassCloudflare bool
	// if set, every http message is dumped to it
	Output restyutil.InstrumentOutput
}

// Client fetches retailer product pages and extracts their price.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) *Client {
	assert.NotNil(tel, "telemetry api")

	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 2
	}
	if opts.Burst <= 0 {
		opts.Burst = 2
	}

	client := resty.New()
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetHeader("accept", "text/html,application/xhtml+xml")
	client.SetTimeout(opts.Timeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	if opts.RequestsPerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	tel = telemetry.NewScopedAPI("prices", tel)
	telemetry.InstrumentResty(client, tel)
	restyutil.InstrumentClient(client, tracer, opts.Output)

	return &Client{
		http: client,
		tel:  tel,
	}
}

// FetchPrice downloads the page at storeURL and extracts its price using
// the profile of the url's host. The returned error always wraps one of
// ErrInvalidURL, ErrNetwork, ErrBadResponse or ErrPriceNotFound.
func (c *Client) FetchPrice(ctx context.Context, storeURL string) (float64, error) {
	ctx, span := tracer.Start(ctx, "FetchPrice")
	defer span.End()

	price, err := c.fetchPrice(ctx, storeURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Float64("price", price))
	return price, nil
}

func (c *Client) fetchPrice(ctx context.Context, storeURL string) (float64, error) {
	link, err := ParseStoreURL(storeURL)
	if err != nil {
		return 0, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(link.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if res.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrBadResponse, res.StatusCode())
	}
	body := res.Body()
	if !utf8.Valid(body) {
		return 0, fmt.Errorf("%w: body is not valid utf-8", ErrBadResponse)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	profile := ProfileFor(link.Hostname())
	price, err := ExtractPrice(doc, profile)
	if err != nil {
		c.tel.ReportDebug(report_client_fetch_price, "no price found", link.String(), profile.Name)
		return 0, err
	}
	return price, nil
}

// ParseStoreURL accepts absolute http(s) urls with a host.
func ParseStoreURL(storeURL string) (*url.URL, error) {
	link, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if link.Scheme != "http" && link.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, link.Scheme)
	}
	if link.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return link, nil
}
