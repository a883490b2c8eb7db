package pricecharting

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"pricetracker/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/pricecharting")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Client fetches game pages from the pricing site. One client is shared by
// all concurrent fetches; it only reuses connections, there is no mutable
// session state.
type Client struct {
	Host string
	Http *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultHost
	Host string
	// defaults to a desktop browser user agent
	UserAgent string
	// per-request timeout, defaults to 30s
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, tracer)

	return &Client{
		Host: opts.Host,
		Http: client,
	}, nil
}

// FetchGamePage fetches and parses the pricing page addressed by key.
// Failures here (network error, timeout, non-200) are row-local; callers
// degrade them to a missing-price outcome.
func (c *Client) FetchGamePage(ctx context.Context, key LookupKey) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(key.URL(c.Host))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status %d for %s", res.StatusCode(), res.Request.URL)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, err
	}
	return doc, nil
}
