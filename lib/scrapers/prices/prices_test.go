package prices

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"supplements-backend/internal/components/telemetry"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		text     string
		expected float64
		fails    bool
	}{
		{text: "$12.99", expected: 12.99},
		{text: " US$1,299.50 ", expected: 1299.5},
		{text: "Now 8", expected: 8},
		{text: ".75", expected: 0.75},
		{text: "$12.99$12.99", fails: true},
		{text: "Currently unavailable.", fails: true},
		{text: "", fails: true},
	}

	for _, test := range testCases {
		price, err := ParsePrice(test.text)
		if test.fails {
			require.Error(t, err, test.text)
			continue
		}
		require.NoError(t, err, test.text)
		require.InDelta(t, test.expected, price, 1e-9, test.text)
	}
}

func TestProfileFor(t *testing.T) {
	testCases := []struct {
		host     string
		expected string
	}{
		{host: "www.amazon.com", expected: "amazon"},
		{host: "smile.amazon.co.uk", expected: "amazon"},
		{host: "www.walmart.com", expected: "walmart"},
		{host: "WALMART.ca", expected: "walmart"},
		{host: "www.iherb.com", expected: "generic"},
		{host: "notamazon.com", expected: "generic"},
		{host: "127.0.0.1", expected: "generic"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ProfileFor(test.host).Name, test.host)
	}
}

func mustDoc(t testing.TB, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractPrice(t *testing.T) {
	testCases := []struct {
		name     string
		profile  Profile
		html     string
		expected float64
		notFound bool
	}{
		{
			name:     "amazon offscreen price",
			profile:  AmazonProfile,
			html:     `<div class="a-price"><span class="a-offscreen">$29.99</span><span aria-hidden="true">$29<sup>99</sup></span></div>`,
			expected: 29.99,
		},
		{
			name:    "amazon falls through to the next selector",
			profile: AmazonProfile,
			html: `<div class="a-price"><span class="a-offscreen">See price in cart</span></div>
				<span id="priceblock_ourprice">$14.49</span>`,
			expected: 14.49,
		},
		{
			name:     "walmart itemprop",
			profile:  WalmartProfile,
			html:     `<span itemprop="price" content="80.00">$80.00</span>`,
			expected: 80,
		},
		{
			name:     "generic span",
			profile:  GenericProfile,
			html:     `<div><span class="price">USD 9.99</span><div class="price">$1.00</div></div>`,
			expected: 9.99,
		},
		{
			name:     "only the first matching element is considered",
			profile:  GenericProfile,
			html:     `<span class="price">sold out</span><span class="price">$3.00</span><p itemprop="price">4.50</p>`,
			expected: 4.5,
		},
		{
			name:     "nothing matches",
			profile:  WalmartProfile,
			html:     `<span class="a-offscreen">$10.00</span>`,
			notFound: true,
		},
	}

	for _, test := range testCases {
		price, err := ExtractPrice(mustDoc(t, test.html), test.profile)
		if test.notFound {
			require.ErrorIs(t, err, ErrPriceNotFound, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.InDelta(t, test.expected, price, 1e-9, test.name)
	}
}

func newTestClient(timeout time.Duration) *Client {
	return NewClient(ClientOptions{
		Timeout:           timeout,
		RequestsPerSecond: -1,
	}, &telemetry.Recorder{})
}

func TestFetchPrice(t *testing.T) {
	var userAgent string
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("user-agent")
		w.Write([]byte(`<html><body><span class="price">$19.95</span></body></html>`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<span class="price">$1.00</span>`))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>no price here</body></html>`))
	})
	mux.HandleFunc("/binary", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xfe, 0xfd})
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second * 2):
		case <-r.Context().Done():
		}
		w.Write([]byte(`<span class="price">$5.00</span>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(time.Millisecond * 300)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		price, err := client.FetchPrice(ctx, server.URL+"/ok")
		require.NoError(t, err)
		require.InDelta(t, 19.95, price, 1e-9)
		require.Equal(t, DefaultUserAgent, userAgent)
	}
	{
		_, err := client.FetchPrice(ctx, server.URL+"/broken")
		require.ErrorIs(t, err, ErrBadResponse)
	}
	{
		_, err := client.FetchPrice(ctx, server.URL+"/empty")
		require.ErrorIs(t, err, ErrPriceNotFound)
	}
	{
		_, err := client.FetchPrice(ctx, server.URL+"/binary")
		require.ErrorIs(t, err, ErrBadResponse)
	}
	{
		_, err := client.FetchPrice(ctx, server.URL+"/slow")
		require.ErrorIs(t, err, ErrNetwork)
	}
	{
		_, err := client.FetchPrice(ctx, "ftp://example.com/item")
		require.ErrorIs(t, err, ErrInvalidURL)
		_, err = client.FetchPrice(ctx, "not a url")
		require.ErrorIs(t, err, ErrInvalidURL)
	}
}

func TestFetchPriceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	link := server.URL
	server.Close()

	client := newTestClient(time.Second)
	_, err := client.FetchPrice(context.Background(), link)
	require.ErrorIs(t, err, ErrNetwork)
}

func TestFetchPriceRateLimited(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<span class="price">$2.00</span>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{RequestsPerSecond: 0.001, Burst: 1}, &telemetry.Recorder{})

	_, err := client.FetchPrice(context.Background(), server.URL)
	require.NoError(t, err)

	// the second request has to wait for a token and gives up once the context is done
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*100)
	defer cancel()
	_, err = client.FetchPrice(ctx, server.URL)
	require.ErrorIs(t, err, ErrNetwork)
	require.True(t, strings.Contains(err.Error(), "rate") || ctx.Err() != nil)
	require.Equal(t, 1, hits)
}
