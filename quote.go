package planner

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains the price-lookup collaborator: it refreshes holding
// prices from a public quote endpoint. The numeric engines never touch the
// network; they consume whatever prices the portfolio carries.

// Quote is the latest known unit price for a ticker. IsEstimate is true when
// the endpoint had no live price and the previous close was used instead.
type Quote struct {
	Price      Money
	IsEstimate bool
}

// DefaultQuoteAPI is the chart endpoint used when no other is configured.
const DefaultQuoteAPI = "https://query1.finance.yahoo.com/v8/finance/chart/"

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// NewQuoteClient returns a client with a disk cache, all with daily expiry.
func NewQuoteClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// jquery extracts a single float64 from a parsed JSON document.
func jquery(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a float %v", path, jval)
	}
	return val, nil
}

// FetchQuote retrieves the latest quote for a ticker from a chart endpoint
// rooted at base (see DefaultQuoteAPI for the expected response shape).
// It prefers the live market price and falls back to the previous close,
// flagged as an estimate.
func FetchQuote(client *http.Client, base, ticker, currency string) (Quote, error) {
	addr := base + url.PathEscape(ticker)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error in wget %q: %w", ticker, err)
	}

	price, err := jquery(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err == nil {
		return Quote{Price: M(price, currency)}, nil
	}

	price, err = jquery(jobj, "$.chart.result[0].meta.chartPreviousClose")
	if err != nil {
		return Quote{}, fmt.Errorf("no price found for %q: %w", ticker, err)
	}
	return Quote{Price: M(price, currency), IsEstimate: true}, nil
}

// refreshDelay spaces out successive quote requests to stay clear of the
// endpoint's rate limits.
var refreshDelay = 300 * time.Millisecond

// RefreshPrices fetches a fresh quote for every holding, sequentially with a
// small delay between calls, and updates the stored prices in place.
// Failures are collected per ticker and joined; holdings whose fetch failed
// keep their stored price.
func (p *Portfolio) RefreshPrices(client *http.Client, base string) error {
	var errs error
	for i, h := range p.holdings {
		if i > 0 {
			time.Sleep(refreshDelay)
		}
		q, err := FetchQuote(client, base, h.Ticker, p.currency)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("refreshing %q: %w", h.Ticker, err))
			continue
		}
		if q.IsEstimate {
			log.Printf("no live price for %q, using previous close %s", h.Ticker, q.Price)
		}
		p.holdings[i].Price = q.Price
	}
	return errs
}
