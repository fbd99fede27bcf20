package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Client geocodes addresses against a PositionStack-style forward endpoint.
// Calls are rate-limited and retried with backoff; every request carries a
// hard timeout so a lookup can never block the enrichment loop indefinitely.
type Client struct {
	apiKey  string
	baseURL string
	region  string
	country string
	http    *retryablehttp.Client
	limiter *rate.Limiter
}

// NewClient builds a geocoding client. ratePerSec bounds outbound request
// rate to respect the API plan's limits.
func NewClient(apiKey, baseURL string, ratePerSec float64) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.RetryMax = 3
	rc.Logger = nil
	rc.HTTPClient.Timeout = 6 * time.Second

	if ratePerSec <= 0 {
		ratePerSec = 5
	}
	if baseURL == "" {
		baseURL = "https://api.positionstack.com"
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		region:  "Ohio",
		country: "US",
		http:    rc,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), 1),
	}
}

// forwardResponse mirrors the API's forward-geocode payload.
type forwardResponse struct {
	Data []struct {
		Label              *string  `json:"label"`
		Name               *string  `json:"name"`
		Longitude          *float64 `json:"longitude"`
		Latitude           *float64 `json:"latitude"`
		Number             *string  `json:"number"`
		Street             *string  `json:"street"`
		Locality           *string  `json:"locality"`
		AdministrativeArea *string  `json:"administrative_area"`
		County             *string  `json:"county"`
		Region             *string  `json:"region"`
		RegionCode         *string  `json:"region_code"`
		PostalCode         *string  `json:"postal_code"`
		Confidence         *float64 `json:"confidence"`
	} `json:"data"`
}

// Geocode issues one forward-geocode request. A response with no candidates
// returns the zero Result and no error; transport and decode failures return
// an error for the caller to record.
func (c *Client) Geocode(ctx context.Context, addr, parcelNumber string) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}

	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("query", addr)
	q.Set("region", c.region)
	q.Set("country", c.country)
	q.Set("limit", "1")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/forward?%s", c.baseURL, q.Encode()), nil)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geocode request for parcel %s: %w", parcelNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("geocode API error %d for parcel %s: %s",
			resp.StatusCode, parcelNumber, strings.TrimSpace(string(body)))
	}

	var payload forwardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("decode geocode response for parcel %s: %w", parcelNumber, err)
	}

	if len(payload.Data) == 0 {
		return Result{}, nil
	}

	hit := payload.Data[0]
	city := firstNonNil(hit.Locality, hit.AdministrativeArea, hit.County)
	state := firstNonNil(hit.RegionCode, hit.Region)

	res := Result{
		Longitude:     hit.Longitude,
		Latitude:      hit.Latitude,
		HouseNum:      hit.Number,
		StreetName:    hit.Street,
		County:        hit.County,
		APIPostalCode: hit.PostalCode,
		Confidence:    hit.Confidence,
	}
	if city != nil {
		upper := strings.ToUpper(*city)
		res.APICity = &upper
	}
	if state != nil {
		upper := strings.ToUpper(*state)
		res.APIState = &upper
	}
	if hit.Name != nil {
		formatted := fmt.Sprintf("%s, %s, %s %s",
			deref(hit.Name), deref(city), deref(state), deref(hit.PostalCode))
		res.FormattedAddress = &formatted
	} else if hit.Label != nil {
		res.FormattedAddress = hit.Label
	}
	return res, nil
}

func firstNonNil(vals ...*string) *string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
