// Package ngwmn is the HTTP client for the National Ground-Water Monitoring
// Network services: the iddata XML endpoints, the geoserver WFS feature
// lookup, and the ngwmn_cache statistics documents.
package ngwmn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/time/rate"

	"github.com/groundwatertools/well-data-service/internal/stats"
)

// Client talks to the NGWMN services. All methods rate-limit against the
// shared upstream before dispatching.
type Client struct {
	serviceRoot string
	statsRoot   string
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates an NGWMN client. requestsPerSecond polices the shared
// upstream; the service is public and unauthenticated.
func NewClient(serviceRoot, statsRoot string, timeout time.Duration, requestsPerSecond float64, logger *slog.Logger) *Client {
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		serviceRoot: strings.TrimRight(serviceRoot, "/"),
		statsRoot:   strings.TrimRight(statsRoot, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		logger:  logger,
	}
}

// WellLogXML fetches the well-log document for a site. A 404 or an
// unparsable body yields a nil document, meaning "no record".
func (c *Client) WellLogXML(ctx context.Context, agencyCode, siteNumber string) (*etree.Document, error) {
	return c.iddata(ctx, "well_log", agencyCode, siteNumber)
}

// WaterQualityXML fetches the water-quality document for a site, with the
// same nil-document semantics as WellLogXML.
func (c *Client) WaterQualityXML(ctx context.Context, agencyCode, siteNumber string) (*etree.Document, error) {
	return c.iddata(ctx, "water_quality", agencyCode, siteNumber)
}

// iddata performs an NGWMN iddata request and parses the XML response.
func (c *Client) iddata(ctx context.Context, request, agencyCode, siteNumber string) (*etree.Document, error) {
	params := url.Values{
		"request":   {request},
		"agency_cd": {agencyCode},
		"siteNo":    {siteNumber},
	}
	endpoint := c.serviceRoot + "/ngwmn/iddata?" + params.Encode()

	body, status, err := c.get(ctx, endpoint, "application/xml")
	if err != nil {
		return nil, fmt.Errorf("iddata %s request: %w", request, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("iddata %s: status %d from %s", request, status, endpoint)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil || doc.Root() == nil {
		// Malformed XML degrades to "no record"; the front end treats it
		// the same as a site the network has never heard of.
		c.logger.Warn("unparsable iddata response", "request", request,
			"agency_cd", agencyCode, "site_no", siteNumber, "error", err)
		return nil, nil
	}
	return doc, nil
}

// Statistic fetches one ngwmn_cache statistics document. A 404 means the
// cache has never ranked the site and yields an unfetched document rather
// than an error.
func (c *Client) Statistic(ctx context.Context, agencyCode, siteNumber, statType string) (map[string]any, error) {
	endpoint := c.statsRoot + "/ngwmn_cache/direct/json/" +
		url.PathEscape(statType) + "/" + url.PathEscape(agencyCode) + "/" + url.PathEscape(siteNumber)

	body, status, err := c.get(ctx, endpoint, "application/json")
	if err != nil {
		return nil, fmt.Errorf("statistics %s request: %w", statType, err)
	}
	if status == http.StatusNotFound {
		doc := stats.Unfetched()
		doc[stats.KeyRanked] = "N"
		return doc, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("statistics %s: status %d from %s", statType, status, endpoint)
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("statistics %s: decode response: %w", statType, err)
	}
	doc[stats.KeyFetched] = "Y"
	return doc, nil
}

// Features queries the geoserver WFS for monitored sites within a small
// bounding box around a point.
func (c *Client) Features(ctx context.Context, latitude, longitude float64) (map[string]any, error) {
	lonLower, latLower, lonUpper, latUpper := BoundingBox(latitude, longitude, 0.01)
	form := url.Values{
		"SERVICE":      {"WFS"},
		"VERSION":      {"1.0.0"},
		"srsName":      {"EPSG:4326"},
		"outputFormat": {"json"},
		"typeName":     {"ngwmn:VW_GWDP_GEOSERVER"},
		"CQL_FILTER": {fmt.Sprintf(
			"((QW_SN_FLAG='1') OR (WL_SN_FLAG='1')) AND (BBOX(GEOM,%v,%v,%v,%v))",
			lonLower, latLower, lonUpper, latUpper)},
	}
	endpoint := c.serviceRoot + "/ngwmn/geoserver/wfs?request=GetFeature"

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("features request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("features request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("features request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("features: status %d: %s", resp.StatusCode, body)
	}

	var features map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&features); err != nil {
		return nil, fmt.Errorf("features: decode response: %w", err)
	}
	return features, nil
}

// BoundingBox computes a delta-degree box around a point, returned in the
// lower-longitude, lower-latitude, upper-longitude, upper-latitude order
// the WFS BBOX filter expects.
func BoundingBox(latitude, longitude, delta float64) (float64, float64, float64, float64) {
	return longitude - delta, latitude - delta, longitude + delta, latitude + delta
}

func (c *Client) get(ctx context.Context, endpoint, accept string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
