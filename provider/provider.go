// Package provider implements the HTTP client for the videolist/detail query API spoken by every source.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/network"
	"github.com/vodhub/vodhub/source"
)

// HTTP queries source endpoints over HTTP.
type HTTP struct {
	client *http.Client
}

// New returns a provider client. A nil client uses network.Client.
func New(client *http.Client) *HTTP {
	if client == nil {
		client = network.Client
	}
	return &HTTP{client: client}
}

// List implements source.Client.
func (h *HTTP) List(ctx context.Context, endpoint string, categoryID, page, pageSize int) (*source.Payload, error) {
	params := url.Values{}
	params.Set("ac", "videolist")
	params.Set("t", strconv.Itoa(categoryID))
	params.Set("pg", strconv.Itoa(max(page, 1)))
	if pageSize > 0 {
		params.Set("pagesize", strconv.Itoa(pageSize))
	}

	return h.get(ctx, endpoint, params)
}

// Search implements source.Client.
func (h *HTTP) Search(ctx context.Context, endpoint, query string, page, pageSize int) (*source.Payload, error) {
	params := url.Values{}
	params.Set("ac", "videolist")
	params.Set("wd", query)
	params.Set("pg", strconv.Itoa(max(page, 1)))
	if pageSize > 0 {
		params.Set("pagesize", strconv.Itoa(pageSize))
	}

	return h.get(ctx, endpoint, params)
}

// Detail implements source.Client.
func (h *HTTP) Detail(ctx context.Context, endpoint, id string) (*source.Payload, error) {
	params := url.Values{}
	params.Set("ac", "detail")
	params.Set("ids", id)

	return h.get(ctx, endpoint, params)
}

func (h *HTTP) get(ctx context.Context, endpoint string, params url.Values) (*source.Payload, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint %q: %s", source.ErrTransport, endpoint, err)
	}

	query := u.Query()
	for k, v := range params {
		query[k] = v
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", source.ErrTransport, err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", u)
	resp, err := h.client.Do(req)
	if err != nil {
		log.Warn(err)
		return nil, fmt.Errorf("%w: %w", source.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("%s returned status code %d", u.Host, resp.StatusCode)
		return nil, fmt.Errorf("%w: invalid response code %d", source.ErrTransport, resp.StatusCode)
	}

	var payload source.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn(err)
		return nil, fmt.Errorf("%w: decode payload: %w", source.ErrTransport, err)
	}

	if !payload.OK() {
		return nil, fmt.Errorf("%w: code %d: %s", source.ErrTransport, payload.Code, payload.Msg)
	}

	return &payload, nil
}
