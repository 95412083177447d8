package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// DefaultRequestTimeout is used for every catalog request when the Client was
// created with a non-positive timeout.
const DefaultRequestTimeout = 10 * time.Second

const maxResponseSize = 4 * 1024 * 1024

// Client is a MusicBrainz client for looking up artists and their works. It is
// safe for concurrent use.
//
// Every method makes its HTTP requests synchronously and without caching. Each
// request is bounded by the client's request timeout on top of whatever deadline
// the passed context already has.
//
// It implements Catalog.
type Client struct {
	useragent  string
	timeout    time.Duration
	httpClient *http.Client

	musicBrainzAPIHost string
	musicBrainzWebHost string
}

// NewClient returns fully configured Client.
//
// The user agent is used for representing itself when contacting the MusicBrainz
// API. The people at MusicBrainz require it so that they could tell applications
// apart. The timeout is applied to every request.
func NewClient(useragent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Client{
		useragent:          useragent,
		timeout:            timeout,
		httpClient:         http.DefaultClient,
		musicBrainzAPIHost: "https://musicbrainz.org",
		musicBrainzWebHost: "https://musicbrainz.org",
	}
}

// getJSON makes a GET request to endpointURL with the query values and decodes
// the JSON response into `v`. All errors returned wrap one of ErrTransport or
// ErrMalformed.
func (c *Client) getJSON(
	ctx context.Context,
	endpointURL string,
	query url.Values,
	v any,
) error {
	req, err := http.NewRequest(http.MethodGet, endpointURL, nil)
	if err != nil {
		return fmt.Errorf("%w: creating MusicBrainz API req: %w", ErrTransport, err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf(
			"%w: MusicBrainz API returned HTTP %d",
			ErrTransport,
			resp.StatusCode,
		)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"%w: MusicBrainz API returned HTTP %d",
			ErrMalformed,
			resp.StatusCode,
		)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize))
	if err := dec.Decode(v); err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return transportError(err)
		}
		return fmt.Errorf(
			"%w: decoding MusicBrainz API response: %w",
			ErrMalformed,
			err,
		)
	}

	return nil
}

// transportError classifies an error returned while doing a request or reading
// its body.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}
