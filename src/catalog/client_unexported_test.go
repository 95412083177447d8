package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// TestClientGetJSONErrors checks that the Client's method for doing requests to
// the MusicBrainz API classifies all kinds of failures correctly.
func TestClientGetJSONErrors(t *testing.T) {
	tests := []struct {
		desc       string
		handler    http.HandlerFunc
		timeout    time.Duration
		inspectErr func(*testing.T, error)
	}{
		{
			desc: "non 200 status code",
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected %v but got %v", ErrMalformed, err)
				}
				if !strings.Contains(err.Error(), "returned HTTP 404") {
					t.Error("expected an error showing what the API returned")
				}
			},
		},
		{
			desc: "server error status code",
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrTransport) {
					t.Errorf("expected %v but got %v", ErrTransport, err)
				}
				if errors.Is(err, ErrMalformed) {
					t.Errorf("server errors must not be reported as malformed")
				}
			},
		},
		{
			desc: "malformed JSON",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `definitely not a JSON response`)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected %v but got %v", ErrMalformed, err)
				}
				if !strings.Contains(err.Error(), "decoding") {
					t.Error("expected JSON parsing error")
				}
			},
		},
		{
			desc: "malformed HTTP response",
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.Header().Add("content-length", "22")
				_, _ = w.Write([]byte("12"))
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("expected %v but got %v", io.ErrUnexpectedEOF, err)
				}
				if !errors.Is(err, ErrTransport) {
					t.Errorf("expected %v but got %v", ErrTransport, err)
				}
			},
		},
		{
			desc:    "request timeout",
			timeout: 20 * time.Millisecond,
			handler: func(w http.ResponseWriter, req *http.Request) {
				select {
				case <-time.After(time.Second):
				case <-req.Context().Done():
				}
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, ErrTimeout) {
					t.Errorf("expected %v but got %v", ErrTimeout, err)
				}
				if !errors.Is(err, ErrTransport) {
					t.Errorf("timeouts are expected to be transport errors too")
				}
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			mbrainz := httptest.NewServer(test.handler)
			defer mbrainz.Close()

			c := NewClient("user-agent/testing", test.timeout)
			c.musicBrainzAPIHost = mbrainz.URL

			var v map[string]any
			err := c.getJSON(
				context.Background(),
				mbrainz.URL+"/ws/2/artist/",
				url.Values{},
				&v,
			)
			if err == nil {
				t.Fatal("expected an error")
			}
			test.inspectErr(t, err)
		})
	}
}

// TestNewClientDefaultTimeout makes sure a client is never created without a
// request timeout.
func TestNewClientDefaultTimeout(t *testing.T) {
	c := NewClient("user-agent/testing", 0)
	if c.timeout != DefaultRequestTimeout {
		t.Errorf("expected timeout %s but got %s", DefaultRequestTimeout, c.timeout)
	}

	c = NewClient("user-agent/testing", time.Minute)
	if c.timeout != time.Minute {
		t.Errorf("expected timeout %s but got %s", time.Minute, c.timeout)
	}
}
