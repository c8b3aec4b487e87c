package httpclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

const acceptXML = "application/xml, text/xml;q=0.9, */*;q=0.1"

// BuildRequest builds a GET request for a rendered endpoint URL.
func BuildRequest(ctx context.Context, rawURL string, userAgent string) (*http.Request, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:     "httpclient.build",
			Kind:   domain.KindInvalidConfig,
			Target: rawURL,
			Err:    err,
		}
	}

	req.Header.Set("Accept", acceptXML)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return req, nil
}
