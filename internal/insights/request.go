package insights

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"insightagent/internal/crypto"
	"insightagent/internal/domain"
)

// Path and query of the user-insights endpoint.
const (
	Path  = "/v1/userInsights/web"
	Query = "cstate=true"
)

// Header names of the contract.
const (
	HeaderAuthorization   = "authorization"
	HeaderClientIP        = "client-ip-forwarded"
	HeaderClientTimestamp = "client-ts-millis"
	HeaderTenantID        = "tenant-id"
	HeaderSDKVersionCode  = "sdk-version-code"
	HeaderSDKVersionName  = "sdk-version-name"
	HeaderContentType     = "content-type"

	ContentType = "text/plain"
)

// ErrNoBaseURL is returned by BuildRequest when no service URL is set.
var ErrNoBaseURL = errors.New("intelligence service URL not configured")

// RequestOptions carries the per-request values the integrator supplies.
type RequestOptions struct {
	// ClientIP is the end user's IP as seen by the integrating backend.
	// Empty means the response carries no IP intelligence.
	ClientIP string
	// Now stamps client-ts-millis; zero means time.Now.
	Now time.Time
}

// BuildRequest assembles the descriptor for shipping env to the service at
// base (scheme and host, optionally a path prefix).
func BuildRequest(
	base string,
	cfg domain.Configuration,
	env domain.Envelope,
	opts RequestOptions,
) (domain.RequestDescriptor, error) {
	endpoint, err := Endpoint(base)
	if err != nil {
		return domain.RequestDescriptor{}, err
	}
	if _, err := crypto.ParseIV(env.IV); err != nil {
		return domain.RequestDescriptor{}, fmt.Errorf("tenant-id: %w", err)
	}
	if env.EncodedData == "" {
		return domain.RequestDescriptor{}, fmt.Errorf("%w: empty body", crypto.ErrMalformedEnvelope)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	h := make(http.Header)
	h.Set(HeaderAuthorization, BasicAuth(cfg.APIKey, cfg.APISecret))
	if ip := strings.TrimSpace(opts.ClientIP); ip != "" {
		h.Set(HeaderClientIP, ip)
	}
	h.Set(HeaderClientTimestamp, strconv.FormatInt(now.UnixMilli(), 10))
	h.Set(HeaderTenantID, env.IV)
	h.Set(HeaderSDKVersionCode, strconv.Itoa(SDKVersionCode))
	h.Set(HeaderSDKVersionName, SDKVersionName)
	h.Set(HeaderContentType, ContentType)

	return domain.RequestDescriptor{
		Method: http.MethodPost,
		URL:    endpoint,
		Header: h,
		Body:   env.EncodedData,
	}, nil
}

// Endpoint returns the full user-insights URL under base.
func Endpoint(base string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", ErrNoBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("intelligence service URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return "", fmt.Errorf("intelligence service URL %q: want http(s)://host", base)
	}
	u.Path = strings.TrimRight(u.Path, "/") + Path
	u.RawQuery = Query
	u.Fragment = ""
	return u.String(), nil
}

// BasicAuth renders the authorization header value for apiKey/apiSecret.
func BasicAuth(apiKey, apiSecret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"+apiSecret))
}
