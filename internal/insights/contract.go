package insights

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"insightagent/internal/crypto"
	"insightagent/internal/domain"
)

// ContractError names the part of a request that breaks the contract.
type ContractError struct {
	Field  string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("request contract: %s: %s", e.Field, e.Reason)
}

// Inbound is what the service learns from a request that honours the contract.
type Inbound struct {
	APIKey         string
	APISecret      string
	ClientIP       string // empty when the header was absent
	Timestamp      time.Time
	SDKVersionCode int
	SDKVersionName string
	Envelope       domain.Envelope
}

// ValidateRequest checks r's method, URL and headers and pairs them with
// body, the already-read request body.
func ValidateRequest(r *http.Request, body []byte) (Inbound, error) {
	var in Inbound

	if r.Method != http.MethodPost {
		return in, &ContractError{Field: "method", Reason: "want POST, got " + r.Method}
	}
	if r.URL.Path != Path {
		return in, &ContractError{Field: "path", Reason: "want " + Path}
	}
	if r.URL.Query().Get("cstate") != "true" {
		return in, &ContractError{Field: "query", Reason: "cstate=true required"}
	}

	key, secret, err := parseBasic(r.Header.Get(HeaderAuthorization))
	if err != nil {
		return in, err
	}
	in.APIKey, in.APISecret = key, secret

	if ip := r.Header.Get(HeaderClientIP); ip != "" {
		if net.ParseIP(ip) == nil {
			return in, &ContractError{Field: HeaderClientIP, Reason: "not an IP address"}
		}
		in.ClientIP = ip
	}

	ms, err := strconv.ParseInt(r.Header.Get(HeaderClientTimestamp), 10, 64)
	if err != nil || ms <= 0 {
		return in, &ContractError{Field: HeaderClientTimestamp, Reason: "want positive epoch milliseconds"}
	}
	in.Timestamp = time.UnixMilli(ms)

	tenant := r.Header.Get(HeaderTenantID)
	if _, err := crypto.ParseIV(tenant); err != nil {
		return in, &ContractError{Field: HeaderTenantID, Reason: err.Error()}
	}

	in.SDKVersionName = r.Header.Get(HeaderSDKVersionName)
	if in.SDKVersionName == "" {
		return in, &ContractError{Field: HeaderSDKVersionName, Reason: "missing"}
	}
	in.SDKVersionCode, err = strconv.Atoi(r.Header.Get(HeaderSDKVersionCode))
	if err != nil || in.SDKVersionCode <= 0 {
		return in, &ContractError{Field: HeaderSDKVersionCode, Reason: "want positive integer"}
	}

	mt, _, err := mime.ParseMediaType(r.Header.Get(HeaderContentType))
	if err != nil || mt != ContentType {
		return in, &ContractError{Field: HeaderContentType, Reason: "want " + ContentType}
	}

	encoded := strings.TrimSpace(string(body))
	ct, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return in, &ContractError{Field: "body", Reason: "not standard base64"}
	}
	if len(ct) == 0 || len(ct)%crypto.IVBytes != 0 {
		return in, &ContractError{Field: "body", Reason: "ciphertext is not block aligned"}
	}

	in.Envelope = domain.Envelope{EncodedData: encoded, IV: tenant}
	return in, nil
}

func parseBasic(header string) (key, secret string, err error) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", &ContractError{Field: HeaderAuthorization, Reason: "want Basic scheme"}
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", &ContractError{Field: HeaderAuthorization, Reason: "credentials are not base64"}
	}
	key, secret, ok := strings.Cut(string(raw), ":")
	if !ok || key == "" || secret == "" {
		return "", "", &ContractError{Field: HeaderAuthorization, Reason: "want apiKey:apiSecret"}
	}
	return key, secret, nil
}
