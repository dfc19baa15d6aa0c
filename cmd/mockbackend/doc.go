// Package main runs the in-memory intelligence service used by insightagent
// during development and tests.
//
// HTTP API
//
//	POST /v1/userInsights/web?cstate=true
//	    Accept an encrypted signal payload. The request must carry
//	    authorization (Basic apiKey:apiSecret), client-ts-millis, tenant-id
//	    (the hex IV), sdk-version-code, sdk-version-name and
//	    content-type text/plain; client-ip-forwarded is optional. The body is
//	    the base64 ciphertext. Answers with an Insights JSON document.
//
//	GET /healthz
//	    Liveness probe; always 200.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Non-2xx responses carry {"error": "..."}: 400 for contract or
//     decryption failures, 401 for unknown credentials (only when
//     --credential is given), 422 for payloads without a fingerprint.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request at debug level.
//   - The default listen address is :8080.
//
// Intended for local use only. It decrypts what it receives.
package main
