// Package insights implements the HTTP contract between an integrating
// backend and the intelligence service.
//
// The agent only produces envelopes. Shipping one is the integrator's job,
// and this package gives integrators (and the CLI) the pieces to do it:
//
//   - BuildRequest assembles the RequestDescriptor for one envelope:
//     POST {base}/v1/userInsights/web?cstate=true with Basic credentials,
//     the forwarded end-user IP, a millisecond timestamp, the envelope IV as
//     tenant-id, the SDK version pair and a text/plain body holding the
//     base64 ciphertext.
//   - ValidateRequest checks an inbound *http.Request against the same
//     contract; the development backend uses it.
//   - Client forwards a RequestDescriptor once and decodes the Insights
//     response. It never retries; non-2xx statuses are returned as errors
//     carrying the method, full URL and status text.
//
// The tenant-id header is load-bearing: the service finds the decryption IV
// there, not in the body.
package insights
