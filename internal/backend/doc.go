// Package backend is an in-memory stand-in for the intelligence service,
// used during development and by integration tests.
//
// It accepts POST /v1/userInsights/web?cstate=true, checks the request
// against the insights contract, derives the key from the Basic
// credentials, decrypts the body with the IV carried in tenant-id and
// answers with an Insights document. Fingerprints are remembered in memory
// to report newDevice and firstSeenDays; all state is lost on exit.
//
// Scoring is deliberately simple: bot signals score High, unseen devices
// Medium, everything else Low. It exists to exercise the protocol, not to
// assess risk.
package backend
