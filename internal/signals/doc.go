// Package signals provides SignalSource implementations.
//
// HostProbe collects what a Go process can observe about its environment
// (operating system, architecture, CPU count, hostname, timezone, locale and
// network interfaces) and lays it out under the short payload keys the
// intelligence service expects. Session-scoped identity ("f") is stable for a
// given session and host; volatile fields under "additionalParams" (requestId,
// ts) change on every call.
//
// SourceFunc adapts a plain function, which is how integrators plug in their
// own collectors and how tests stub collection.
package signals
