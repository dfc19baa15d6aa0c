// Package session implements the agent's initialisation lifecycle and signal
// retrieval.
//
// An Agent moves through Uninitialized → Initializing → Ready or Failed
// exactly once. Init validates the Configuration and resolves an
// async.Result with either a *Client or a *domain.ConfigurationError; the
// Client, and with it Get, is only reachable through a Ready outcome.
//
// Every Get runs its own collection cycle against the SignalSource. Calls
// are independent, never cached, never merged with calls already in flight,
// and every failure reaches the caller as a *domain.CollectionError through
// the same Result that carries success.
package session
