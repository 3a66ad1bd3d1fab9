// Package notesclient provides a client for the notely REST API. The
// public API centres around the Client type, which exposes the five
// note operations over a pluggable Backend: an HTTP backend for the
// remote server and an in-memory offline backend that mirrors the same
// contract, including validation and not-found semantics, so the two
// are behaviorally substitutable.
package notesclient
