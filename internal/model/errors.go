package model

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnavailable means no instance of the upstream could be resolved or reached.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamFault means the upstream answered with a non-success status or a body
	// that could not be decoded.
	ErrUpstreamFault   = errors.New("upstream fault")
	ErrUpstreamTimeout = errors.New("upstream timeout")
)
