// errors.go
package rstp

import "errors"

// Error taxonomy of spec.md §7. ErrConfiguration and ErrUnknownSelfEvent are
// fatal; the rest describe benign, logged-and-continue conditions that
// callers may still want to distinguish (e.g. for metrics).
var (
	// ErrConfiguration is returned at construction time when a required
	// collaborator (MAC table, interface table, bridge MAC) is missing.
	ErrConfiguration = errors.New("rstp: configuration error")

	// ErrUnknownSelfEvent indicates an internal scheduling bug: a
	// self-event kind the engine does not recognize.
	ErrUnknownSelfEvent = errors.New("rstp: unknown self-event kind")

	// ErrExpiredBPDU is the benign discard of a frame whose message age
	// has reached maxAge.
	ErrExpiredBPDU = errors.New("rstp: expired bpdu discarded")

	// ErrInoperational is the benign drop of any event delivered while the
	// engine is stopped.
	ErrInoperational = errors.New("rstp: engine not operational")
)
