// Package idgen issues the prefixed record identifiers used across the
// CRM (ORD-<n>, L-<n>, CALL-<n>, ...).
package idgen

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"
)

const (
	PrefixCallLog   = "CALL"
	PrefixLead      = "L"
	PrefixOrder     = "ORD"
	PrefixProduct   = "P"
	PrefixCustomer  = "C"
	PrefixTask      = "T"
	PrefixShiftNote = "SN"
	PrefixRemark    = "R"
)

var seq uint32

// New returns a fresh prefixed identifier. The numeric part combines a
// millisecond timestamp with a process-local counter so concurrent
// requests cannot collide within one instance.
func New(prefix string) string {
	n := atomic.AddUint32(&seq, 1) % 1000
	ms := time.Now().UnixMilli() % 1_000_000_000
	return fmt.Sprintf("%s-%d%03d", prefix, ms, n)
}

func init() {
	// Stagger the counter so restarts don't replay the same low suffixes.
	seq = rand.Uint32()
}
