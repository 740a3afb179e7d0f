// Package ids generates the string identifiers used for records that are
// created client-side before they reach durable storage.
package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns a lexicographically sortable identifier that is unique even
// under concurrent writers within this process.
func New() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewOrderID returns a draft order identifier with the ORD- prefix the
// dashboard displays.
func NewOrderID() string {
	return "ORD-" + New()
}
