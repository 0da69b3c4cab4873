package component

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces component identifiers. Spec §9 specifies a
// process-wide monotonic counter as the default ("never reused... enables
// stable identity... ID is only for debugging"); UUIDGenerator is offered as
// an alternate implementation for hosts that export component IDs outside
// the process (e.g. loom/devtools/mcp snapshot/export), where global
// uniqueness across runs is worth the extra bytes.
type IDGenerator interface {
	Next() string
}

// MonotonicIDGenerator is the spec-mandated default: a simple incrementing
// counter, formatted as a string so Node.ID and UUIDGenerator share a type.
type MonotonicIDGenerator struct {
	counter uint64
}

func (g *MonotonicIDGenerator) Next() string {
	n := atomic.AddUint64(&g.counter, 1)
	return formatUint(n)
}

func formatUint(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// UUIDGenerator backs component IDs with github.com/google/uuid instead of a
// bare counter, for devtools export and cross-process correlation.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.NewString()
}

// DefaultIDGenerator is process-wide and swappable (e.g. tests may install a
// deterministic stub).
var DefaultIDGenerator IDGenerator = &MonotonicIDGenerator{}
