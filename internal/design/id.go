package design

import (
	"fmt"
	"sync/atomic"
	"time"
)

var elementSeq uint64

// NewElementID returns an id unique within this process. Ids only need
// to be unique inside a single design, not globally.
func NewElementID() string {
	seq := atomic.AddUint64(&elementSeq, 1)
	return fmt.Sprintf("el-%d-%d", time.Now().UnixMilli(), seq)
}
