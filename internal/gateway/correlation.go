package gateway

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	corrEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	corrEntropyMu sync.Mutex
)

// nextCorrelationID builds a process-unique id: a per-gateway monotonic
// sequence number plus a time-ordered ULID suffix. Safe for concurrent calls.
func (g *Gateway) nextCorrelationID() string {
	seq := g.corrSeq.Add(1)
	corrEntropyMu.Lock()
	u := ulid.MustNew(ulid.Timestamp(g.clk.Now()), corrEntropy)
	corrEntropyMu.Unlock()
	return fmt.Sprintf("corr-%d-%s", seq, u)
}
