package leftright

import "github.com/leftright-go/leftright/internal/oplog"

// Operation is a replayable mutation of a container of type C. Apply must
// be deterministic: given equal container states and equal parameters,
// two applications must leave the container in equal states and return
// equal results. Apply must not retain c after it returns and must not
// close over the container's identity or any other mutable state outside
// its own parameters — the Writer applies every Operation twice (once
// against the W-copy synchronously, once again during Refresh against
// the retired copy) and both applications must agree.
type Operation[C any] = oplog.Applier[C]
