/*
Copyright (C) 2020 Print Tracker, LLC - All Rights Reserved

Unauthorized copying of this file, via any medium is strictly prohibited
as this source code is proprietary and confidential. Dissemination of this
information or reproduction of this material is strictly forbidden unless
prior written permission is obtained from Print Tracker, LLC.
*/

// Package leftright implements the left-right concurrency primitive: a
// mechanism for sharing a mutable data structure between a single writer
// and many readers such that reads never take a lock and never block on
// a writer, while writes are never blocked by readers.
//
// The primitive keeps two independently allocated copies of a
// caller-supplied container. At any moment one copy is the "R-copy"
// (what readers see) and the other is the "W-copy" (what the writer
// mutates). A Writer applies mutations to the W-copy immediately and
// records them in an operation log. Calling Writer.Refresh publishes the
// W-copy to readers, waits for any reader still touching the
// newly-retired copy to finish, and then replays the operation log
// against it so both copies converge again.
//
// Readers never take a lock on the fast path. Each Reader owns a
// monotonic epoch counter whose parity (even/odd) tells the writer
// whether that reader might currently be inside a read. Refresh uses
// this to determine when it's safe to mutate the retired copy.
//
// The primitive is generic over the container type C and knows nothing
// about what C is shaped like; package lrmap builds a key-value map on
// top of it.
package leftright
