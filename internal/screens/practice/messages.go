package practice

import "github.com/mathmate/mathmate/internal/problemgen"

// batchReadyMsg delivers a generated problem batch. Generation is the
// engine's stale-response token from the originating request.
type batchReadyMsg struct {
	Generation int
	Problems   []problemgen.Problem
}

// batchFailedMsg delivers a failed batch fetch.
type batchFailedMsg struct {
	Generation int
	Err        error
}
