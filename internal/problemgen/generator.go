package problemgen

import "context"

// Generator produces batches of practice problems using an LLM provider.
type Generator interface {
	// GenerateBatch produces a batch of problems for the given input.
	// All configured validators run against each problem before the
	// batch is returned.
	GenerateBatch(ctx context.Context, input GenerateInput) ([]Problem, error)
}
