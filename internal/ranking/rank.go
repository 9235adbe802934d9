// Package ranking provides semantic relevance ranking of work experiences
// against a job description using an external embedding capability.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/deep-job-seek/internal/types"
)

// embedConcurrency bounds parallel embedding calls during index construction.
const embedConcurrency = 4

// Embedder is the external embedding capability: a pure function from text to
// a fixed-length vector, deterministic for a fixed model identity.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Error represents an embedding or ranking failure. Embedding failures are
// not recoverable; callers must not return a partial result.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ranking error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ranking error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Index holds the flattened experience corpus together with precomputed
// embedding vectors. It is built once at startup and immutable afterwards,
// so it may be shared across concurrent requests without locking.
type Index struct {
	embedder    Embedder
	experiences []types.Experience
	vectors     [][]float32
}

// NewIndex embeds the search text of every experience and returns an
// immutable index. Entries are embedded in parallel; any single embedding
// failure fails the whole build.
func NewIndex(ctx context.Context, embedder Embedder, experiences []types.Experience) (*Index, error) {
	vectors := make([][]float32, len(experiences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)
	for i := range experiences {
		g.Go(func() error {
			vec, err := embedder.Embed(gctx, experiences[i].SearchText())
			if err != nil {
				return &Error{
					Message: fmt.Sprintf("failed to embed experience %q at %s", experiences[i].Position, experiences[i].Company),
					Cause:   err,
				}
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Index{
		embedder:    embedder,
		experiences: experiences,
		vectors:     vectors,
	}, nil
}

// Len returns the number of indexed experiences.
func (idx *Index) Len() int {
	return len(idx.experiences)
}

// scoredMatch pairs an indexed experience with its similarity score.
// It is a ranking intermediate and never exposed to callers.
type scoredMatch struct {
	position int
	score    float64
}

// Rank embeds the job description and returns the topK most relevant
// experiences, most relevant first. Similarity is the raw dot product between
// vectors; magnitudes are deliberately not normalized away. Ties keep corpus
// order. An empty index returns an empty slice without calling the embedder.
func (idx *Index) Rank(ctx context.Context, jobText string, topK int) ([]types.Experience, error) {
	if idx.Len() == 0 || topK <= 0 {
		return []types.Experience{}, nil
	}

	jobVec, err := idx.embedder.Embed(ctx, jobText)
	if err != nil {
		return nil, &Error{Message: "failed to embed job description", Cause: err}
	}

	matches := make([]scoredMatch, len(idx.vectors))
	for i, vec := range idx.vectors {
		matches[i] = scoredMatch{position: i, score: dotProduct(jobVec, vec)}
	}

	// Stable sort: equal scores keep corpus flattening order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if topK > len(matches) {
		topK = len(matches)
	}

	result := make([]types.Experience, topK)
	for i := 0; i < topK; i++ {
		result[i] = idx.experiences[matches[i].position]
	}
	return result, nil
}

// dotProduct computes the dot product of two vectors, treating missing tail
// dimensions as zero if lengths differ.
func dotProduct(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
