package ranking

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deep-job-seek/internal/types"
)

// keywordEmbedder produces deterministic vectors: one dimension per keyword,
// set to 1 when the text mentions it.
type keywordEmbedder struct {
	keywords []string
	calls    atomic.Int32
	failOn   string
}

func (e *keywordEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.calls.Add(1)
	if e.failOn != "" && strings.Contains(text, e.failOn) {
		return nil, fmt.Errorf("embedding unavailable")
	}
	lower := strings.ToLower(text)
	vec := make([]float32, len(e.keywords))
	for i, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			vec[i] = 1
		}
	}
	return vec, nil
}

func testExperiences() []types.Experience {
	return []types.Experience{
		{Person: "Backend Dev", Position: "Python Engineer", Summary: "Built Flask services with Docker"},
		{Person: "Frontend Dev", Position: "React Engineer", Summary: "Built React dashboards"},
		{Person: "Data Scientist", Position: "ML Engineer", Summary: "Python machine learning with TensorFlow"},
		{Person: "Ops Engineer", Position: "DevOps Engineer", Summary: "Kubernetes and Docker on AWS"},
	}
}

func newTestEmbedder() *keywordEmbedder {
	return &keywordEmbedder{keywords: []string{"python", "flask", "docker", "react", "tensorflow", "kubernetes", "aws"}}
}

func TestNewIndex_EmbedsEveryExperience(t *testing.T) {
	embedder := newTestEmbedder()
	experiences := testExperiences()

	idx, err := NewIndex(context.Background(), embedder, experiences)

	require.NoError(t, err)
	assert.Equal(t, len(experiences), idx.Len())
	assert.Equal(t, int32(len(experiences)), embedder.calls.Load())
}

func TestRank_OrdersByDotProduct(t *testing.T) {
	embedder := newTestEmbedder()
	idx, err := NewIndex(context.Background(), embedder, testExperiences())
	require.NoError(t, err)

	matches, err := idx.Rank(context.Background(), "Python Flask Docker role", 4)

	require.NoError(t, err)
	require.Len(t, matches, 4)
	// The Python/Flask/Docker experience overlaps on three dimensions.
	assert.Equal(t, "Backend Dev", matches[0].Person)
	// React overlaps on none and sorts last.
	assert.Equal(t, "Frontend Dev", matches[3].Person)
}

func TestRank_TopKLimitsResults(t *testing.T) {
	embedder := newTestEmbedder()
	idx, err := NewIndex(context.Background(), embedder, testExperiences())
	require.NoError(t, err)

	matches, err := idx.Rank(context.Background(), "python", 2)

	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRank_TopKLargerThanIndex(t *testing.T) {
	embedder := newTestEmbedder()
	idx, err := NewIndex(context.Background(), embedder, testExperiences())
	require.NoError(t, err)

	matches, err := idx.Rank(context.Background(), "python", 50)

	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestRank_TiesKeepIndexOrder(t *testing.T) {
	embedder := newTestEmbedder()
	experiences := []types.Experience{
		{Person: "First", Position: "Docker Engineer"},
		{Person: "Second", Position: "Docker Engineer"},
		{Person: "Third", Position: "Docker Engineer"},
	}
	idx, err := NewIndex(context.Background(), embedder, experiences)
	require.NoError(t, err)

	matches, err := idx.Rank(context.Background(), "docker", 3)

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "First", matches[0].Person)
	assert.Equal(t, "Second", matches[1].Person)
	assert.Equal(t, "Third", matches[2].Person)
}

func TestRank_EmptyIndexSkipsEmbedding(t *testing.T) {
	embedder := newTestEmbedder()
	idx, err := NewIndex(context.Background(), embedder, nil)
	require.NoError(t, err)
	embedder.calls.Store(0)

	matches, err := idx.Rank(context.Background(), "python", 3)

	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Equal(t, int32(0), embedder.calls.Load())
}

func TestRank_ZeroTopK(t *testing.T) {
	embedder := newTestEmbedder()
	idx, err := NewIndex(context.Background(), embedder, testExperiences())
	require.NoError(t, err)

	matches, err := idx.Rank(context.Background(), "python", 0)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestNewIndex_EmbeddingFailure(t *testing.T) {
	embedder := newTestEmbedder()
	embedder.failOn = "TensorFlow"

	_, err := NewIndex(context.Background(), embedder, testExperiences())

	require.Error(t, err)
	var rankErr *Error
	assert.ErrorAs(t, err, &rankErr)
}

func TestRank_QueryEmbeddingFailure(t *testing.T) {
	embedder := newTestEmbedder()
	idx, err := NewIndex(context.Background(), embedder, testExperiences())
	require.NoError(t, err)
	embedder.failOn = "unreachable"

	_, err = idx.Rank(context.Background(), "unreachable query", 3)

	require.Error(t, err)
}

func TestDotProduct(t *testing.T) {
	assert.InDelta(t, 11.0, dotProduct([]float32{1, 2, 3}, []float32{3, 1, 2}), 0.001)
	assert.Equal(t, 0.0, dotProduct(nil, []float32{1}))
	// Mismatched lengths use the shorter vector.
	assert.InDelta(t, 3.0, dotProduct([]float32{1, 1}, []float32{3, 0, 9}), 0.001)
}
