package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/llm"
)

// fakeCapability implements both external capabilities with deterministic
// behavior and call counting.
type fakeCapability struct {
	embedCalls    atomic.Int32
	generateCalls atomic.Int32
	failEmbed     bool
	failGenerate  bool
	generated     string
}

func (c *fakeCapability) Embed(_ context.Context, text string) ([]float32, error) {
	c.embedCalls.Add(1)
	if c.failEmbed {
		return nil, fmt.Errorf("embedding unavailable")
	}
	// One dimension per broad area so rankings are deterministic.
	lower := strings.ToLower(text)
	vec := make([]float32, 3)
	if strings.Contains(lower, "python") {
		vec[0] = 1
	}
	if strings.Contains(lower, "react") {
		vec[1] = 1
	}
	if strings.Contains(lower, "aws") || strings.Contains(lower, "kubernetes") {
		vec[2] = 1
	}
	return vec, nil
}

func (c *fakeCapability) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	c.generateCalls.Add(1)
	if c.failGenerate {
		return "", fmt.Errorf("generation unavailable")
	}
	if c.generated != "" {
		return c.generated, nil
	}
	return "Summary: Seasoned engineer ready to contribute.", nil
}

func newTestRunner(t *testing.T, capability *fakeCapability) *Runner {
	t.Helper()
	runner, err := New(context.Background(), capability, "test-model")
	require.NoError(t, err)
	return runner
}

func TestRun_ProducesValidResume(t *testing.T) {
	capability := &fakeCapability{}
	runner := newTestRunner(t, capability)

	result, err := runner.Run(context.Background(), "Senior Python Developer with Flask experience, 5+ years, Docker expertise", DefaultTopK)

	require.NoError(t, err)
	require.NotNil(t, result.Resume)
	assert.True(t, assembly.Validate(result.Resume))
	assert.LessOrEqual(t, len(result.Resume.Work), 3)
	assert.LessOrEqual(t, len(result.Resume.Skills), 10)
	assert.Len(t, result.Matches, DefaultTopK)
	assert.Contains(t, result.Requirements, "Python")
	assert.Equal(t, "Seasoned engineer ready to contribute.", result.Resume.Basics.Summary)
	assert.Equal(t, "test-model", result.Resume.Metadata.Model)
}

func TestRun_EmptyInputSkipsCapabilities(t *testing.T) {
	capability := &fakeCapability{}
	runner := newTestRunner(t, capability)
	capability.embedCalls.Store(0)
	capability.generateCalls.Store(0)

	_, err := runner.Run(context.Background(), "   \n\t ", DefaultTopK)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, int32(0), capability.embedCalls.Load())
	assert.Equal(t, int32(0), capability.generateCalls.Load())
}

func TestRun_EmbeddingFailureReturnsNoPartialResult(t *testing.T) {
	capability := &fakeCapability{}
	runner := newTestRunner(t, capability)
	capability.failEmbed = true

	result, err := runner.Run(context.Background(), "Python developer role", DefaultTopK)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestRun_GenerationFailureFallsBackToTemplate(t *testing.T) {
	capability := &fakeCapability{failGenerate: true}
	runner := newTestRunner(t, capability)

	result, err := runner.Run(context.Background(), "Python developer role", DefaultTopK)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Resume.Basics.Summary, "Experienced professional with expertise in"))
}

func TestRun_TopKDefaultsWhenUnset(t *testing.T) {
	capability := &fakeCapability{}
	runner := newTestRunner(t, capability)

	result, err := runner.Run(context.Background(), "Python developer role", 0)

	require.NoError(t, err)
	assert.Len(t, result.Matches, DefaultTopK)
}

func TestRun_SkillFitWithinUnitInterval(t *testing.T) {
	capability := &fakeCapability{}
	runner := newTestRunner(t, capability)

	result, err := runner.Run(context.Background(), "Python, Docker, Kubernetes and AWS role", DefaultTopK)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.SkillFit, 0.0)
	assert.LessOrEqual(t, result.SkillFit, 1.0)
}

func TestNew_EmbedsCorpusUpFront(t *testing.T) {
	capability := &fakeCapability{}
	runner := newTestRunner(t, capability)

	assert.Equal(t, int32(runner.index.Len()), capability.embedCalls.Load())
	assert.Greater(t, runner.index.Len(), 0)
}

func TestNew_CorpusEmbeddingFailure(t *testing.T) {
	capability := &fakeCapability{failEmbed: true}

	_, err := New(context.Background(), capability, "test-model")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build corpus index")
}
