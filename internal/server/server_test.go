package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/pipeline"
	"github.com/jonathan/deep-job-seek/internal/types"
)

// fakePipeline returns a canned result or error without touching any model
// capability.
type fakePipeline struct {
	result *pipeline.Result
	err    error
	topK   int
}

func (p *fakePipeline) Run(_ context.Context, jobDescription string, topK int) (*pipeline.Result, error) {
	p.topK = topK
	if p.err != nil {
		return nil, p.err
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &pipeline.InputError{Message: "please enter a job description"}
	}
	return p.result, nil
}

func cannedResult() *pipeline.Result {
	resume := assembly.FromMatches([]types.Experience{
		{Company: "Tech Corp", Position: "Engineer", Skills: []string{"Python"}},
	}, "A summary.", "test-model")
	return &pipeline.Result{
		Resume:       resume,
		Requirements: []string{"Python"},
		SkillFit:     1.0,
	}
}

func newTestServer(p Pipeline) *Server {
	return New(Config{Port: 0}, p, nil)
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGenerate_Success(t *testing.T) {
	fake := &fakePipeline{result: cannedResult()}
	srv := newTestServer(fake)

	rec := doRequest(t, srv, http.MethodPost, "/generate", `{"job_description": "Python developer", "top_k": 3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, fake.topK)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, "Tech Corp", resp.Result.Resume.Work[0].Company)
	// No archive configured, so no id is assigned.
	assert.Empty(t, resp.ID)
}

func TestGenerate_InvalidJSON(t *testing.T) {
	srv := newTestServer(&fakePipeline{result: cannedResult()})

	rec := doRequest(t, srv, http.MethodPost, "/generate", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_MissingJobDescription(t *testing.T) {
	srv := newTestServer(&fakePipeline{result: cannedResult()})

	rec := doRequest(t, srv, http.MethodPost, "/generate", `{"top_k": 3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_description")
}

func TestGenerate_TopKOutOfRange(t *testing.T) {
	srv := newTestServer(&fakePipeline{result: cannedResult()})

	rec := doRequest(t, srv, http.MethodPost, "/generate", `{"job_description": "Python", "top_k": 100}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_InputErrorMapsTo400(t *testing.T) {
	fake := &fakePipeline{err: &pipeline.InputError{Message: "please enter a job description"}}
	srv := newTestServer(fake)

	rec := doRequest(t, srv, http.MethodPost, "/generate", `{"job_description": "x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "please enter a job description")
}

func TestGenerate_UpstreamFailureMapsTo502(t *testing.T) {
	fake := &fakePipeline{err: fmt.Errorf("embedding backend down")}
	srv := newTestServer(fake)

	rec := doRequest(t, srv, http.MethodPost, "/generate", `{"job_description": "Python developer"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume generation failed")
	// The upstream error detail stays out of the response body.
	assert.NotContains(t, rec.Body.String(), "embedding backend down")
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakePipeline{})

	rec := doRequest(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestArchiveEndpointsWithoutDatabase(t *testing.T) {
	srv := newTestServer(&fakePipeline{})

	rec := doRequest(t, srv, http.MethodGet, "/resumes", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/resumes/3f2e6f3e-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(&fakePipeline{result: cannedResult()})

	rec := doRequest(t, srv, http.MethodGet, "/generate", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
