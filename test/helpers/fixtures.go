package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// AuthResult is the part of the auth response the fixtures care about.
type AuthResult struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// RegisterCandidate registers a fresh candidate through the API and returns
// the token and user id.
func RegisterCandidate(t *testing.T, ts *TestServer) AuthResult {
	email := fmt.Sprintf("candidate_%d@test.com", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Test Candidate",
		"email":    email,
		"password": "password123",
		"skills":   []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "candidate registration failed: "+body)

	var result AuthResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.NotEmpty(t, result.Token)
	return result
}

// RegisterEmployer registers a fresh employer through the API.
func RegisterEmployer(t *testing.T, ts *TestServer) AuthResult {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/employers/register", "", map[string]interface{}{
		"name":        "Test Employer",
		"email":       email,
		"password":    "password123",
		"companyName": "Test Company Inc.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "employer registration failed: "+body)

	var result AuthResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.NotEmpty(t, result.Token)
	return result
}

// PostJob creates a job as the given employer and returns its id.
func PostJob(t *testing.T, ts *TestServer, employerToken string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/jobs/post", employerToken, map[string]interface{}{
		"company":  "Test Company Inc.",
		"title":    "Backend Engineer",
		"type":     "full-time",
		"location": "Remote",
		"salary":   "100k",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation failed: "+body)

	var result struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	require.NotEmpty(t, result.Job.ID)
	return result.Job.ID
}
