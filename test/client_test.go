//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/2beens/trainsmart/internal/identity"
)

// newUser seeds a profile for a fresh user id and returns the id.
func (s *IntegrationTestSuite) newUser() string {
	userID := uuid.NewString()
	_, err := s.DB.Exec(
		`INSERT INTO user_profiles (user_id, first_name, last_name, sex, email) VALUES ($1, $2, $3, $4, $5)`,
		userID, gofakeit.FirstName(), gofakeit.LastName(), 1, gofakeit.Email(),
	)
	require.NoError(s.T(), err)
	return userID
}

// do sends a request as the given user, body is JSON encoded when not nil.
func (s *IntegrationTestSuite) do(ctx context.Context, userID, method, path string, body any) *http.Response {
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&reqBody).Encode(body))
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, &reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.HeaderUserID, userID)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

// decode reads the response into out and closes the body.
func (s *IntegrationTestSuite) decode(resp *http.Response, out any) {
	defer resp.Body.Close()
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(out))
}

// formOutcome mirrors forms.Outcome with a typed payload.
type formOutcome[T any] struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors"`
	Redirect    string            `json:"redirect"`
	Data        T                 `json:"data"`
}
