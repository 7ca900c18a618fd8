//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/musclegroups"
	"github.com/2beens/trainsmart/internal/profiles"
)

func (s *IntegrationTestSuite) TestProfile_GetAndEdit() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := s.newUser()

	resp := s.do(ctx, userID, "GET", "/profile", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var fetched envelope.Result[profiles.UserProfile]
	s.decode(resp, &fetched)
	assert.Equal(s.T(), userID, fetched.Data.UserID)

	firstName := gofakeit.FirstName()
	resp = s.do(ctx, userID, "PUT", "/profile", map[string]any{
		"firstName":   firstName,
		"lastName":    gofakeit.LastName(),
		"sex":         2,
		"dateOfBirth": "1990-04-21",
		"height":      171.5,
		"weight":      64.2,
		"isImperial":  false,
		"email":       gofakeit.Email(),
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var edited formOutcome[profiles.UserProfile]
	s.decode(resp, &edited)
	assert.Equal(s.T(), "/profile", edited.Redirect)
	assert.Equal(s.T(), firstName, edited.Data.FirstName)
	require.NotNil(s.T(), edited.Data.DateOfBirth)
	assert.Equal(s.T(), "1990-04-21", *edited.Data.DateOfBirth)

	// the cached copy expires quickly in the test config
	assert.Eventually(s.T(), func() bool {
		resp := s.do(ctx, userID, "GET", "/profile", nil)
		var res envelope.Result[profiles.UserProfile]
		s.decode(resp, &res)
		return res.Data.FirstName == firstName
	}, 5*time.Second, 250*time.Millisecond)

	resp = s.do(ctx, userID, "PUT", "/profile", map[string]any{
		"firstName": " ",
		"email":     "nope",
	})
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
	var invalid formOutcome[any]
	s.decode(resp, &invalid)
	assert.Len(s.T(), invalid.FieldErrors, 2)
}

func (s *IntegrationTestSuite) TestProfile_MissingProfileBlocksForms() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := "0b7f9d6a-9a51-4d3f-8c53-2b1f4c0e6a11"
	resp := s.do(ctx, userID, "GET", "/forms/exercises", nil)
	assert.Equal(s.T(), http.StatusPreconditionFailed, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(ctx, userID, "POST", "/programs", map[string]any{"programName": "PPL"})
	assert.Equal(s.T(), http.StatusPreconditionFailed, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) TestPublicAndGuardedRoutes() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.do(ctx, "", "GET", "/muscle-groups", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var groups envelope.Result[[]musclegroups.MuscleGroup]
	s.decode(resp, &groups)
	assert.Len(s.T(), groups.Data, len(musclegroups.All()))

	resp = s.do(ctx, "", "GET", "/exercises", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(ctx, "not-a-uuid", "GET", "/exercises", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

}
