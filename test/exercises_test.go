//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/exercises"
	"github.com/2beens/trainsmart/internal/forms"
	"github.com/2beens/trainsmart/internal/musclegroups"
	"github.com/2beens/trainsmart/internal/picker"
)

func (s *IntegrationTestSuite) createExercise(ctx context.Context, userID, name string) exercises.Exercise {
	resp := s.do(ctx, userID, "POST", "/exercises", map[string]any{
		"exerciseName":           name,
		"exerciseDescription":    gofakeit.Sentence(6),
		"isTimeBased":            false,
		"primaryMuscleGroupId":   11,
		"secondaryMuscleGroupId": musclegroups.None,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var out formOutcome[exercises.Exercise]
	s.decode(resp, &out)
	require.True(s.T(), out.Success)
	assert.Equal(s.T(), forms.MessageExerciseCreated, out.Message)
	return out.Data
}

func (s *IntegrationTestSuite) TestExercises_CreateListEditDelete() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := s.newUser()
	name := gofakeit.Noun() + " press"
	created := s.createExercise(ctx, userID, name)
	assert.Equal(s.T(), name, created.Name)
	assert.Nil(s.T(), created.SecondaryMuscleGroupID)

	var stored int
	require.NoError(s.T(), s.DB.QueryRow(
		`SELECT count(*) FROM exercises WHERE user_id = $1 AND secondary_muscle_group_id IS NULL`, userID,
	).Scan(&stored))
	assert.Equal(s.T(), 1, stored)

	// duplicate name is a field error
	resp := s.do(ctx, userID, "POST", "/exercises", map[string]any{
		"exerciseName":         name,
		"primaryMuscleGroupId": 11,
	})
	require.Equal(s.T(), http.StatusConflict, resp.StatusCode)
	var dup formOutcome[any]
	s.decode(resp, &dup)
	assert.Equal(s.T(), forms.MessageExerciseNameTaken, dup.FieldErrors["exerciseName"])

	// own exercises plus the shared templates
	resp = s.do(ctx, userID, "GET", "/exercises", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var listed envelope.Result[[]exercises.Exercise]
	s.decode(resp, &listed)
	require.True(s.T(), listed.Success)
	assert.Len(s.T(), listed.Data, 2)

	resp = s.do(ctx, userID, "PUT", fmt.Sprintf("/exercises/%d", created.ID), map[string]any{
		"exerciseName":         name + " v2",
		"isTimeBased":          true,
		"primaryMuscleGroupId": 14,
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var edited formOutcome[exercises.Exercise]
	s.decode(resp, &edited)
	assert.Equal(s.T(), "/exercises", edited.Redirect)
	assert.Equal(s.T(), name+" v2", edited.Data.Name)
	assert.True(s.T(), edited.Data.IsTimeBased)

	resp = s.do(ctx, userID, "DELETE", fmt.Sprintf("/exercises/%d", created.ID), nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(ctx, userID, "DELETE", fmt.Sprintf("/exercises/%d", created.ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) TestExercises_FromTemplate() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := s.newUser()

	var templateID int64
	require.NoError(s.T(), s.DB.QueryRow(
		`SELECT id FROM exercises WHERE is_template = true AND name = 'Barbell Squat'`,
	).Scan(&templateID))

	resp := s.do(ctx, userID, "GET", fmt.Sprintf("/forms/exercises/template/%d", templateID), nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var page envelope.Result[forms.ExercisePage]
	s.decode(resp, &page)
	assert.Equal(s.T(), "Barbell Squat", page.Data.Values.Name)

	resp = s.do(ctx, userID, "POST", fmt.Sprintf("/exercises/from-template/%d", templateID), map[string]any{
		"exerciseName":         "Barbell Squat",
		"primaryMuscleGroupId": 2,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	var out formOutcome[exercises.Exercise]
	s.decode(resp, &out)
	assert.Equal(s.T(), "/exercises", out.Redirect)
	assert.False(s.T(), out.Data.IsTemplate)
	require.NotNil(s.T(), out.Data.UserID)
	assert.Equal(s.T(), userID, *out.Data.UserID)
}

func (s *IntegrationTestSuite) TestExercises_PickerDelete() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := s.newUser()
	created := s.createExercise(ctx, userID, gofakeit.Noun()+" row")

	resp := s.do(ctx, userID, "GET", "/pickers/"+picker.FieldExercises, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var view envelope.Result[picker.View]
	s.decode(resp, &view)
	assert.Len(s.T(), view.Data.Options, 2)

	resp = s.do(ctx, userID, "POST", fmt.Sprintf("/pickers/%s/options/%d/delete", picker.FieldExercises, created.ID), nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var acted envelope.Result[picker.ActResult]
	s.decode(resp, &acted)
	require.Len(s.T(), acted.Data.Options, 1)
	assert.Equal(s.T(), "Barbell Squat", acted.Data.Options[0].Label)
}

func (s *IntegrationTestSuite) pickerValues(ctx context.Context, userID, name string) []int64 {
	resp := s.do(ctx, userID, "GET", "/pickers/"+name, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var view envelope.Result[picker.View]
	s.decode(resp, &view)

	vals := make([]int64, 0, len(view.Data.Options))
	for _, o := range view.Data.Options {
		vals = append(vals, o.Value)
	}
	return vals
}

func (s *IntegrationTestSuite) TestExercises_PickerFollowsForms() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := s.newUser()
	before := s.pickerValues(ctx, userID, picker.FieldExercises)
	require.Len(s.T(), before, 1)

	created := s.createExercise(ctx, userID, gofakeit.Noun()+" curl")
	assert.Contains(s.T(), s.pickerValues(ctx, userID, picker.FieldExercises), created.ID)

	resp := s.do(ctx, userID, "DELETE", fmt.Sprintf("/exercises/%d", created.ID), nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(s.T(), before, s.pickerValues(ctx, userID, picker.FieldExercises))
}

func (s *IntegrationTestSuite) TestExercises_FromTemplate_OwnExerciseRejected() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := s.newUser()
	own := s.createExercise(ctx, userID, gofakeit.Noun()+" fly")

	resp := s.do(ctx, userID, "GET", fmt.Sprintf("/forms/exercises/template/%d", own.ID), nil)
	assert.Equal(s.T(), http.StatusPreconditionFailed, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(ctx, userID, "POST", fmt.Sprintf("/exercises/from-template/%d", own.ID), map[string]any{
		"exerciseName":         gofakeit.Noun() + " copy",
		"primaryMuscleGroupId": 11,
	})
	assert.Equal(s.T(), http.StatusPreconditionFailed, resp.StatusCode)
	resp.Body.Close()
}
