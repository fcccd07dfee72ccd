package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

func addActivity(t *testing.T, h http.Handler, proposer domain.Participant, title string) domain.Activity {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/activities", map[string]any{
		"participantId":   proposer.ID,
		"participantName": proposer.Name,
		"title":           title,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var a domain.Activity
	decodeInto(t, rec, &a)
	return a
}

func TestAddActivity_201(t *testing.T) {
	h, _ := newTestHandler(t)
	proposer := join(t, h, "Jesse")

	rec := do(t, h, http.MethodPost, "/api/activities", map[string]any{
		"participantId":   proposer.ID,
		"participantName": proposer.Name,
		"title":           "kanoën",
		"description":     "twee uur op de rivier",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var a domain.Activity
	decodeInto(t, rec, &a)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "kanoën", a.Title)
	require.NotNil(t, a.Votes)
	assert.Empty(t, a.Votes)
}

func TestAddActivity_400_MissingTitle(t *testing.T) {
	h, _ := newTestHandler(t)
	proposer := join(t, h, "Jesse")

	rec := do(t, h, http.MethodPost, "/api/activities", map[string]any{
		"participantId":   proposer.ID,
		"participantName": proposer.Name,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleVote_200(t *testing.T) {
	h, _ := newTestHandler(t)
	proposer := join(t, h, "Jesse")
	voter := join(t, h, "Sam")
	activity := addActivity(t, h, proposer, "kanoën")

	rec := do(t, h, http.MethodPut, "/api/activities", map[string]any{
		"activityId":    activity.ID,
		"participantId": voter.ID,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var voted domain.Activity
	decodeInto(t, rec, &voted)
	assert.Equal(t, []string{voter.ID}, voted.Votes)

	// same call again withdraws the vote
	rec = do(t, h, http.MethodPut, "/api/activities", map[string]any{
		"activityId":    activity.ID,
		"participantId": voter.ID,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var unvoted domain.Activity
	decodeInto(t, rec, &unvoted)
	assert.Empty(t, unvoted.Votes)
}

func TestToggleVote_404_UnknownActivity(t *testing.T) {
	h, st := newTestHandler(t)
	voter := join(t, h, "Sam")
	before, err := st.Load(context.Background())
	require.NoError(t, err)

	rec := do(t, h, http.MethodPut, "/api/activities", map[string]any{
		"activityId":    "no-such-activity",
		"participantId": voter.ID,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Activity not found", errorMessage(t, rec))

	after, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after, "a failed toggle must not write")
}

func TestToggleVote_400_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPut, "/api/activities", map[string]any{
		"activityId": "a1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "activityId and participantId are required", errorMessage(t, rec))
}

func TestRemoveActivity_200(t *testing.T) {
	h, st := newTestHandler(t)
	proposer := join(t, h, "Jesse")
	activity := addActivity(t, h, proposer, "kanoën")

	rec := do(t, h, http.MethodDelete, "/api/activities", map[string]any{"id": activity.ID})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	data, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Activities)
}
