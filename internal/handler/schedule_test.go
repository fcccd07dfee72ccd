package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

func TestAddScheduleItem_201(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/schedule", map[string]any{
		"day":      "zaterdag",
		"time":     "18:30",
		"activity": "barbecue",
		"addedBy":  "Jesse",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var item domain.ScheduleItem
	decodeInto(t, rec, &item)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "zaterdag", item.Day)
	assert.Equal(t, "18:30", item.Time)
}

func TestAddScheduleItem_400_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/schedule", map[string]any{
		"day":     "zaterdag",
		"addedBy": "Jesse",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveScheduleItem_200(t *testing.T) {
	h, st := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/schedule", map[string]any{
		"day":      "zaterdag",
		"time":     "18:30",
		"activity": "barbecue",
		"addedBy":  "Jesse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var item domain.ScheduleItem
	decodeInto(t, rec, &item)

	rec = do(t, h, http.MethodDelete, "/api/schedule", map[string]any{"id": item.ID})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	data, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Schedule)
}
