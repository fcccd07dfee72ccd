package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

func TestAddWish_201(t *testing.T) {
	h, _ := newTestHandler(t)
	p := join(t, h, "Jesse")

	rec := do(t, h, http.MethodPost, "/api/wishes", map[string]any{
		"participantId":   p.ID,
		"participantName": p.Name,
		"category":        "eten",
		"text":            "stokbrood met kruidenboter",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var wish domain.Wish
	decodeInto(t, rec, &wish)
	assert.NotEmpty(t, wish.ID)
	assert.Equal(t, "eten", wish.Category)
}

func TestAddWish_400_UnknownCategory(t *testing.T) {
	h, _ := newTestHandler(t)
	p := join(t, h, "Jesse")

	rec := do(t, h, http.MethodPost, "/api/wishes", map[string]any{
		"participantId":   p.ID,
		"participantName": p.Name,
		"category":        "snacks",
		"text":            "chips",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "category must be one of: eten, drinken, overig", errorMessage(t, rec))
}

func TestRemoveWish_200(t *testing.T) {
	h, st := newTestHandler(t)
	p := join(t, h, "Jesse")

	rec := do(t, h, http.MethodPost, "/api/wishes", map[string]any{
		"participantId":   p.ID,
		"participantName": p.Name,
		"category":        "drinken",
		"text":            "speciaalbier",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var wish domain.Wish
	decodeInto(t, rec, &wish)

	rec = do(t, h, http.MethodDelete, "/api/wishes", map[string]any{"id": wish.ID})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	data, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Wishes)
}
