package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindPermission, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	sentinel := Validation("slot taken")

	assert.Equal(t, KindValidation, KindOf(sentinel))
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("create booking: %w", sentinel)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestSentinelsMatchByIdentity(t *testing.T) {
	slotTaken := Validation("this time slot is already booked")
	sameText := Validation("this time slot is already booked")

	wrapped := fmt.Errorf("create booking: %w", slotTaken)
	assert.True(t, errors.Is(wrapped, slotTaken))
	assert.False(t, errors.Is(wrapped, sameText))
	assert.Equal(t, "this time slot is already booked", slotTaken.Error())
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "only customers can create bookings", MessageOf(Permission("only customers can create bookings"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("pq: relation does not exist"), "fallback"))
	assert.Equal(t, "booking not found", MessageOf(fmt.Errorf("load: %w", NotFound("booking not found")), "fallback"))
}
