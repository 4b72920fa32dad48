package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	err := NotFound("package %s", "p1")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "package p1: not found", err.Error())

	assert.True(t, errors.Is(Forbidden("no access"), ErrForbidden))
	assert.True(t, errors.Is(Conflict("duplicate"), ErrConflict))
	assert.True(t, errors.Is(InvalidTransition("frozen"), ErrInvalidTransition))
	assert.True(t, errors.Is(Validation("bad input"), ErrValidation))
	assert.True(t, errors.Is(Unauthenticated("no session"), ErrUnauthenticated))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Forbidden("x"), http.StatusForbidden},
		{Conflict("x"), http.StatusConflict},
		{InvalidTransition("x"), http.StatusBadRequest},
		{Validation("x"), http.StatusBadRequest},
		{Unauthenticated("x"), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HTTPStatus(c.err))
	}
}

func TestWrappedDeepChainStillClassifies(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("inner %s", "id"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}
