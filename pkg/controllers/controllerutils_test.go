package controllers

import (
	"net/http"
	"testing"

	"fakeshop-io/api/pkg/services"

	"github.com/pkg/errors"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrUserNotFound, http.StatusNotFound},
		{services.ErrProductNotFound, http.StatusNotFound},
		{services.ErrCategoryNotFound, http.StatusNotFound},
		{services.ErrCartItemNotFound, http.StatusNotFound},
		{services.ErrEmailTaken, http.StatusConflict},
		{services.ErrCartConflict, http.StatusConflict},
		{services.ErrInvalidPassword, http.StatusUnauthorized},
		{services.ErrInvalidToken, http.StatusUnauthorized},
		{services.ErrUserBlocked, http.StatusForbidden},
		{services.ErrUserNotVerified, http.StatusForbidden},
		{services.ErrInvalidAction, http.StatusBadRequest},
		{services.ErrNegativeQuantity, http.StatusBadRequest},
		{services.ErrInvalidOTP, http.StatusBadRequest},
		{services.ErrInvalidProductID, http.StatusBadRequest},
		{services.ErrInvalidCategoryID, http.StatusBadRequest},
		{services.ErrCategoryNameRequired, http.StatusBadRequest},
		{services.ErrTreeTooDeep, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := StatusForError(tc.err); got != tc.want {
			t.Errorf("%v: want %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestStatusForErrorUnwrapsCause(t *testing.T) {
	wrapped := errors.Wrap(services.ErrCartNotFound, "loading cart")
	if got := StatusForError(wrapped); got != http.StatusNotFound {
		t.Fatalf("want 404 for a wrapped sentinel, got %d", got)
	}
}
