package code

import (
	"net/http"
	"testing"

	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/stretchr/testify/assert"
)

func TestRegisteredHTTPStatus(t *testing.T) {
	cases := []struct {
		code int
		http int
	}{
		{ErrSuccess, http.StatusOK},
		{ErrBind, http.StatusBadRequest},
		{ErrValidation, http.StatusUnprocessableEntity},
		{ErrMissingHeader, http.StatusUnauthorized},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrRestaurantNotFound, http.StatusNotFound},
		{ErrMenuAlreadyPublished, http.StatusConflict},
		{ErrDishConflict, http.StatusConflict},
		{ErrAlreadyVoted, http.StatusConflict},
		{ErrNoVotesYet, http.StatusNotFound},
	}

	for _, c := range cases {
		coder := errors.ParseCoderByCode(c.code)
		assert.NotNil(t, coder, "code %d must be registered", c.code)
		assert.Equal(t, c.http, coder.HTTPStatus(), "code %d", c.code)
	}
}

func TestCodedErrorRoundTrip(t *testing.T) {
	err := errors.WithCode(ErrAlreadyVoted, "employee %s already voted", "emp-1")
	assert.True(t, errors.IsCode(err, ErrAlreadyVoted))

	coder := errors.ParseCoderByErr(err)
	assert.Equal(t, http.StatusConflict, coder.HTTPStatus())
}
