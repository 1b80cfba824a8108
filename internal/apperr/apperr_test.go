package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, Infrastructure, KindOf(base))
	assert.Equal(t, NotFound, KindOf(E(NotFound, "find user", base)))
	assert.Equal(t, ValidationFailed, KindOf(fmt.Errorf("seed: %w", E(ValidationFailed, "create user", base))))
	assert.Nil(t, E(NotFound, "noop", nil))
}

func TestErrorUnwrap(t *testing.T) {
	sentinel := errors.New("record not found")
	err := E(NotFound, "find user", sentinel)

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, "find user: record not found", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Infrastructure.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ValidationFailed.HTTPStatus())
}
