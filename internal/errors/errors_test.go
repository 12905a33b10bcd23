package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperr "github.com/characterforge/characterforge/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := apperr.NotFoundf("character %q not found", "abc")
	wrapped := apperr.Wrap(base, "loading sheet")

	assert.Equal(t, apperr.CodeNotFound, wrapped.Code)
	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "loading sheet: character \"abc\" not found", wrapped.Error())
}

func TestWrapForeignError(t *testing.T) {
	wrapped := apperr.Wrap(stderrors.New("boom"), "doing thing")

	assert.Equal(t, apperr.CodeUnknown, wrapped.Code)
	assert.ErrorContains(t, wrapped, "doing thing: boom")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.Wrapf(nil, "nothing %d", 1))
}

func TestWithMeta(t *testing.T) {
	err := apperr.InvalidArgument("level out of range").
		WithMeta("level", 42).
		WithMeta("field", "level")

	assert.Equal(t, 42, err.Meta["level"])
	assert.Equal(t, "level", err.Meta["field"])
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		err  error
		code apperr.Code
	}{
		{apperr.NotFound("x"), apperr.CodeNotFound},
		{apperr.InvalidArgument("x"), apperr.CodeInvalidArgument},
		{apperr.AlreadyExists("x"), apperr.CodeAlreadyExists},
		{apperr.PermissionDenied("x"), apperr.CodePermissionDenied},
		{apperr.Unauthenticated("x"), apperr.CodeUnauthenticated},
		{apperr.Unavailable("x"), apperr.CodeUnavailable},
		{apperr.Internal("x"), apperr.CodeInternal},
		{apperr.Validation("x"), apperr.CodeValidation},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, apperr.GetCode(tc.err), tc.code)
	}

	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(stderrors.New("plain")))
}

func TestErrorsAsThroughFmtWrap(t *testing.T) {
	base := apperr.PermissionDenied("not your campaign")
	wrapped := fmt.Errorf("handling request: %w", base)

	assert.True(t, apperr.IsPermissionDenied(wrapped))
}
