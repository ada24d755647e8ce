package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid CPF", New(CodeInvalidResource, "Invalid CPF").Error())

	cause := errors.New("disk full")
	wrapped := Wrap(cause, CodeInternal, "failed to save order")
	assert.Equal(t, "failed to save order: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestCodeLookup(t *testing.T) {
	base := New(CodeConflict, "Payment must be pending to be Approved")
	chained := fmt.Errorf("approve: %w", base)

	t.Run("finds the code through wrapping", func(t *testing.T) {
		assert.True(t, HasCode(chained, CodeConflict))
		assert.False(t, HasCode(chained, CodeNotFound))
		assert.Equal(t, CodeConflict, CodeOf(chained))

		de, ok := As(chained)
		require.True(t, ok)
		assert.Same(t, base, de)
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, Code(""), CodeOf(nil))
	})
}

func TestClassify(t *testing.T) {
	assert.Nil(t, Classify(nil))

	domainErr := New(CodeNotFound, "Order not found")
	assert.Same(t, domainErr, Classify(domainErr))

	raw := errors.New("connection reset")
	classified := Classify(raw)
	require.NotNil(t, classified)
	assert.Equal(t, CodeInternal, classified.Code)
	assert.ErrorIs(t, classified, raw)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "InvalidResourceError", CodeInvalidResource.Kind())
	assert.Equal(t, "ResourceConflictError", CodeConflict.Kind())
	assert.Equal(t, "ResourceNotFoundError", CodeNotFound.Kind())
	assert.Equal(t, "UnexpectedError", CodeInternal.Kind())
}
