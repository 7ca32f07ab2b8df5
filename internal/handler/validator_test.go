package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, ErrMsgInvalidRequestFormat, errs["error"])
	})

	t.Run("field errors use lowercase names", func(t *testing.T) {
		req := SetCustomGreetingRequest{Key: "", Phrase: string(make([]byte, 201))}
		err := GetValidator().ValidateStruct(req)
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "This field is required", errs["key"])
		assert.Equal(t, "Must be at most 200 characters", errs["phrase"])
	})
}
