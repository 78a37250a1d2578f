package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stateid/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
		assert.Nil(t, errs.Fields())
	})

	t.Run("per-field access", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "number", Message: "too long"})
		errs.Add(validator.ValidationError{Field: "us_state", Message: "XX is not valid"})
		errs.Add(validator.ValidationError{Field: "number", Message: "bad format"})

		assert.True(t, errs.Has("number"))
		assert.False(t, errs.Has("name"))
		assert.Equal(t, []string{"too long", "bad format"}, errs.Get("number"))
		assert.Len(t, errs.GetErrors("us_state"), 1)
		assert.Equal(t, []string{"number", "us_state"}, errs.Fields())
		assert.Equal(t, "validation failed: number: too long; us_state: XX is not valid; number: bad format", errs.Error())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
		assert.NoError(t, validator.Apply(validator.RequiredString("name", "x")))
	})

	t.Run("collects every failure in rule order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", " "),
			validator.MaxLenString("name", "ok", 5),
			validator.MaxLenString("code", "toolong", 3),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "validation.max_length", verrs[1].TranslationKey)
		assert.Equal(t, 3, verrs[1].TranslationValues["max"])
		assert.Equal(t, []string{"must be at most 3 characters long"}, verrs.Get("code"))
	})

	t.Run("max length counts characters", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.MaxLenString("name", "ñññ", 3)))
		assert.Error(t, validator.Apply(validator.MaxLenString("name", strings.Repeat("a", 4), 3)))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))

	wrapped := fmt.Errorf("saving record: %w", validator.Apply(validator.RequiredString("name", "")))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("name"))
	assert.True(t, validator.IsValidationError(wrapped))
}
