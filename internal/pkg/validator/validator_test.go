package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		type TestStruct struct {
			Host string `validate:"required"`
		}

		err := gvalidator.New().Struct(TestStruct{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Host': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("node unreachable")

		assert.Equal(t, originalErr, formatError(originalErr))
	})
}

func TestValidate(t *testing.T) {
	type nodeConfig struct {
		Host    string `validate:"required,hostname_port"`
		Network string `validate:"oneof=regtest testnet3 signet mainnet"`
	}

	t.Run("should accept a valid struct", func(t *testing.T) {
		err := Validate(nodeConfig{Host: "127.0.0.1:18443", Network: "regtest"})

		assert.NoError(t, err)
	})

	t.Run("should report every failing field", func(t *testing.T) {
		err := Validate(nodeConfig{Host: "nope", Network: "litecoin"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Host'")
		assert.Contains(t, err.Error(), "'Network'")
	})
}
