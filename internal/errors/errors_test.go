package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, "power engine failed")

	assert.Equal(t, "power engine failed: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeInternalError, GetCode(err))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, fmt.Errorf("bad alpha"))
	require.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidInput, GetCode(err))

	assert.Nil(t, WithCode(CodeInvalidInput, nil))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CodeInvalidInput, GetCode(InvalidInput("x")))
	assert.Equal(t, CodeOptimizationFailure, GetCode(OptimizationFailure("x")))
	assert.Equal(t, CodeConfigInvalid, GetCode(ConfigInvalid("x")))

	degenerate := DegenerateModel(fmt.Errorf("zero denominator"))
	assert.Equal(t, CodeDegenerateModel, GetCode(degenerate))
	assert.Contains(t, degenerate.Error(), "zero denominator")
}

func TestGetCode_UnknownForPlainErrors(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}
