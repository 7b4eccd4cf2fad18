package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, 0, ExitCodeOf(nil))
	assert.Equal(t, 1, ExitCodeOf(cause))
	assert.Equal(t, 2, ExitCodeOf(New(ExitUsage, "bad flag")))
	assert.Equal(t, 1, ExitCodeOf(New(0, "zero is not an error code")))
	assert.Equal(t, 2, ExitCodeOf(fmt.Errorf("outer: %w", Usage("config", cause))))
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "parse", New(1, "parse").Error())
	assert.Equal(t, "parse: boom", Wrap(1, "parse", cause).Error())
	assert.Equal(t, "parse 3", Newf(1, "parse %d", 3).Error())
	assert.Equal(t, "parse", Wrap(1, "parse", nil).Error())
	assert.ErrorIs(t, Wrap(1, "parse", cause), cause)
}
