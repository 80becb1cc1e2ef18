package sl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	err := errors.New("something broke")
	attr := Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "something broke", attr.Value.String())
}
