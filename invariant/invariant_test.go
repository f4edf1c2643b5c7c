package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	var got []string
	SetReporter(func(msg string) { got = append(got, msg) })
	defer SetReporter(nil)

	assert.True(t, Check(true, "fine"))
	assert.Empty(t, got)

	if Enabled {
		assert.Panics(t, func() { Check(false, "lives < 0") })
		return
	}
	assert.False(t, Check(false, "lives < 0"))
	assert.Equal(t, []string{"lives < 0"}, got)
}
