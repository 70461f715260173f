package cadence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgPackDataConverter(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("laporan-id", 12, true)
	assert.NoError(t, err)

	var (
		id    string
		count int
		ok    bool
	)
	assert.NoError(t, c.FromData(data, &id, &count, &ok))
	assert.Equal(t, "laporan-id", id)
	assert.Equal(t, 12, count)
	assert.True(t, ok)
}

func TestMsgPackDataConverterDecodeError(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("only-one")
	assert.NoError(t, err)

	var id, missing string
	assert.Error(t, c.FromData(data, &id, &missing))
}
