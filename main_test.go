package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitGateAbortWaitsForInitialization(t *testing.T) {
	ctx, gate := newInitGate(context.Background())

	var store string
	go func() {
		<-ctx.Done()
		store = "closed"
		gate.done()
	}()

	assert.True(t, gate.abort())
	assert.Equal(t, "closed", store)
	assert.Equal(t, context.Canceled, ctx.Err())
}

func TestInitGateAbortAfterInitialization(t *testing.T) {
	ctx, gate := newInitGate(context.Background())
	gate.done()

	assert.False(t, gate.abort())
	assert.NoError(t, ctx.Err())
}
