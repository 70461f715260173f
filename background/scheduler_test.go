package background

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/mocks"
)

func TestNewScheduler(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sender := mocks.NewMockTaskSender(ctl)
	sender.EXPECT().SendTask(HapusTokenKedaluwarsaSignature()).Return(nil, nil).Times(1)

	c, err := NewScheduler(sender)
	assert.NoError(t, err)

	entries := c.Entries()
	assert.Len(t, entries, 1)

	// run the job once without waiting for the next hour
	entries[0].Job.Run()
}

func TestHapusTokenKedaluwarsaSignature(t *testing.T) {
	sig := HapusTokenKedaluwarsaSignature()
	assert.Equal(t, consts.TaskHapusTokenKedaluwarsa, sig.Name)
	assert.Empty(t, sig.Args)
}
