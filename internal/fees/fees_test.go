package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		op   domain.Operation
		want int64
	}{
		{domain.OpCreateBoard, 10},
		{domain.OpSubmitFeedback, 1},
		{domain.OpUpvoteFeedback, 1},
		{domain.OpDownvoteFeedback, 1},
		{domain.OpArchiveBoard, 0},
		{domain.OpUnknown, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Amount(c.op), c.op.String())
	}
}

func TestTransferFor(t *testing.T) {
	var platform, caller domain.Identity
	platform[0] = 1
	caller[0] = 2

	schedule := NewSchedule(platform)
	assert.Equal(t, platform, schedule.Platform())

	transfer := schedule.TransferFor(domain.OpCreateBoard, caller)
	assert.Equal(t, caller, transfer.From)
	assert.Equal(t, platform, transfer.To)
	assert.Equal(t, int64(10), transfer.Amount)

	free := schedule.TransferFor(domain.OpArchiveBoard, caller)
	assert.Zero(t, free.Amount)
}
