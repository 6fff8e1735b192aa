package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/grindlemire/go-realm"
	"github.com/shirou/gopsutil/v4/cpu"
)

// CPU samples total CPU utilisation through gopsutil. Each poll compares the
// CPU times against the previous poll, so the register interval is also the
// sampling window.
type CPU struct {
	ctx     context.Context
	percent func(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error)
}

var _ realm.Poller = (*CPU)(nil)

// NewCPU creates a CPU feed. Polls fail once ctx is done.
func NewCPU(ctx context.Context) *CPU {
	return &CPU{ctx: ctx, percent: cpu.PercentWithContext}
}

// Poll emits the utilisation since the previous poll.
func (c *CPU) Poll() (realm.Event, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	total, err := c.percent(c.ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	if len(total) == 0 {
		return nil, nil
	}
	return realm.UserEvent[CPULoad]{Payload: CPULoad(clamp01(total[0] / 100))}, nil
}
