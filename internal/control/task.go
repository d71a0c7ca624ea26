// Package control runs the consumer side of the shared control flags: a
// fixed-period task that polls operator intent and drives the flight-control
// surface. It is scheduled independently of the serving task and shares
// nothing with it except the flags.
package control

import (
	"context"
	"time"

	"github.com/glidelabs/glidectl/internal/observability"
	"github.com/glidelabs/glidectl/internal/panel"
	"github.com/rs/zerolog"
)

const DefaultPeriod = 10 * time.Millisecond

// Surface is the actuation boundary. Implementations must be cheap and
// non-blocking; the task calls them from its poll loop.
type Surface interface {
	// SetArmed engages or disengages the control loop.
	SetArmed(armed bool)
	// Zero captures current sensor readings as the neutral reference.
	Zero()
	// SetDeflection applies gain-scaled rudder/elevator setpoints, degrees.
	SetDeflection(rudder, elevator float64)
}

// Task polls the control state on a fixed period. Write coalescing is
// intended: the task acts on the most recent intent and may never observe
// intermediate writes.
type Task struct {
	state   *panel.ControlState
	surface Surface
	period  time.Duration
	log     zerolog.Logger

	armed bool
}

func NewTask(state *panel.ControlState, surface Surface, period time.Duration) *Task {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Task{
		state:   state,
		surface: surface,
		period:  period,
		log:     observability.Component("control"),
	}
}

// Run polls until the context is cancelled. On shutdown the surface is left
// disarmed.
func (t *Task) Run(ctx context.Context) {
	t.log.Info().Dur("period", t.period).Msg("control_task_started")
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if t.armed {
				t.armed = false
				t.surface.SetArmed(false)
			}
			t.log.Info().Msg("control_task_stopped")
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// Tick executes one poll pass. Exposed so tests can step the task without
// real time.
func (t *Task) Tick() {
	observability.RecordControlTick()

	// Take, not Get: one request zeroes exactly once. The bridge already
	// dropped the arm flag when it posted this.
	if t.state.Calibrate.Take() {
		t.surface.Zero()
		observability.RecordCalibration()
		t.log.Info().Msg("sensors_zeroed")
	}

	armed := t.state.Armed.Get()
	if armed != t.armed {
		t.armed = armed
		t.surface.SetArmed(armed)
		t.log.Info().Bool("armed", armed).Msg("arm_state_changed")
	}

	if t.armed {
		rudder := t.state.Rudder.Get() * t.state.RudderGain.Get()
		elevator := t.state.Elevator.Get() * t.state.ElevatorGain.Get()
		t.surface.SetDeflection(rudder, elevator)
	}
}
