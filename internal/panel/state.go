package panel

import "github.com/glidelabs/glidectl/internal/share"

// Deflection limits for the manual rudder/elevator setpoints, degrees.
const (
	MinDeflectionDeg = -90.0
	MaxDeflectionDeg = 90.0

	DefaultGain = 1.0
)

// ControlState is the full set of control intent shared between the panel
// handlers (writers) and the control task (reader). It is constructed once at
// startup and handed by pointer to both sides; nothing else touches the flags.
type ControlState struct {
	// Armed is level-triggered: the control task polls it with Get.
	Armed *share.Flag[bool]
	// Calibrate is a one-shot trigger consumed with Take so a single request
	// zeroes the sensors exactly once.
	Calibrate *share.Flag[bool]

	// Manual control-surface setpoints, degrees.
	Rudder   *share.Flag[float64]
	Elevator *share.Flag[float64]

	// Gains applied to the setpoints by the control task.
	RudderGain   *share.Flag[float64]
	ElevatorGain *share.Flag[float64]
}

func NewControlState() *ControlState {
	return &ControlState{
		Armed:        share.New(false),
		Calibrate:    share.New(false),
		Rudder:       share.New(0.0),
		Elevator:     share.New(0.0),
		RudderGain:   share.NewWithRest(DefaultGain, DefaultGain),
		ElevatorGain: share.NewWithRest(DefaultGain, DefaultGain),
	}
}
