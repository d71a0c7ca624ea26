package control

import (
	"github.com/glidelabs/glidectl/internal/observability"
	"github.com/rs/zerolog"
)

// LogSurface is the actuation backend for hosts without servo hardware: it
// records what the control task would command. A hardware build supplies its
// own Surface implementation instead.
type LogSurface struct {
	log zerolog.Logger
}

func NewLogSurface() *LogSurface {
	return &LogSurface{log: observability.Component("surface")}
}

func (s *LogSurface) SetArmed(armed bool) {
	s.log.Info().Bool("armed", armed).Msg("surface_arm")
}

func (s *LogSurface) Zero() {
	s.log.Info().Msg("surface_zero")
}

func (s *LogSurface) SetDeflection(rudder, elevator float64) {
	s.log.Debug().Float64("rudder_deg", rudder).Float64("elevator_deg", elevator).Msg("surface_deflect")
}
