// Package panel bridges the request dispatch table to the shared control
// flags. Each handler performs exactly one logical state transition and
// answers with an acknowledgement page; the response body carries no data.
package panel

import (
	"net/http"
	"strconv"

	"github.com/glidelabs/glidectl/internal/observability"
	"github.com/glidelabs/glidectl/internal/router"
	"github.com/glidelabs/glidectl/internal/webpage"
	"github.com/rs/zerolog"
)

type Bridge struct {
	state *ControlState
	pages *webpage.Renderer
	log   zerolog.Logger
}

func NewBridge(state *ControlState, pages *webpage.Renderer) *Bridge {
	return &Bridge{
		state: state,
		pages: pages,
		log:   observability.Component("panel"),
	}
}

// Routes builds the dispatch table for the panel. Route registration happens
// once here; a duplicate path is a programming error and panics via
// MustRegister before the listener ever starts.
func (b *Bridge) Routes() *router.Table {
	t := router.New()
	t.MustRegister("/", b.handleRoot)
	t.MustRegister("/activate", b.handleActivate)
	t.MustRegister("/deactivate", b.handleDeactivate)
	t.MustRegister("/calibrate", b.handleCalibrate)
	t.MustRegister("/set_rudder", b.setpointHandler("rudder", b.state.Rudder))
	t.MustRegister("/set_elevator", b.setpointHandler("elevator", b.state.Elevator))
	t.MustRegister("/set_rudder_gain", b.gainHandler("rudder_gain", b.state.RudderGain))
	t.MustRegister("/set_elevator_gain", b.gainHandler("elevator_gain", b.state.ElevatorGain))
	t.MustRegister("/reset_gains", b.handleResetGains)
	return t
}

func (b *Bridge) handleRoot(router.Request) router.Response {
	return router.Response{
		Status:      http.StatusOK,
		ContentType: "text/html",
		Body:        b.pages.Panel(),
	}
}

func (b *Bridge) handleActivate(router.Request) router.Response {
	b.state.Armed.Put(true)
	observability.RecordFlagWrite("armed")
	b.log.Info().Bool("armed", true).Msg("flight_control_armed")
	return b.ack()
}

func (b *Bridge) handleDeactivate(router.Request) router.Response {
	b.state.Armed.Put(false)
	observability.RecordFlagWrite("armed")
	b.log.Info().Bool("armed", false).Msg("flight_control_disarmed")
	return b.ack()
}

// handleCalibrate posts the zeroing request and drops the arm flag in the same
// handler invocation. The disarm must accompany the calibrate request: the
// control task must never zero sensors under a live control loop.
func (b *Bridge) handleCalibrate(router.Request) router.Response {
	b.state.Calibrate.Put(true)
	b.state.Armed.Put(false)
	observability.RecordFlagWrite("calibrate")
	observability.RecordFlagWrite("armed")
	b.log.Info().Msg("calibration_requested")
	return b.ack()
}

// setpointHandler parses the value query parameter and posts a clamped
// deflection. A missing or malformed value makes no state change but still
// acknowledges; the panel has no error surface beyond 404.
func (b *Bridge) setpointHandler(name string, flag flagFloat) router.Handler {
	return func(req router.Request) router.Response {
		v, ok := parseValue(req)
		if !ok {
			b.log.Warn().Str("flag", name).Str("raw", req.Query.Get("value")).Msg("setpoint_ignored")
			return b.ack()
		}
		v = clamp(v, MinDeflectionDeg, MaxDeflectionDeg)
		flag.Put(v)
		observability.RecordFlagWrite(name)
		b.log.Info().Str("flag", name).Float64("deg", v).Msg("setpoint_updated")
		return b.ack()
	}
}

// gainHandler accepts strictly positive gains; anything else is ignored.
func (b *Bridge) gainHandler(name string, flag flagFloat) router.Handler {
	return func(req router.Request) router.Response {
		v, ok := parseValue(req)
		if !ok || v <= 0 {
			b.log.Warn().Str("flag", name).Str("raw", req.Query.Get("value")).Msg("gain_ignored")
			return b.ack()
		}
		flag.Put(v)
		observability.RecordFlagWrite(name)
		b.log.Info().Str("flag", name).Float64("gain", v).Msg("gain_updated")
		return b.ack()
	}
}

func (b *Bridge) handleResetGains(router.Request) router.Response {
	b.state.RudderGain.Put(DefaultGain)
	b.state.ElevatorGain.Put(DefaultGain)
	observability.RecordFlagWrite("rudder_gain")
	observability.RecordFlagWrite("elevator_gain")
	b.log.Info().Msg("gains_reset")
	return b.ack()
}

func (b *Bridge) ack() router.Response {
	return router.Response{
		Status:      http.StatusOK,
		ContentType: "text/html",
		Body:        b.pages.Ack(),
	}
}

type flagFloat interface {
	Put(float64)
}

func parseValue(req router.Request) (float64, bool) {
	raw := req.Query.Get("value")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
