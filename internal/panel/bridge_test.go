package panel

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/glidelabs/glidectl/internal/router"
	"github.com/glidelabs/glidectl/internal/testutil/testlog"
	"github.com/glidelabs/glidectl/internal/webpage"
)

func newTestBridge() (*ControlState, *router.Table) {
	state := NewControlState()
	bridge := NewBridge(state, webpage.New("glidectl test"))
	return state, bridge.Routes()
}

func get(t *testing.T, tbl *router.Table, path string) router.Response {
	t.Helper()
	return getQuery(t, tbl, path, nil)
}

func getQuery(t *testing.T, tbl *router.Table, path string, query url.Values) router.Response {
	t.Helper()
	if query == nil {
		query = url.Values{}
	}
	return tbl.Dispatch(router.Request{Path: path, Query: query, RemoteAddr: "127.0.0.1:4242"})
}

func TestActivateIsIdempotent(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()

	for i := 0; i < 2; i++ {
		resp := get(t, tbl, "/activate")
		if resp.Status != http.StatusOK {
			t.Fatalf("activate %d: status %d", i, resp.Status)
		}
		if !state.Armed.Get() {
			t.Fatalf("activate %d: not armed", i)
		}
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()

	for i := 0; i < 2; i++ {
		if resp := get(t, tbl, "/deactivate"); resp.Status != http.StatusOK {
			t.Fatalf("deactivate %d: status %d", i, resp.Status)
		}
		if state.Armed.Get() {
			t.Fatalf("deactivate %d: still armed", i)
		}
	}
}

func TestCalibrateForcesDisarm(t *testing.T) {
	testlog.Start(t)

	for _, preArmed := range []bool{false, true} {
		state, tbl := newTestBridge()
		state.Armed.Put(preArmed)

		resp := get(t, tbl, "/calibrate")
		if resp.Status != http.StatusOK {
			t.Fatalf("pre-armed=%v: status %d", preArmed, resp.Status)
		}
		if state.Armed.Get() {
			t.Fatalf("pre-armed=%v: calibrate left system armed", preArmed)
		}
		if !state.Calibrate.Get() {
			t.Fatalf("pre-armed=%v: calibrate request not posted", preArmed)
		}
	}
}

func TestUnknownPathMutatesNothing(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()
	state.Armed.Put(true)
	state.Rudder.Put(12.5)

	resp := get(t, tbl, "/reboot")
	if resp.Status != http.StatusNotFound || resp.Body != "Not found" {
		t.Fatalf("unexpected not-found response: %+v", resp)
	}
	if !state.Armed.Get() || state.Calibrate.Get() || state.Rudder.Get() != 12.5 {
		t.Fatalf("404 dispatch mutated control state")
	}
}

func TestRootServesPanelWithoutMutation(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()

	resp := get(t, tbl, "/")
	if resp.Status != http.StatusOK || resp.ContentType != "text/html" {
		t.Fatalf("root response: %+v", resp)
	}
	if !strings.Contains(resp.Body, "/activate") || !strings.Contains(resp.Body, "/calibrate") {
		t.Fatalf("panel page missing control forms")
	}
	if state.Armed.Get() || state.Calibrate.Get() {
		t.Fatalf("root dispatch mutated control state")
	}
}

func TestSetpointParsingAndClamping(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name  string
		raw   string
		want  float64
		wrote bool
	}{
		{name: "in range", raw: "30.5", want: 30.5, wrote: true},
		{name: "clamped high", raw: "400", want: MaxDeflectionDeg, wrote: true},
		{name: "clamped low", raw: "-400", want: MinDeflectionDeg, wrote: true},
		{name: "malformed", raw: "full-left", wrote: false},
		{name: "missing", raw: "", wrote: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, tbl := newTestBridge()
			state.Rudder.Put(5)

			q := url.Values{}
			if tc.raw != "" {
				q.Set("value", tc.raw)
			}
			resp := getQuery(t, tbl, "/set_rudder", q)
			if resp.Status != http.StatusOK {
				t.Fatalf("status %d", resp.Status)
			}
			got := state.Rudder.Get()
			if tc.wrote && got != tc.want {
				t.Fatalf("rudder = %v, want %v", got, tc.want)
			}
			if !tc.wrote && got != 5 {
				t.Fatalf("bad value mutated rudder: %v", got)
			}
		})
	}
}

func TestGainEndpointsRejectNonPositive(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()

	q := url.Values{"value": []string{"2.5"}}
	getQuery(t, tbl, "/set_rudder_gain", q)
	if got := state.RudderGain.Get(); got != 2.5 {
		t.Fatalf("rudder gain = %v, want 2.5", got)
	}

	for _, bad := range []string{"0", "-1", "nope"} {
		getQuery(t, tbl, "/set_elevator_gain", url.Values{"value": []string{bad}})
		if got := state.ElevatorGain.Get(); got != DefaultGain {
			t.Fatalf("gain %q accepted: %v", bad, got)
		}
	}
}

func TestResetGains(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()
	state.RudderGain.Put(3)
	state.ElevatorGain.Put(0.2)

	if resp := get(t, tbl, "/reset_gains"); resp.Status != http.StatusOK {
		t.Fatalf("status %d", resp.Status)
	}
	if state.RudderGain.Get() != DefaultGain || state.ElevatorGain.Get() != DefaultGain {
		t.Fatalf("gains not reset")
	}
}

func TestOperatorScenario(t *testing.T) {
	testlog.Start(t)
	state, tbl := newTestBridge()

	if resp := get(t, tbl, "/activate"); resp.Status != http.StatusOK {
		t.Fatalf("activate: %d", resp.Status)
	}
	if !state.Armed.Get() {
		t.Fatal("not armed after activate")
	}

	if resp := get(t, tbl, "/calibrate"); resp.Status != http.StatusOK {
		t.Fatalf("calibrate: %d", resp.Status)
	}
	if state.Armed.Get() || !state.Calibrate.Get() {
		t.Fatal("calibrate did not disarm and post the request")
	}

	if resp := get(t, tbl, "/deactivate"); resp.Status != http.StatusOK {
		t.Fatalf("deactivate: %d", resp.Status)
	}
	if state.Armed.Get() {
		t.Fatal("armed after deactivate")
	}

	resp := get(t, tbl, "/nope")
	if resp.Status != http.StatusNotFound || resp.Body != "Not found" {
		t.Fatalf("unknown path: %+v", resp)
	}
}
