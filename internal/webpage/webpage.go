// Package webpage produces the literal HTML served by the control panel. The
// dispatch core treats it as an opaque string producer.
package webpage

import "strings"

// Renderer builds the panel and acknowledgement pages.
type Renderer struct {
	Title string
}

func New(title string) *Renderer {
	if strings.TrimSpace(title) == "" {
		title = "glidectl"
	}
	return &Renderer{Title: title}
}

const pageHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="initial-scale=1, width=device-width">
<title>%TITLE%</title>
<style>
html { font-family: Helvetica; display: inline-block; margin: 0px auto; text-align: center; }
body { margin-top: 50px; }
h1 { color: #4444AA; margin: 50px auto 30px; }
p { font-size: 24px; color: #222222; margin-bottom: 10px; }
input[type=submit] { width: 250px; height: 70px; font-size: 20px; }
input[type=text] { width: 150px; height: 40px; font-size: 20px; }
</style>
</head>
`

const panelBody = `<body>
<main>
<div id="panel">
<h1>%TITLE%</h1>
<h2>Control Panel</h2>
<form action="/activate"><input type="submit" value="Activate Flight Control"></form>
<form action="/deactivate"><input type="submit" value="Deactivate Flight Control"></form>
<form action="/calibrate"><input type="submit" value="Calibrate / Zero Sensors"></form>
<h2>Manual Control</h2>
<form action="/set_rudder">
<input type="text" name="value">
<input type="submit" value="Set Rudder (-90, 90)">
</form>
<br>
<form action="/set_elevator">
<input type="text" name="value">
<input type="submit" value="Set Elevator (-90, 90)">
</form>
<br>
<form action="/set_rudder_gain">
<input type="text" name="value">
<input type="submit" value="Set Rudder Gain">
</form>
<br>
<form action="/set_elevator_gain">
<input type="text" name="value">
<input type="submit" value="Set Elevator Gain">
</form>
<br>
<form action="/reset_gains"><input type="submit" value="Reset Default Gains"></form>
</div>
</main>
</body>
</html>
`

// ackPage bounces the browser back to the panel after one second, matching a
// classic embedded-panel acknowledgement page.
const ackPage = `<!DOCTYPE html>
<html>
<head>
<meta http-equiv="refresh" content="1; url='/'" />
</head>
<body><p><a href='/'>Back to main page</a></p></body>
</html>
`

// Panel returns the full control-panel page.
func (r *Renderer) Panel() string {
	return strings.ReplaceAll(pageHeader+panelBody, "%TITLE%", r.Title)
}

// Ack returns the redirect-style acknowledgement page shared by every
// state-changing endpoint.
func (r *Renderer) Ack() string {
	return ackPage
}
