package input

// MouseTracker converts absolute cursor positions into per-event offsets.
// Y is inverted so that moving the mouse up yields a positive offset.
type MouseTracker struct {
	primed bool
	lastX  float64
	lastY  float64

	pendingX float64
	pendingY float64
}

// Move records a cursor position. The first position after creation or
// Reset only primes the tracker, so it contributes no offset.
func (m *MouseTracker) Move(xpos, ypos float64) {
	if !m.primed {
		m.lastX, m.lastY = xpos, ypos
		m.primed = true
		return
	}
	m.pendingX += xpos - m.lastX
	m.pendingY += m.lastY - ypos
	m.lastX, m.lastY = xpos, ypos
}

// Take returns and clears the offsets accumulated since the last call
func (m *MouseTracker) Take() (xoffset, yoffset float64) {
	xoffset, yoffset = m.pendingX, m.pendingY
	m.pendingX, m.pendingY = 0, 0
	return xoffset, yoffset
}

// Reset discards pending offsets and re-primes on the next Move, avoiding a
// jump after the cursor was released or recaptured.
func (m *MouseTracker) Reset() {
	*m = MouseTracker{}
}
