package video

// Compositor owns the off-screen buffer and the visible surface.
// Callers draw into Back and then call Present once per frame.
type Compositor struct {
	back    *Buffer
	visible *Buffer
	frames  uint64
}

// NewCompositor creates a compositor presenting to visible. The off-screen
// buffer is allocated with the same geometry.
func NewCompositor(visible *Buffer) *Compositor {
	return &Compositor{
		back:    NewBuffer(visible.width, visible.height, visible.stride),
		visible: visible,
	}
}

// Back returns the off-screen buffer to draw the next frame into.
func (c *Compositor) Back() *Buffer {
	return c.back
}

// Visible returns the surface that is scanned out.
func (c *Compositor) Visible() *Buffer {
	return c.visible
}

// Present copies the composed frame to the visible surface in one bulk copy.
func (c *Compositor) Present() {
	c.visible.CopyFrom(c.back)
	c.frames++
}

// Frames returns the number of frames presented so far.
func (c *Compositor) Frames() uint64 {
	return c.frames
}
