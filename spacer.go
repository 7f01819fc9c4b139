package termgrid

// Spacer is empty space. Its wanted size is fixed (zero by default); give it
// a Fill constraint to soak up the room left in a layout.
type Spacer struct {
	W, H int
}

// FixedSpacer wants size cells along both axes.
func FixedSpacer(size int) Spacer {
	return Spacer{W: size, H: size}
}

func (s Spacer) Render(*Buffer, Rect, CacheNode) {}
func (s Spacer) Height(Vec2) int                 { return s.H }
func (s Spacer) Width(Vec2) int                  { return s.W }
func (s Spacer) Children() []*Element            { return nil }
