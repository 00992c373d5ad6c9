package wizard

import "math"

// SwipeThreshold is the horizontal travel in pixels that counts as a swipe.
const SwipeThreshold = 50.0

type Gesture string

const (
	GestureNone     Gesture = ""
	GestureNext     Gesture = "next"
	GesturePrevious Gesture = "previous"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SwipeTracker turns a raw touch stream into at most one navigation gesture per touch.
// A leftward drag means Next, a rightward drag means Previous; the drag must be more
// horizontal than vertical.
type SwipeTracker struct {
	start     Point
	active    bool
	threshold float64
}

func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{threshold: SwipeThreshold}
}

func (t *SwipeTracker) Begin(p Point) {
	t.start = p
	t.active = true
}

// Move reports a gesture once the drag crosses the threshold, then ignores the rest of
// the touch.
func (t *SwipeTracker) Move(p Point) Gesture {
	if !t.active {
		return GestureNone
	}
	dx := p.X - t.start.X
	dy := p.Y - t.start.Y
	if math.Abs(dx) <= t.threshold || math.Abs(dx) <= math.Abs(dy) {
		return GestureNone
	}
	t.active = false
	if dx < 0 {
		return GestureNext
	}
	return GesturePrevious
}

func (t *SwipeTracker) End() {
	t.active = false
}
