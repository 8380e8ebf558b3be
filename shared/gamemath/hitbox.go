package gamemath

import (
	"errors"
	"fmt"
	"math"

	"github.com/solarlune/resolv"
)

// ErrInvalidGeometry is returned when a hitbox would have a negative or
// non-finite size.
var ErrInvalidGeometry = errors.New("invalid geometry")

// HitBox is an axis-aligned rectangle. X and Y are the top-left corner.
type HitBox struct {
	X, Y float64
	W, H float64
}

// NewHitBox validates the dimensions and returns the box.
func NewHitBox(x, y, w, h float64) (HitBox, error) {
	if !finite(x) || !finite(y) || !finite(w) || !finite(h) {
		return HitBox{}, fmt.Errorf("%w: non-finite hitbox (%v, %v, %v, %v)", ErrInvalidGeometry, x, y, w, h)
	}
	if w < 0 || h < 0 {
		return HitBox{}, fmt.Errorf("%w: negative size %vx%v", ErrInvalidGeometry, w, h)
	}
	return HitBox{X: x, Y: y, W: w, H: h}, nil
}

// MustHitBox is NewHitBox for constant geometry; it panics on invalid input.
func MustHitBox(x, y, w, h float64) HitBox {
	hb, err := NewHitBox(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return hb
}

// FromObject reads the bounds of a resolv object.
func FromObject(obj *resolv.Object) HitBox {
	return HitBox{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (h HitBox) Right() float64  { return h.X + h.W }
func (h HitBox) Bottom() float64 { return h.Y + h.H }

// IsZero reports whether the box covers no area.
func (h HitBox) IsZero() bool {
	return h.W == 0 || h.H == 0
}

// Translate returns the box moved by (dx, dy).
func (h HitBox) Translate(dx, dy float64) HitBox {
	h.X += dx
	h.Y += dy
	return h
}

// Intersects reports whether the two boxes overlap with positive area.
// Boxes that only share an edge or a corner do not intersect.
func (h HitBox) Intersects(other HitBox) bool {
	if h.IsZero() || other.IsZero() {
		return false
	}
	return h.X < other.Right() && other.X < h.Right() &&
		h.Y < other.Bottom() && other.Y < h.Bottom()
}

// Contains reports whether other lies entirely inside h. Shared edges count
// as inside, so every box contains itself.
func (h HitBox) Contains(other HitBox) bool {
	return other.X >= h.X && other.Right() <= h.Right() &&
		other.Y >= h.Y && other.Bottom() <= h.Bottom()
}

func (h HitBox) String() string {
	return fmt.Sprintf("HitBox(%g, %g, %gx%g)", h.X, h.Y, h.W, h.H)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
