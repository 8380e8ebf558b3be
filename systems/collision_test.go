package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/sidescroller/assets"
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/automoto/sidescroller/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestOverlappingEdgePolicy(t *testing.T) {
	tests := []struct {
		name string
		hb   gamemath.HitBox
		want bool
	}{
		{"inside", gamemath.MustHitBox(45, 45, 10, 10), true},
		{"partial", gamemath.MustHitBox(30, 30, 15, 15), true},
		{"touching left edge", gamemath.MustHitBox(30, 45, 10, 10), false},
		{"touching top edge", gamemath.MustHitBox(45, 30, 10, 10), false},
		{"touching corner", gamemath.MustHitBox(60, 60, 10, 10), false},
		{"apart", gamemath.MustHitBox(100, 100, 10, 10), false},
		{"zero width", gamemath.MustHitBox(50, 45, 0, 10), false},
	}

	for _, withSpace := range []bool{false, true} {
		w := newTestWorld(200, 200, withSpace)
		w.addStatic("S1", gamemath.MustHitBox(40, 40, 20, 20))
		c := NewCollisions()

		for _, tt := range tests {
			if got := c.Overlapping(w.m, tt.hb); got != tt.want {
				t.Errorf("space=%v %s: Overlapping = %v, want %v", withSpace, tt.name, got, tt.want)
			}
		}
	}
}

func TestOverlappingSkipsRemovedShapes(t *testing.T) {
	w := newTestWorld(200, 200, true)
	s := w.addStatic("S1", gamemath.MustHitBox(40, 40, 20, 20))
	w.ecs.World.Remove(s.Entity())

	if NewCollisions().Overlapping(w.m, gamemath.MustHitBox(45, 45, 10, 10)) {
		t.Error("removed shape should not collide")
	}
}

func TestBroadphaseAgreesWithPairwiseScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	w := newTestWorld(640, 480, true)
	for range 40 {
		w.addStatic("S", gamemath.MustHitBox(
			float64(rng.IntN(600)),
			float64(rng.IntN(440)),
			float64(1+rng.IntN(40)),
			float64(1+rng.IntN(40)),
		))
	}

	c := NewCollisions()
	for i := range 2000 {
		hb := gamemath.MustHitBox(
			rng.Float64()*720-40,
			rng.Float64()*560-40,
			rng.Float64()*60,
			rng.Float64()*60,
		)
		if got, want := c.Overlapping(w.m, hb), overlappingAny(w.m.StaticShapes, hb); got != want {
			t.Fatalf("case %d %v: broadphase = %v, pairwise = %v", i, hb, got, want)
		}
	}
}

func TestLevelBuiltWithoutSpaceStillCollides(t *testing.T) {
	world := ecs.NewECS(donburi.NewWorld())
	m := factory.CreateMap(world, 16, 32, 16, 16, 2)
	factory.CreateMapSpace(world, m)

	err := factory.NewMapBuilder(world, nil).
		SetGrid(16, 32, 16, 16).
		SetGridScale(2).
		BuildBackground(func(int, int) assets.Tile { return assets.BackgroundMorning }).
		BuildLandMass(9, 5, 5, 20).
		Populate(m)
	if err != nil {
		t.Fatal(err)
	}
	land := components.Object.Get(m.StaticShapes[0]).HitBox()
	if !NewCollisions().Overlapping(m, land) {
		t.Fatal("land mass is invisible to the collision pass")
	}

	p, err := factory.CreatePlayer(world, nil, m.Space, 0, 200, 244)
	if err != nil {
		t.Fatal(err)
	}
	m.Players = append(m.Players, p)
	hold(p, cfg.ActionMoveDown)

	a := runningAnimator(m)
	steppedBack := false
	for i := range 10 {
		if err := a.Handle(frameTime.Add(time.Duration(i) * time.Millisecond)); err != nil {
			t.Fatal(err)
		}
		if components.Player.Get(p).SteppedBack {
			steppedBack = true
			break
		}
	}
	if !steppedBack {
		t.Fatal("player fell into the land mass without being stepped back")
	}
	if hb := components.Object.Get(p).HitBox(); hb.Intersects(land) {
		t.Errorf("player %v left overlapping the land %v", hb, land)
	}
}
