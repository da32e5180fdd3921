package pendulum

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestGrabAtHookIsHookGrab(t *testing.T) {
	cfg := testConfig()
	var d DragController
	s := cfg.RestState()

	pointer := rl.Vector2Add(s.Center, rl.Vector2{X: 0, Y: -40})
	if _, ok := d.Start(s, pointer, cfg); !ok {
		t.Fatal("Start should succeed from Idle")
	}

	sess, ok := d.Session()
	if !ok {
		t.Fatal("Expected an active session")
	}
	assertVec(t, "local offset", sess.LocalOffset, rl.Vector2{X: 0, Y: -40}, 1e-4)
	if !sess.HookGrab {
		t.Error("Expected hook grab at the hook point")
	}
	if d.Phase() != Dragging {
		t.Errorf("Expected Dragging, got %v", d.Phase())
	}
}

func TestGrabOnBodyCapturesRotationCorrection(t *testing.T) {
	cfg := testConfig()
	cfg.Drag = DragBodyOffset
	var d DragController
	s := cfg.RestState()

	pointer := rl.Vector2Add(s.Center, rl.Vector2{X: 30, Y: 30})
	d.Start(s, pointer, cfg)

	sess, _ := d.Session()
	if sess.HookGrab {
		t.Error("Expected body grab 76px from the hook")
	}
	grabRot, _ := HangingRotation(cfg.Anchor, pointer)
	if !approx(sess.RotationCorrection, s.Rotation-grabRot, 1e-4) {
		t.Errorf("Expected correction %.4f, got %.4f", s.Rotation-grabRot, sess.RotationCorrection)
	}
	if approx(sess.RotationCorrection, 0, 1e-2) {
		t.Error("Expected a non-trivial correction for an off-axis grab")
	}
}

func TestGrabLocalOffsetIsBodySpace(t *testing.T) {
	cfg := testConfig()
	var d DragController
	s := cfg.RestState()
	s.Rotation = 90

	// With the body turned clockwise a quarter, its local up points right.
	pointer := rl.Vector2Add(s.Center, rl.Vector2{X: 40, Y: 0})
	d.Start(s, pointer, cfg)

	sess, _ := d.Session()
	assertVec(t, "local offset", sess.LocalOffset, rl.Vector2{X: 0, Y: -40}, 1e-3)
	if !sess.HookGrab {
		t.Error("Expected hook grab on the rotated hook")
	}
}

func TestStartZeroesVelocityAndKeepsPose(t *testing.T) {
	cfg := testConfig()
	var d DragController
	s := State{Center: rl.Vector2{X: 210, Y: 300}, Velocity: rl.Vector2{X: 3, Y: -2}, Rotation: 12}

	next, _ := d.Start(s, s.Center, cfg)

	if next.Velocity != (rl.Vector2{}) {
		t.Errorf("Expected zero velocity, got %v", next.Velocity)
	}
	if next.Center != s.Center || next.Rotation != s.Rotation {
		t.Error("Start must not move or rotate the body")
	}
}

func TestStartWhileDraggingIsNoop(t *testing.T) {
	cfg := testConfig()
	var d DragController
	s := cfg.RestState()

	d.Start(s, s.Center, cfg)
	first, _ := d.Session()
	if _, ok := d.Start(s, rl.Vector2Add(s.Center, rl.Vector2{X: 10}), cfg); ok {
		t.Error("Second Start should be rejected")
	}
	second, _ := d.Session()
	if first != second {
		t.Error("Session changed on rejected Start")
	}
}

func TestGrabThenReleaseReturnsToIdle(t *testing.T) {
	for _, strategy := range []DragStrategy{DragAnchorPointer, DragBodyOffset} {
		t.Run(strategy.String(), func(t *testing.T) {
			cfg := testConfig()
			cfg.Drag = strategy
			var d DragController
			s := cfg.RestState()
			s.Rotation = 7

			for _, offset := range []rl.Vector2{{X: 0, Y: -40}, {X: 30, Y: 30}} {
				pointer := rl.Vector2Add(s.Center, LocalToWorld(offset, s.Rotation))
				started, _ := d.Start(s, pointer, cfg)
				released, ok := d.Release(started, rl.Vector2{X: 120, Y: -60}, cfg)
				if !ok {
					t.Fatal("Release should succeed while dragging")
				}

				if d.Phase() != Idle {
					t.Errorf("Expected Idle after release, got %v", d.Phase())
				}
				assertVec(t, "velocity", released.Velocity, rl.Vector2{X: 2, Y: -1}, 1e-5)
				if released.Rotation != s.Rotation || released.Center != s.Center {
					t.Errorf("Expected pose unchanged, got %+v", released)
				}
			}
		})
	}
}

func TestMoveAndReleaseWithoutSessionAreNoops(t *testing.T) {
	cfg := testConfig()
	var d DragController
	s := State{Center: rl.Vector2{X: 1, Y: 2}, Velocity: rl.Vector2{X: 3, Y: 4}, Rotation: 5}

	if next, ok := d.Move(s, rl.Vector2{X: 500, Y: 500}, cfg); ok || next != s {
		t.Error("Move without a session must be a no-op")
	}
	if next, ok := d.Release(s, rl.Vector2{X: 600}, cfg); ok || next != s {
		t.Error("Release without a session must be a no-op")
	}
}

func TestMoveAtGrabPointKeepsPose(t *testing.T) {
	for _, strategy := range []DragStrategy{DragAnchorPointer, DragBodyOffset} {
		t.Run(strategy.String(), func(t *testing.T) {
			cfg := testConfig()
			cfg.Drag = strategy
			var d DragController
			s := cfg.RestState()

			pointer := rl.Vector2Add(s.Center, rl.Vector2{X: 15, Y: 20})
			s, _ = d.Start(s, pointer, cfg)
			next, _ := d.Move(s, pointer, cfg)

			if !approx(next.Rotation, s.Rotation, 1e-3) {
				t.Errorf("Expected no rotation snap, got %.4f", next.Rotation)
			}
			assertVec(t, "center", next.Center, s.Center, 1e-2)
		})
	}
}

func TestBodyOffsetMoveAppliesCorrection(t *testing.T) {
	cfg := testConfig()
	cfg.Drag = DragBodyOffset
	var d DragController
	s := cfg.RestState()
	s.Rotation = 10

	start := rl.Vector2Add(s.Center, rl.Vector2{X: 20, Y: 25})
	s, _ = d.Start(s, start, cfg)
	sess, _ := d.Session()

	pointer := rl.Vector2{X: 120, Y: 200}
	next, _ := d.Move(s, pointer, cfg)

	grabRot, _ := HangingRotation(cfg.Anchor, pointer)
	if !approx(next.Rotation, grabRot+sess.RotationCorrection, 1e-3) {
		t.Errorf("Expected rotation %.4f, got %.4f", grabRot+sess.RotationCorrection, next.Rotation)
	}
	// The grab point stays under the pointer while the string is slack.
	grabbed := rl.Vector2Add(next.Center, LocalToWorld(sess.LocalOffset, next.Rotation))
	assertVec(t, "grab point", grabbed, pointer, 1e-2)
}

func TestHookGrabFreezesRotationAndHoldsString(t *testing.T) {
	cfg := testConfig()
	cfg.Drag = DragBodyOffset
	var d DragController
	s := cfg.RestState()
	s.Rotation = 20

	hook := HookPosition(s.Center, s.Rotation, cfg.Height)
	s, _ = d.Start(s, hook, cfg)

	next, _ := d.Move(s, rl.Vector2{X: 700, Y: 50}, cfg)

	if next.Rotation != 20 {
		t.Errorf("Expected frozen rotation 20, got %v", next.Rotation)
	}
	got := rl.Vector2Distance(HookPosition(next.Center, next.Rotation, cfg.Height), cfg.Anchor)
	if !approx(got, cfg.String.Length, 1e-2) {
		t.Errorf("Expected hook held at %.1f, got %.4f", cfg.String.Length, got)
	}
	if next.Velocity != (rl.Vector2{}) {
		t.Error("Dragging must not accumulate velocity")
	}
}

func TestAnchorPointerSlackBudgetDecays(t *testing.T) {
	cfg := testConfig()
	cfg.Drag = DragAnchorPointer
	var d DragController
	// 20px of slack at grab start.
	s := State{Center: rl.Vector2{X: 200, Y: 290}}

	s, _ = d.Start(s, s.Center, cfg)
	sess, _ := d.Session()
	if !approx(sess.SlackBudget, 20, 1e-3) {
		t.Fatalf("Expected slack budget 20, got %v", sess.SlackBudget)
	}

	far := rl.Vector2{X: 200, Y: 900}
	s, _ = d.Move(s, far, cfg)
	dist := rl.Vector2Distance(HookPosition(s.Center, s.Rotation, cfg.Height), cfg.Anchor)
	if !approx(dist, 230, 1e-2) {
		t.Errorf("Expected first taut move to stop at 230, got %.4f", dist)
	}

	s, _ = d.Move(s, far, cfg)
	dist = rl.Vector2Distance(HookPosition(s.Center, s.Rotation, cfg.Height), cfg.Anchor)
	if !approx(dist, 229.5, 1e-2) {
		t.Errorf("Expected decayed budget to stop at 229.5, got %.4f", dist)
	}

	sess, _ = d.Session()
	if !approx(sess.SlackBudget, 20*0.95*0.95, 1e-3) {
		t.Errorf("Expected budget %.4f, got %.4f", 20*0.95*0.95, sess.SlackBudget)
	}
}

func TestParseDragStrategy(t *testing.T) {
	for _, s := range []DragStrategy{DragAnchorPointer, DragBodyOffset} {
		got, err := ParseDragStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseDragStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseDragStrategy("lasso"); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}
