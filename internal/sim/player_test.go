package sim

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

const flatLevel = "..........\n" +
	"..........\n" +
	".P.....G..\n" +
	"##########\n"

func mustParse(t *testing.T, text string, cfg Config) *level.World {
	t.Helper()
	w, err := level.ParseASCII(text, cfg.TileSize, cfg.MushroomSize)
	if err != nil {
		t.Fatalf("ParseASCII() failed: %v", err)
	}
	return w
}

// groundedPlayer returns a player that has settled onto the floor.
func groundedPlayer(t *testing.T, w *level.World, cfg Config) *Player {
	t.Helper()
	p := &Player{}
	p.Reset(w.PlayerSpawn, cfg)
	p.Update(StepInput{}, w, cfg)
	if !p.OnGround {
		t.Fatal("Player should be grounded after settling")
	}
	return p
}

func TestPlayerSettlesOnGround(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)
	p := groundedPlayer(t, w, cfg)

	// Feet flush with the floor at row 3
	wantY := units.Unit(3)*cfg.TileSize - p.Size.Y
	if p.Pos.Y != wantY {
		t.Errorf("Feet should be flush with the floor: got %d, expected %d", p.Pos.Y, wantY)
	}
	if p.Vel.Y != 0 {
		t.Errorf("Grounded player should have zero Y velocity, got %d", p.Vel.Y)
	}
}

func TestPlayerJump(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)
	p := groundedPlayer(t, w, cfg)

	jumped := p.Update(StepInput{JumpPressed: true}, w, cfg)
	if !jumped {
		t.Fatal("Grounded jump press should trigger a jump")
	}
	if p.Vel.Y >= 0 {
		t.Errorf("Jumping player should move upward, Vel.Y = %d", p.Vel.Y)
	}
	if p.OnGround {
		t.Error("Jumping player should leave the ground")
	}
}

func TestPlayerJumpCut(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)
	p := groundedPlayer(t, w, cfg)

	p.Update(StepInput{JumpPressed: true}, w, cfg)
	velBefore := p.Vel.Y
	if velBefore >= 0 {
		t.Fatalf("Player should be rising, Vel.Y = %d", velBefore)
	}

	// The cut halves the upward velocity before gravity is applied.
	p.Update(StepInput{JumpReleased: true}, w, cfg)
	want := velBefore/2 + cfg.Gravity
	if p.Vel.Y != want {
		t.Errorf("Jump cut: Vel.Y = %d, expected %d", p.Vel.Y, want)
	}
}

func TestPlayerJumpCutIgnoredWhileFalling(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)

	p := &Player{}
	p.Reset(w.PlayerSpawn, cfg)
	p.Pos.Y = -units.FromPx(200)
	p.Vel.Y = units.FromPx(3)

	velBefore := p.Vel.Y
	p.Update(StepInput{JumpReleased: true}, w, cfg)
	if p.Vel.Y != velBefore+cfg.Gravity {
		t.Errorf("Release while falling should not change velocity: got %d, expected %d",
			p.Vel.Y, velBefore+cfg.Gravity)
	}
}

func TestPlayerCoyoteJump(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)

	// Airborne but within the coyote window, high enough not to land.
	p := &Player{}
	p.Reset(w.PlayerSpawn, cfg)
	p.Pos.Y = -units.FromPx(200)
	p.OnGround = false
	p.CoyoteTimer = cfg.CoyoteTime

	if !p.Update(StepInput{JumpPressed: true}, w, cfg) {
		t.Error("Jump should trigger inside the coyote window")
	}
}

func TestPlayerNoJumpAfterCoyoteExpires(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)

	p := &Player{}
	p.Reset(w.PlayerSpawn, cfg)
	p.Pos.Y = -units.FromPx(200)
	p.OnGround = false
	p.CoyoteTimer = 0

	if p.Update(StepInput{JumpPressed: true}, w, cfg) {
		t.Error("Jump should not trigger in the air with the coyote window expired")
	}
	if p.JumpBufferTimer != cfg.JumpBufferTime {
		t.Errorf("Press should still arm the jump buffer: got %d", p.JumpBufferTimer)
	}
}

func TestPlayerBufferedJumpFiresOnLanding(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)

	// Falling fast just above the floor with no coyote time left.
	p := &Player{}
	p.Reset(w.PlayerSpawn, cfg)
	p.Pos.Y -= units.FromPx(2)
	p.OnGround = false
	p.CoyoteTimer = 0
	p.Vel.Y = units.FromPx(10)

	jumped := p.Update(StepInput{JumpPressed: true}, w, cfg)
	if !jumped {
		t.Fatal("Buffered press should fire on the landing frame")
	}
	if p.Vel.Y >= 0 {
		t.Errorf("Landing-frame jump should move upward, Vel.Y = %d", p.Vel.Y)
	}
}

func TestPlayerFacing(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)
	p := groundedPlayer(t, w, cfg)

	p.Update(StepInput{Left: true}, w, cfg)
	if p.Facing != -1 {
		t.Errorf("Facing after moving left = %d, expected -1", p.Facing)
	}

	// No input keeps the last facing
	p.Update(StepInput{}, w, cfg)
	if p.Facing != -1 {
		t.Errorf("Facing should persist without input, got %d", p.Facing)
	}

	p.Update(StepInput{Right: true}, w, cfg)
	if p.Facing != 1 {
		t.Errorf("Facing after moving right = %d, expected 1", p.Facing)
	}
}

func TestPlayerOpposingInputsCancel(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)
	p := groundedPlayer(t, w, cfg)

	p.Update(StepInput{Right: true}, w, cfg)
	velMoving := p.Vel.X
	if velMoving <= 0 {
		t.Fatalf("Player should accelerate right, Vel.X = %d", velMoving)
	}

	// Both directions held decelerates toward zero.
	p.Update(StepInput{Left: true, Right: true}, w, cfg)
	if p.Vel.X >= velMoving {
		t.Errorf("Opposing inputs should decelerate: %d -> %d", velMoving, p.Vel.X)
	}
}

func TestPlayerSpeedCapped(t *testing.T) {
	cfg := DefaultConfig()
	w := mustParse(t, flatLevel, cfg)
	p := groundedPlayer(t, w, cfg)

	for i := 0; i < 120; i++ {
		p.Update(StepInput{Right: true}, w, cfg)
		if p.Vel.X > cfg.MoveSpeed {
			t.Fatalf("Tick %d: Vel.X = %d exceeds MoveSpeed %d", i, p.Vel.X, cfg.MoveSpeed)
		}
	}
	if p.Vel.X != cfg.MoveSpeed {
		t.Errorf("Sustained input should reach exactly MoveSpeed: got %d, expected %d",
			p.Vel.X, cfg.MoveSpeed)
	}
}
