package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

const runLevel = "..........\n" +
	".P..C..G..\n" +
	"##########\n"

const enemyLevel = "..........\n" +
	".P.....E.G\n" +
	"##########\n"

// newPlayingState builds a state over the given level and starts the run.
func newPlayingState(t *testing.T, text string) *State {
	t.Helper()
	cfg := DefaultConfig()
	s := NewState(mustParse(t, text, cfg), cfg)
	s.Step(StepInput{StartPressed: true})
	if s.Phase != PhasePlaying {
		t.Fatalf("Phase after start = %v, expected PhasePlaying", s.Phase)
	}
	return s
}

func TestStateStartsOnTitle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(mustParse(t, runLevel, cfg), cfg)

	if s.Phase != PhaseTitle {
		t.Errorf("New state phase = %v, expected PhaseTitle", s.Phase)
	}
	if s.Score != 0 || s.HighScore != 0 {
		t.Errorf("New state scores = %d/%d, expected 0/0", s.Score, s.HighScore)
	}
}

func TestStateTickAlwaysAdvances(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(mustParse(t, runLevel, cfg), cfg)

	// Title phase with no input still counts ticks
	s.Step(StepInput{})
	s.Step(StepInput{})
	if s.Tick != 2 {
		t.Errorf("Tick = %d, expected 2", s.Tick)
	}
	if s.Phase != PhaseTitle {
		t.Errorf("Phase without start = %v, expected PhaseTitle", s.Phase)
	}
}

func TestStateRunToGoal(t *testing.T) {
	s := newPlayingState(t, runLevel)

	// Walk right: collects the coin on the way, then reaches the goal pole.
	for i := 0; i < 600 && s.Phase == PhasePlaying; i++ {
		s.Step(StepInput{Right: true})
	}

	if s.Phase != PhaseLevelComplete {
		t.Fatalf("Phase after running right = %v, expected PhaseLevelComplete", s.Phase)
	}
	if s.Score != 700 {
		t.Errorf("Score = %d, expected 700 (coin 200 + goal 500)", s.Score)
	}
	if s.HighScore != 700 {
		t.Errorf("HighScore = %d, expected 700", s.HighScore)
	}
	if len(s.World.Coins) != 0 {
		t.Errorf("Coins remaining = %d, expected 0", len(s.World.Coins))
	}
}

func TestStateThreeCoinsScore600(t *testing.T) {
	s := newPlayingState(t, "..........\n.P.C.C.C.G\n##########\n")

	for i := 0; i < 600 && len(s.World.Coins) > 0; i++ {
		s.Step(StepInput{Right: true})
	}

	if len(s.World.Coins) != 0 {
		t.Fatalf("Coins remaining = %d, expected 0", len(s.World.Coins))
	}
	if s.Score < 600 {
		t.Errorf("Score = %d, expected at least 600 from three coins", s.Score)
	}
}

func TestStateNoOpInputKeepsPhase(t *testing.T) {
	s := newPlayingState(t, runLevel)

	// Standing still on solid ground, away from goal and edges.
	for i := 0; i < 120; i++ {
		s.Step(StepInput{})
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Phase after idle ticks = %v, expected PhasePlaying", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Idle score = %d, expected 0", s.Score)
	}
}

func TestStateRestartResetsRun(t *testing.T) {
	s := newPlayingState(t, runLevel)

	for i := 0; i < 120; i++ {
		s.Step(StepInput{Right: true})
		if s.Score > 0 {
			break
		}
	}
	if s.Score != 200 {
		t.Fatalf("Score after coin = %d, expected 200", s.Score)
	}

	s.Step(StepInput{RestartPressed: true})

	if s.Phase != PhasePlaying {
		t.Errorf("Phase after restart = %v, expected PhasePlaying", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Score after restart = %d, expected 0", s.Score)
	}
	if s.HighScore != 200 {
		t.Errorf("HighScore should survive restart: got %d, expected 200", s.HighScore)
	}
	if len(s.World.Coins) != 1 {
		t.Errorf("Coins after restart = %d, expected 1", len(s.World.Coins))
	}
	if s.Player.Pos.X != s.World.PlayerSpawn.X+(s.Config.TileSize-s.Player.Size.X)/2 {
		t.Error("Player should be back at the spawn tile after restart")
	}
}

func TestStateQuitReturnsToTitle(t *testing.T) {
	s := newPlayingState(t, runLevel)

	s.Step(StepInput{QuitPressed: true})
	if s.Phase != PhaseTitle {
		t.Errorf("Phase after quit = %v, expected PhaseTitle", s.Phase)
	}
}

func TestStateLevelCompleteRestart(t *testing.T) {
	s := newPlayingState(t, runLevel)
	for i := 0; i < 600 && s.Phase == PhasePlaying; i++ {
		s.Step(StepInput{Right: true})
	}
	if s.Phase != PhaseLevelComplete {
		t.Fatal("Run should complete")
	}

	// Playing input is ignored on the completion screen
	tick := s.Tick
	s.Step(StepInput{Right: true, JumpPressed: true})
	if s.Phase != PhaseLevelComplete {
		t.Error("Movement input should not leave PhaseLevelComplete")
	}
	if s.Tick != tick+1 {
		t.Error("Tick should still advance on the completion screen")
	}

	s.Step(StepInput{RestartPressed: true})
	if s.Phase != PhasePlaying {
		t.Errorf("Phase after restart = %v, expected PhasePlaying", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Score after restart = %d, expected 0", s.Score)
	}
	if s.HighScore != 700 {
		t.Errorf("HighScore = %d, expected 700", s.HighScore)
	}
}

func TestStateStomp(t *testing.T) {
	s := newPlayingState(t, enemyLevel)
	e := &s.Enemies[0]

	s.Player.Pos.X = e.Pos.X
	s.Player.Pos.Y = e.Pos.Y - s.Player.Size.Y + units.FromPx(2)
	s.Player.Vel.Y = units.FromPx(1)

	s.handleEnemyContacts()

	if e.Alive {
		t.Error("Stomped enemy should be dead")
	}
	if s.Score != 100 {
		t.Errorf("Score after stomp = %d, expected 100", s.Score)
	}
	if s.Player.Vel.Y != -s.Config.StompBounce {
		t.Errorf("Stomp bounce Vel.Y = %d, expected %d", s.Player.Vel.Y, -s.Config.StompBounce)
	}
}

func TestStateStompRequiresFalling(t *testing.T) {
	s := newPlayingState(t, enemyLevel)
	e := &s.Enemies[0]

	// Same overlap but rising: unpowered side-hit rules apply.
	s.Player.Pos.X = e.Pos.X
	s.Player.Pos.Y = e.Pos.Y - s.Player.Size.Y + units.FromPx(2)
	s.Player.Vel.Y = -units.FromPx(1)
	s.addScore(300)

	s.handleEnemyContacts()

	if !e.Alive {
		t.Error("Enemy should survive a non-falling contact")
	}
	if s.Score != 0 {
		t.Errorf("Score after death = %d, expected 0", s.Score)
	}
}

func TestStateSideHitUnpoweredDies(t *testing.T) {
	s := newPlayingState(t, enemyLevel)
	e := &s.Enemies[0]
	s.addScore(300)

	s.Player.Pos.X = e.Pos.X + units.FromPx(4)
	s.Player.Pos.Y = e.Pos.Y
	s.Player.Vel.Y = 0

	s.handleEnemyContacts()

	if s.Score != 0 {
		t.Errorf("Score after death = %d, expected 0", s.Score)
	}
	if s.HighScore != 300 {
		t.Errorf("HighScore should survive death: got %d", s.HighScore)
	}
	wantX := s.World.PlayerSpawn.X + (s.Config.TileSize-s.Player.Size.X)/2
	if s.Player.Pos.X != wantX {
		t.Error("Player should respawn at the spawn tile after death")
	}
	if !s.Enemies[0].Alive {
		t.Error("Enemies should be restored by the death reset")
	}
}

func TestStateSideHitPoweredKnockback(t *testing.T) {
	s := newPlayingState(t, enemyLevel)
	e := &s.Enemies[0]

	s.Player.Powered = true
	// Player to the right of the enemy center: knocked to the right.
	s.Player.Pos.X = e.Pos.X + units.FromPx(8)
	s.Player.Pos.Y = e.Pos.Y
	s.Player.Vel.Y = 0
	posBefore := s.Player.Pos.X

	s.handleEnemyContacts()

	if s.Player.Powered {
		t.Error("Powered hit should clear the power-up")
	}
	if s.Player.InvulnTimer != s.Config.HurtInvulnTime {
		t.Errorf("InvulnTimer = %d, expected %d", s.Player.InvulnTimer, s.Config.HurtInvulnTime)
	}
	if s.Player.Vel.X != s.Config.HurtKnockbackX {
		t.Errorf("Knockback Vel.X = %d, expected %d", s.Player.Vel.X, s.Config.HurtKnockbackX)
	}
	if s.Player.Vel.Y != -s.Config.HurtKnockbackY {
		t.Errorf("Knockback Vel.Y = %d, expected %d", s.Player.Vel.Y, -s.Config.HurtKnockbackY)
	}
	if s.Player.Pos.X != posBefore+units.FromPx(4) {
		t.Error("Knockback should nudge the player away from the enemy")
	}
	if !e.Alive {
		t.Error("Enemy should survive a powered side hit")
	}
}

func TestStateInvulnerabilityIgnoresContact(t *testing.T) {
	s := newPlayingState(t, enemyLevel)
	e := &s.Enemies[0]
	s.addScore(300)

	s.Player.InvulnTimer = s.Config.HurtInvulnTime
	s.Player.Pos.X = e.Pos.X
	s.Player.Pos.Y = e.Pos.Y
	s.Player.Vel.Y = 0

	s.handleEnemyContacts()

	if s.Score != 300 {
		t.Errorf("Invulnerable contact should not reset the run: score %d", s.Score)
	}
	if !e.Alive {
		t.Error("Invulnerable contact should not kill the enemy")
	}
}

func TestStateFallOffDies(t *testing.T) {
	s := newPlayingState(t, runLevel)
	s.addScore(300)

	s.Player.Pos.Y = units.Unit(s.World.Height)*s.Config.TileSize + units.FromPx(201)
	s.checkFallOff()

	if s.Score != 0 {
		t.Errorf("Score after falling off = %d, expected 0", s.Score)
	}
	wantY := s.World.PlayerSpawn.Y + (s.Config.TileSize - s.Player.Size.Y)
	if s.Player.Pos.Y != wantY {
		t.Error("Player should respawn after falling off")
	}
}

func TestStateScoreSaturates(t *testing.T) {
	s := newPlayingState(t, runLevel)

	s.Score = math.MaxUint32 - 50
	s.addScore(100)

	if s.Score != math.MaxUint32 {
		t.Errorf("Score should saturate at MaxUint32, got %d", s.Score)
	}
	if s.HighScore != math.MaxUint32 {
		t.Errorf("HighScore should follow the saturated score, got %d", s.HighScore)
	}
}
