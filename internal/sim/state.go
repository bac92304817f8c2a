package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// State aggregates all mutable simulation state for one running game. It has
// a single owner; Step mutates it in place with no concurrent access.
type State struct {
	Phase Phase
	Tick  uint64

	Config  Config
	World   *level.World
	Player  Player
	Enemies []Enemy

	// Spawn snapshots are the source of truth for resets; the lists in World
	// shrink as collectibles are picked up.
	CoinSpawns     []units.Vec2
	MushroomSpawns []units.Vec2

	Score     uint32
	HighScore uint32
}

// NewState builds a fresh game over a parsed world. The game starts on the
// title phase with the player and enemies already placed.
func NewState(w *level.World, cfg Config) *State {
	s := &State{
		Phase:  PhaseTitle,
		Config: cfg,
		World:  w,
	}

	s.Player.Reset(w.PlayerSpawn, cfg)

	s.Enemies = make([]Enemy, len(w.EnemySpawns))
	for i, spawn := range w.EnemySpawns {
		s.Enemies[i].Reset(spawn, w, cfg)
	}

	s.CoinSpawns = append([]units.Vec2(nil), w.Coins...)
	s.MushroomSpawns = append([]units.Vec2(nil), w.Mushrooms...)
	return s
}

// Step advances the simulation by exactly one tick. It always increments the
// tick counter, regardless of phase, and never fails: death, falling off and
// level completion are state transitions, not errors.
func (s *State) Step(in StepInput) {
	s.Tick++

	switch s.Phase {
	case PhaseTitle:
		if in.StartPressed {
			s.Phase = PhasePlaying
			s.restartRun()
		}

	case PhasePlaying:
		if in.QuitPressed {
			s.Phase = PhaseTitle
			return
		}
		if in.RestartPressed {
			s.restartRun()
			return
		}

		s.Player.Update(in, s.World, s.Config)
		for i := range s.Enemies {
			s.Enemies[i].Update(s.World, s.Config)
		}

		s.collectCoins()
		s.collectMushrooms()
		s.handleEnemyContacts()
		s.checkGoal()
		s.checkFallOff()

	case PhaseLevelComplete:
		if in.QuitPressed {
			s.Phase = PhaseTitle
			return
		}
		if in.RestartPressed {
			s.restartRun()
			s.Phase = PhasePlaying
		}
	}
}

// resetLevel restores player, enemies and collectibles from the spawn
// snapshots. Score is left alone; callers decide.
func (s *State) resetLevel() {
	s.Player.Reset(s.World.PlayerSpawn, s.Config)
	s.World.Coins = append(s.World.Coins[:0:0], s.CoinSpawns...)
	s.World.Mushrooms = append(s.World.Mushrooms[:0:0], s.MushroomSpawns...)

	n := min(len(s.Enemies), len(s.World.EnemySpawns))
	for i := 0; i < n; i++ {
		s.Enemies[i].Reset(s.World.EnemySpawns[i], s.World, s.Config)
	}
}

func (s *State) restartRun() {
	s.Score = 0
	s.resetLevel()
}

// playerDied handles both enemy hits and falling off: same-level restart
// with the score cleared. High score survives.
func (s *State) playerDied() {
	s.Score = 0
	s.resetLevel()
}

// addScore adds points with saturation at the uint32 maximum and keeps the
// running high score.
func (s *State) addScore(points uint32) {
	sum := uint64(s.Score) + uint64(points)
	if sum > math.MaxUint32 {
		sum = math.MaxUint32
	}
	s.Score = uint32(sum)
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// collectCoins removes every coin whose tile-centered pickup square
// intersects the player and awards 200 points each.
func (s *State) collectCoins() {
	playerRect := s.Player.Rect()
	radius := s.Config.TileSize / 5
	size := radius * 2

	var collected uint32
	kept := s.World.Coins[:0:0]
	for _, coin := range s.World.Coins {
		coinRect := units.Rect{X: coin.X - radius, Y: coin.Y - radius, W: size, H: size}
		if RectsIntersect(playerRect, coinRect) {
			collected++
		} else {
			kept = append(kept, coin)
		}
	}
	s.World.Coins = kept

	if collected > 0 {
		s.addScore(collected * 200)
	}
}

// collectMushrooms removes intersecting mushrooms, powers the player up and
// awards 1000 points each.
func (s *State) collectMushrooms() {
	playerRect := s.Player.Rect()
	size := s.Config.MushroomSize

	var collected uint32
	kept := s.World.Mushrooms[:0:0]
	for _, pos := range s.World.Mushrooms {
		mushroomRect := units.Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
		if RectsIntersect(playerRect, mushroomRect) {
			collected++
		} else {
			kept = append(kept, pos)
		}
	}
	s.World.Mushrooms = kept

	if collected > 0 {
		s.Player.Powered = true
		s.addScore(collected * 1000)
	}
}

// handleEnemyContacts resolves at most one player-enemy interaction per
// tick: enemies are scanned in storage order and the first intersecting one
// decides the outcome. Falling onto an enemy's top edge (within the stomp
// tolerance) is a stomp; otherwise invulnerability ignores the contact,
// power absorbs it as knockback, and an unpowered player dies.
func (s *State) handleEnemyContacts() {
	playerRect := s.Player.Rect()
	playerBottom := playerRect.Y + playerRect.H

	stompedIndex := -1
	powerDownDir := 0
	died := false

	for i := range s.Enemies {
		enemy := &s.Enemies[i]
		if !enemy.Alive {
			continue
		}

		enemyRect := enemy.Rect()
		if !RectsIntersect(playerRect, enemyRect) {
			continue
		}

		stompThreshold := enemyRect.Y + s.Config.StompTolerance
		if s.Player.Vel.Y > 0 && playerBottom <= stompThreshold {
			stompedIndex = i
		} else if s.Player.IsInvulnerable() {
			// Side contact is ignored entirely while invulnerable.
		} else if s.Player.Powered {
			playerCenterX := playerRect.X + playerRect.W/2
			enemyCenterX := enemyRect.X + enemyRect.W/2
			if enemyCenterX < playerCenterX {
				powerDownDir = 1
			} else {
				powerDownDir = -1
			}
		} else {
			died = true
		}
		break
	}

	switch {
	case stompedIndex >= 0:
		s.Enemies[stompedIndex].Alive = false
		s.Player.Vel.Y = -s.Config.StompBounce
		s.addScore(100)
	case powerDownDir != 0:
		s.Player.Powered = false
		s.Player.InvulnTimer = max(0, s.Config.HurtInvulnTime)
		s.Player.Vel.X = units.Unit(powerDownDir) * s.Config.HurtKnockbackX
		s.Player.Vel.Y = -s.Config.HurtKnockbackY
		s.Player.Pos.X += units.Unit(powerDownDir) * units.FromPx(4)
		s.Player.OnGround = false
	case died:
		s.playerDied()
	}
}

func (s *State) checkGoal() {
	goalRect := s.World.GoalTriggerRect(s.Config.TileSize)
	if RectsIntersect(s.Player.Rect(), goalRect) {
		s.addScore(500)
		s.Phase = PhaseLevelComplete
	}
}

func (s *State) checkFallOff() {
	fallLimit := units.Unit(s.World.Height)*s.Config.TileSize + units.FromPx(200)
	if s.Player.Pos.Y > fallLimit {
		s.playerDied()
	}
}
