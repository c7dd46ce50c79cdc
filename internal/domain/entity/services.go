package entity

import "github.com/charmbracelet/log"

// Audio plays named sound effects
type Audio interface {
	PlaySound(name string)
}

// ScoreSink receives points that are not owned by a player
type ScoreSink interface {
	AddScore(points int)
}

// GameFlow receives game-level events raised by entities
type GameFlow interface {
	GameOver(p *Player)
	RespawnPlayer(p *Player)
	LevelComplete(p *Player)
}

// Spawner adds entities created during gameplay (item drops, projectiles)
type Spawner interface {
	Spawn(e Entity)
}

// PlayerRegistry lists the players currently in the world
type PlayerRegistry interface {
	Players() []*Player
}

// Services bundles the collaborators an entity may talk to.
// Every field is optional and every method is safe on a nil *Services,
// so entities can be built in tests without any wiring.
type Services struct {
	Audio   Audio
	Score   ScoreSink
	Flow    GameFlow
	Spawner Spawner
	Players PlayerRegistry
	Tuning  *Tuning
	Logger  *log.Logger
}

// PlaySound forwards to the audio collaborator if present
func (s *Services) PlaySound(name string) {
	if s == nil || s.Audio == nil {
		return
	}
	s.Audio.PlaySound(name)
}

// AddScore forwards to the score collaborator if present
func (s *Services) AddScore(points int) {
	if s == nil || s.Score == nil {
		return
	}
	s.Score.AddScore(points)
}

func (s *Services) GameOver(p *Player) {
	if s == nil || s.Flow == nil {
		return
	}
	s.Flow.GameOver(p)
}

func (s *Services) RespawnPlayer(p *Player) {
	if s == nil || s.Flow == nil {
		return
	}
	s.Flow.RespawnPlayer(p)
}

func (s *Services) LevelComplete(p *Player) {
	if s == nil || s.Flow == nil {
		return
	}
	s.Flow.LevelComplete(p)
}

// Spawn hands a new entity to the spawner. Without one the entity is dropped.
func (s *Services) Spawn(e Entity) {
	if s == nil || s.Spawner == nil || e == nil {
		return
	}
	s.Spawner.Spawn(e)
}

// ActivePlayers returns the registered players that are still active
func (s *Services) ActivePlayers() []*Player {
	if s == nil || s.Players == nil {
		return nil
	}
	var out []*Player
	for _, p := range s.Players.Players() {
		if p != nil && p.Active {
			out = append(out, p)
		}
	}
	return out
}

// tuning returns the configured tuning or the defaults
func (s *Services) tuning() Tuning {
	if s == nil || s.Tuning == nil {
		return DefaultTuning()
	}
	return *s.Tuning
}

// Debug logs a state transition when a logger is wired
func (s *Services) Debug(msg string, keyvals ...interface{}) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Debug(msg, keyvals...)
}
