package entity

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// PowerTier is the player's power-up level. Tiers are ordered.
type PowerTier int

const (
	TierSmall PowerTier = iota
	TierBig
	TierFire
)

func (t PowerTier) String() string {
	switch t {
	case TierSmall:
		return "Small"
	case TierBig:
		return "Big"
	case TierFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Input is one frame of controller state for a player slot
type Input struct {
	Axis  float64 // -1 (left) .. 1 (right)
	Jump  bool
	Run   bool
	Shoot bool
}

// Player is a controllable character with a power tier, lives and score.
type Player struct {
	Body

	Slot       int
	Tier       PowerTier
	Lives      int
	Score      int
	Coins      int
	Facing     float64 // +1 right, -1 left
	Checkpoint cp.Vector

	invincibleTimer float64
	coyoteTimer     float64
	jumpBufferTimer float64
	shootCooldown   float64
	stompChain      int

	input     Input
	prevInput Input
	fireballs []*Fireball

	tuning PlayerTuning
	svc    *Services
}

// NewPlayer creates a Small player standing with its top-left at spawn.
// The spawn point is also the initial checkpoint.
func NewPlayer(slot int, spawn cp.Vector, svc *Services) *Player {
	t := svc.tuning().Player
	p := &Player{
		Body:       NewBody(KindPlayer, spawn, cp.Vector{X: t.Width, Y: t.SmallHeight}, true),
		Slot:       slot,
		Tier:       TierSmall,
		Lives:      t.Lives,
		Facing:     1,
		Checkpoint: spawn,
		tuning:     t,
		svc:        svc,
	}
	return p
}

// SetInput stores the controller state consumed by the next Update
func (p *Player) SetInput(in Input) {
	p.input = in
}

// Update applies input to velocity and advances the player's timers.
func (p *Player) Update(dt float64) {
	if !p.Active {
		return
	}
	p.tickTimers(dt)

	if p.Grounded {
		p.coyoteTimer = p.tuning.CoyoteTime
		p.stompChain = 0
	}

	in := p.input
	p.move(in, dt)
	p.jump(in)
	p.shoot(in)
	p.prevInput = in
}

func (p *Player) tickTimers(dt float64) {
	p.invincibleTimer = countdown(p.invincibleTimer, dt)
	p.coyoteTimer = countdown(p.coyoteTimer, dt)
	p.jumpBufferTimer = countdown(p.jumpBufferTimer, dt)
	p.shootCooldown = countdown(p.shootCooldown, dt)
}

func (p *Player) move(in Input, dt float64) {
	axis := clampAxis(in.Axis)
	maxSpeed := p.tuning.WalkSpeed
	if in.Run {
		maxSpeed = p.tuning.RunSpeed
	}

	vx := p.Velocity.X
	if axis != 0 {
		accel := p.tuning.Acceleration
		if !p.Grounded {
			accel *= p.tuning.AirControl
		}
		vx = approach(vx, axis*maxSpeed, accel*dt)
		p.Facing = math.Copysign(1, axis)
	} else if p.Grounded {
		vx = approach(vx, 0, p.tuning.Friction*dt)
	}
	p.Velocity.X = vx
}

func (p *Player) jump(in Input) {
	if in.Jump && !p.prevInput.Jump {
		p.jumpBufferTimer = p.tuning.JumpBuffer
	}

	if p.jumpBufferTimer > 0 && p.coyoteTimer > 0 {
		speed := p.tuning.JumpSpeed
		if math.Abs(p.Velocity.X) >= p.tuning.RunSpeed {
			speed += p.tuning.RunJumpBonus
		}
		p.Velocity.Y = -speed
		p.jumpBufferTimer = 0
		p.coyoteTimer = 0
		p.svc.PlaySound("jump")
		return
	}

	// Variable height: releasing jump while rising cuts the ascent
	if !in.Jump && p.prevInput.Jump && p.Velocity.Y < 0 {
		p.Velocity.Y *= p.tuning.JumpCut
	}
}

func (p *Player) shoot(in Input) {
	if !in.Shoot || p.prevInput.Shoot || p.Tier != TierFire || p.shootCooldown > 0 {
		return
	}
	if p.ActiveFireballs() >= p.tuning.FireballCap {
		return
	}
	fb := NewFireball(p, p.svc)
	p.fireballs = append(p.fireballs, fb)
	p.shootCooldown = p.tuning.FireballCooldown
	p.svc.Spawn(fb)
	p.svc.PlaySound("fireball")
}

// ActiveFireballs returns how many of this player's fireballs are still alive
func (p *Player) ActiveFireballs() int {
	live := p.fireballs[:0]
	for _, fb := range p.fireballs {
		if fb.Active {
			live = append(live, fb)
		}
	}
	p.fireballs = live
	return len(live)
}

// OnCollision is a no-op for the player; enemies, items and tiles drive
// the interaction from their side of the contact.
func (p *Player) OnCollision(Entity, collision.Side) {}

// CollectPower upgrades the player if tier is above the current one.
// Collecting a lower or equal tier only scores.
func (p *Player) CollectPower(tier PowerTier) {
	if !p.Active {
		return
	}
	p.AwardScore(p.svc.tuning().Item.PowerPoints)
	if tier <= p.Tier {
		return
	}
	p.setTier(tier)
	p.svc.PlaySound("powerup")
	p.svc.Debug("player powered up", "slot", p.Slot, "tier", tier)
}

// CollectCoin adds a coin; every hundred coins is an extra life
func (p *Player) CollectCoin() {
	if !p.Active {
		return
	}
	p.Coins++
	p.AwardScore(p.svc.tuning().Item.CoinPoints)
	p.svc.PlaySound("coin")
	if p.Coins >= 100 {
		p.Coins -= 100
		p.CollectLife()
	}
}

// CollectLife adds one life
func (p *Player) CollectLife() {
	if !p.Active {
		return
	}
	p.Lives++
	p.AwardScore(p.svc.tuning().Item.LifePoints)
	p.svc.PlaySound("1up")
}

// AwardScore adds points to the player and reports them to the score sink
func (p *Player) AwardScore(points int) {
	if points <= 0 {
		return
	}
	p.Score += points
	p.svc.AddScore(points)
}

// TakeDamage drops one tier, or kills a Small player.
// Ignored while invincible.
func (p *Player) TakeDamage() {
	if !p.Active || p.invincibleTimer > 0 {
		return
	}
	if p.Tier == TierSmall {
		p.Die()
		return
	}
	p.setTier(p.Tier - 1)
	p.invincibleTimer = p.tuning.InvincibilityTime
	p.svc.PlaySound("powerdown")
	p.svc.Debug("player damaged", "slot", p.Slot, "tier", p.Tier)
}

// Die costs a life. With lives left the player respawns Small at the
// checkpoint; otherwise the player is destroyed and the game is over.
func (p *Player) Die() {
	if !p.Active {
		return
	}
	p.Lives--
	p.svc.PlaySound("die")
	if p.Lives <= 0 {
		p.Lives = 0
		p.Destroy()
		p.svc.Debug("player out of lives", "slot", p.Slot)
		p.svc.GameOver(p)
		return
	}

	p.setTier(TierSmall)
	p.Position = p.Checkpoint
	p.Stop()
	p.Grounded = false
	p.invincibleTimer = p.tuning.InvincibilityTime
	p.coyoteTimer = 0
	p.jumpBufferTimer = 0
	p.stompChain = 0
	p.svc.Debug("player respawned", "slot", p.Slot, "lives", p.Lives)
	p.svc.RespawnPlayer(p)
}

// FellOut is called when the player drops below the kill plane
func (p *Player) FellOut() {
	p.Die()
}

// Bounce launches the player upward after a stomp.
// Holding jump gives the higher bounce.
func (p *Player) Bounce() {
	if !p.Active {
		return
	}
	speed := p.tuning.StompBounce
	if p.input.Jump {
		speed = p.tuning.StompJumpBoost
	}
	p.Velocity.Y = -speed
	p.Grounded = false
	p.coyoteTimer = 0
}

// NextStompPoints returns the points for the next stomp in the current
// airborne chain and advances it
func (p *Player) NextStompPoints() int {
	pts := chainPoints(p.stompChain)
	p.stompChain++
	return pts
}

// SetCheckpoint moves the respawn point
func (p *Player) SetCheckpoint(pos cp.Vector) {
	p.Checkpoint = pos
}

// IsInvincible reports whether damage is currently ignored
func (p *Player) IsInvincible() bool {
	return p.invincibleTimer > 0
}

// InvincibleTime returns the remaining invincibility in seconds
func (p *Player) InvincibleTime() float64 {
	return p.invincibleTimer
}

// StateName implements StateNamer
func (p *Player) StateName() string {
	return p.Tier.String()
}

func (p *Player) setTier(t PowerTier) {
	p.Tier = t
	h := p.tuning.BigHeight
	if t == TierSmall {
		h = p.tuning.SmallHeight
	}
	p.Resize(cp.Vector{X: p.tuning.Width, Y: h})
}

func countdown(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}

func clampAxis(a float64) float64 {
	if math.IsNaN(a) {
		return 0
	}
	return math.Max(-1, math.Min(1, a))
}

// approach moves v toward target by at most step
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}
