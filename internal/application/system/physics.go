package system

import (
	"errors"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/collision"
	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// ErrNilBody is returned when a nil entity or an entity without a body is added
var ErrNilBody = errors.New("nil body")

// BodyView is a read-only copy of a body for rendering and debugging
type BodyView struct {
	ID       entity.EntityID
	Kind     entity.Kind
	Bounds   collision.Rect
	Velocity cp.Vector
	Grounded bool
	Solid    bool
	Static   bool
	State    string
}

type pendingBody struct {
	e      entity.Entity
	static bool
}

type contact struct {
	a, b entity.Entity
	item bool
}

// Engine steps dynamic bodies against static geometry and each other.
// It is single-threaded: Update and Step must be called from the game loop.
type Engine struct {
	config *config.PhysicsConfig
	logger *log.Logger

	statics  []entity.Entity
	dynamics []entity.Entity
	pending  []pendingBody

	stepping bool
	nextID   entity.EntityID
	frame    uint64
}

// NewEngine creates an empty engine. A nil config uses the defaults.
func NewEngine(cfg *config.PhysicsConfig, logger *log.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultPhysicsConfig()
	}
	return &Engine{
		config: cfg,
		logger: logger,
	}
}

// SetConfig swaps the physics settings used from the next step on
func (e *Engine) SetConfig(cfg *config.PhysicsConfig) {
	if cfg == nil {
		return
	}
	e.config = cfg
}

// Config returns the current physics settings
func (e *Engine) Config() *config.PhysicsConfig {
	return e.config
}

// AddStaticBody registers level geometry. Statics never move.
func (e *Engine) AddStaticBody(ent entity.Entity) error {
	return e.add(ent, true)
}

// AddDynamicBody registers a moving body. Bodies added during Update or
// Step are queued and join the simulation once the current phase ends.
func (e *Engine) AddDynamicBody(ent entity.Entity) error {
	return e.add(ent, false)
}

func (e *Engine) add(ent entity.Entity, static bool) error {
	if ent == nil || ent.Base() == nil {
		return ErrNilBody
	}
	b := ent.Base()
	if b.ID == 0 {
		e.nextID++
		b.ID = e.nextID
	}
	if e.stepping {
		e.pending = append(e.pending, pendingBody{e: ent, static: static})
		return nil
	}
	e.insert(ent, static)
	return nil
}

func (e *Engine) insert(ent entity.Entity, static bool) {
	b := ent.Base()
	if static {
		e.statics = append(e.statics, ent)
	} else {
		e.dynamics = append(e.dynamics, ent)
	}
	e.debug("body added", "id", b.ID, "kind", b.Kind, "static", static)
}

// RemoveBody destroys the body with id. Outside a step it is removed at once,
// otherwise at the end of the step. Reports whether the id was known.
func (e *Engine) RemoveBody(id entity.EntityID) bool {
	ent := e.Find(id)
	if ent == nil {
		return false
	}
	ent.Destroy()
	if !e.stepping {
		e.compact()
	}
	return true
}

// ClearAll drops every body, including queued ones
func (e *Engine) ClearAll() {
	n := len(e.statics) + len(e.dynamics) + len(e.pending)
	e.statics = nil
	e.dynamics = nil
	e.pending = nil
	e.debug("bodies cleared", "count", n)
}

// Update runs entity logic for every active dynamic body
func (e *Engine) Update(dt float64) {
	e.stepping = true
	for _, ent := range e.dynamics {
		if ent.IsActive() {
			ent.Update(dt)
		}
	}
	e.stepping = false
	e.flush()
}

// Step advances the simulation by dt seconds:
// reset ground contact, integrate, resolve against statics, dispatch
// dynamic pairs, apply the kill plane, then drop inactive bodies.
func (e *Engine) Step(dt float64) {
	e.stepping = true

	for _, ent := range e.dynamics {
		if ent.IsActive() {
			ent.Base().Grounded = false
		}
	}

	e.integrate(dt)

	for _, ent := range e.dynamics {
		e.resolveStatics(ent)
	}

	e.resolveDynamics()
	e.applyKillPlane()

	e.stepping = false
	e.compact()
	e.flush()
	e.frame++
}

func (e *Engine) integrate(dt float64) {
	g := e.config.Physics.Gravity
	maxFall := e.config.Physics.MaxFallSpeed
	for _, ent := range e.dynamics {
		if !ent.IsActive() {
			continue
		}
		b := ent.Base()
		if b.Gravity {
			b.Velocity.Y += g * dt
			if maxFall > 0 && b.Velocity.Y > maxFall {
				b.Velocity.Y = maxFall
			}
		}
		b.Position = b.Position.Add(b.Velocity.Mult(dt))
	}
}

// resolveStatics corrects ent against every static it overlaps, largest
// overlap first. Each candidate is re-checked because an earlier snap may
// already have cleared it.
func (e *Engine) resolveStatics(ent entity.Entity) {
	if !ent.IsActive() || !ent.Base().Solid {
		return
	}
	b := ent.Base()
	bounds := b.Bounds()

	type candidate struct {
		s    entity.Entity
		area float64
	}
	var candidates []candidate
	for _, s := range e.statics {
		if !s.IsActive() {
			continue
		}
		sb := s.Base().Bounds()
		if collision.Overlaps(bounds, sb) {
			candidates = append(candidates, candidate{s: s, area: bounds.Intersection(sb).Area()})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].area > candidates[j].area
	})

	for _, c := range candidates {
		if !ent.IsActive() {
			return
		}
		if !c.s.IsActive() {
			continue
		}
		sb := c.s.Base()
		side := collision.ResolveSideEpsilon(b.Bounds(), sb.Bounds(), b.Velocity.Sub(sb.Velocity), e.tieEpsilon())
		if side == collision.SideNone {
			continue
		}

		if sb.Solid {
			b.Position = collision.Snap(b.Bounds(), sb.Bounds(), side)
			if side.Vertical() {
				b.Velocity.Y = 0
			} else {
				b.Velocity.X = 0
			}
			if side == collision.SideBottom {
				b.Grounded = true
			}
		}

		dispatch(ent, c.s, side)
	}
}

// resolveDynamics dispatches every overlapping pair of dynamics once.
// Pairs involving an item go first so pickups land before damage.
func (e *Engine) resolveDynamics() {
	var contacts []contact
	for i := 0; i < len(e.dynamics); i++ {
		a := e.dynamics[i]
		if !a.IsActive() {
			continue
		}
		for j := i + 1; j < len(e.dynamics); j++ {
			b := e.dynamics[j]
			if !b.IsActive() {
				continue
			}
			if collision.Overlaps(a.Base().Bounds(), b.Base().Bounds()) {
				contacts = append(contacts, contact{
					a:    a,
					b:    b,
					item: a.Base().Kind.IsItem() || b.Base().Kind.IsItem(),
				})
			}
		}
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].item && !contacts[j].item
	})

	for _, c := range contacts {
		if !c.a.IsActive() || !c.b.IsActive() {
			continue
		}
		ab, bb := c.a.Base(), c.b.Base()
		side := collision.ResolveSideEpsilon(ab.Bounds(), bb.Bounds(), ab.Velocity.Sub(bb.Velocity), e.tieEpsilon())
		if side == collision.SideNone {
			continue
		}
		dispatch(c.a, c.b, side)
	}
}

// dispatch notifies a then b, skipping either once a participant is inactive
func dispatch(a, b entity.Entity, side collision.Side) {
	if a.IsActive() && b.IsActive() {
		a.OnCollision(b, side)
	}
	if a.IsActive() && b.IsActive() {
		b.OnCollision(a, side.Opposite())
	}
}

func (e *Engine) applyKillPlane() {
	limit := e.config.Physics.KillPlaneY
	if limit <= 0 {
		return
	}
	for _, ent := range e.dynamics {
		if !ent.IsActive() || ent.Base().Position.Y <= limit {
			continue
		}
		if p, ok := ent.(*entity.Player); ok {
			p.FellOut()
			continue
		}
		ent.Destroy()
	}
}

// compact removes inactive bodies in place, keeping order
func (e *Engine) compact() {
	e.statics = e.compactList(e.statics)
	e.dynamics = e.compactList(e.dynamics)
}

func (e *Engine) compactList(list []entity.Entity) []entity.Entity {
	live := list[:0]
	for _, ent := range list {
		if ent.IsActive() {
			live = append(live, ent)
			continue
		}
		e.debug("body removed", "id", ent.Base().ID, "kind", ent.Base().Kind)
	}
	for i := len(live); i < len(list); i++ {
		list[i] = nil
	}
	return live
}

// flush moves queued bodies into the simulation
func (e *Engine) flush() {
	pending := e.pending
	e.pending = nil
	for _, p := range pending {
		if p.e.IsActive() {
			e.insert(p.e, p.static)
		}
	}
}

func (e *Engine) tieEpsilon() float64 {
	return e.config.Physics.TieEpsilon
}

// Dynamics returns the dynamic bodies in simulation order
func (e *Engine) Dynamics() []entity.Entity {
	return append([]entity.Entity(nil), e.dynamics...)
}

// Statics returns the static bodies
func (e *Engine) Statics() []entity.Entity {
	return append([]entity.Entity(nil), e.statics...)
}

// Bodies returns the number of bodies currently simulated
func (e *Engine) Bodies() int {
	return len(e.statics) + len(e.dynamics)
}

// Find returns the simulated entity with id, or nil
func (e *Engine) Find(id entity.EntityID) entity.Entity {
	for _, list := range [][]entity.Entity{e.dynamics, e.statics} {
		for _, ent := range list {
			if ent.Base().ID == id {
				return ent
			}
		}
	}
	return nil
}

// Snapshot returns views of every active body, statics first
func (e *Engine) Snapshot() []BodyView {
	views := make([]BodyView, 0, e.Bodies())
	for _, ent := range e.statics {
		if ent.IsActive() {
			views = append(views, view(ent, true))
		}
	}
	for _, ent := range e.dynamics {
		if ent.IsActive() {
			views = append(views, view(ent, false))
		}
	}
	return views
}

func view(ent entity.Entity, static bool) BodyView {
	b := ent.Base()
	v := BodyView{
		ID:       b.ID,
		Kind:     b.Kind,
		Bounds:   b.Bounds(),
		Velocity: b.Velocity,
		Grounded: b.Grounded,
		Solid:    b.Solid,
		Static:   static,
	}
	if n, ok := ent.(entity.StateNamer); ok {
		v.State = n.StateName()
	}
	return v
}

// Frame returns the number of completed steps
func (e *Engine) Frame() uint64 {
	return e.frame
}

func (e *Engine) debug(msg string, keyvals ...interface{}) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, keyvals...)
}
