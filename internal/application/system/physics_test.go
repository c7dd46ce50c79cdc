package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stomp/internal/domain/collision"
	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

type hit struct {
	other entity.Entity
	side  collision.Side
}

// probe is a bare entity that records every contact it receives
type probe struct {
	entity.Body
	hits  []hit
	onHit func(p *probe, other entity.Entity, side collision.Side)
}

func newProbe(x, y, w, h float64, gravity bool) *probe {
	return &probe{Body: entity.NewBody(entity.KindNone, cp.Vector{X: x, Y: y}, cp.Vector{X: w, Y: h}, gravity)}
}

func (p *probe) Update(float64) {}

func (p *probe) OnCollision(other entity.Entity, side collision.Side) {
	p.hits = append(p.hits, hit{other: other, side: side})
	if p.onHit != nil {
		p.onHit(p, other, side)
	}
}

func createTestPhysicsConfig() *config.PhysicsConfig {
	return config.DefaultPhysicsConfig()
}

func createWeightlessConfig() *config.PhysicsConfig {
	cfg := config.DefaultPhysicsConfig()
	cfg.Physics.Gravity = 0
	return cfg
}

func createTestEngine(t *testing.T, cfg *config.PhysicsConfig) *Engine {
	t.Helper()
	return NewEngine(cfg, nil)
}

func createTestFloor(x, y, w, h float64) *entity.Tile {
	return entity.NewTile(entity.TileGround, cp.Vector{X: x, Y: y}, cp.Vector{X: w, Y: h}, entity.KindNone, nil)
}

func TestNewEngine(t *testing.T) {
	cfg := createTestPhysicsConfig()

	e := NewEngine(cfg, nil)

	require.NotNil(t, e)
	assert.Equal(t, cfg, e.Config())
	assert.Zero(t, e.Bodies())
	assert.Zero(t, e.Frame())
}

func TestNewEngine_NilConfigUsesDefaults(t *testing.T) {
	e := NewEngine(nil, nil)

	assert.Equal(t, config.DefaultPhysicsConfig(), e.Config())
}

func TestEngine_AddBody(t *testing.T) {
	e := createTestEngine(t, createTestPhysicsConfig())

	t.Run("nil is rejected", func(t *testing.T) {
		assert.ErrorIs(t, e.AddDynamicBody(nil), ErrNilBody)
		assert.ErrorIs(t, e.AddStaticBody(nil), ErrNilBody)
	})

	t.Run("ids are assigned in order", func(t *testing.T) {
		a := newProbe(0, 0, 8, 8, false)
		b := newProbe(0, 0, 8, 8, false)
		require.NoError(t, e.AddDynamicBody(a))
		require.NoError(t, e.AddStaticBody(b))

		assert.Equal(t, entity.EntityID(1), a.ID)
		assert.Equal(t, entity.EntityID(2), b.ID)
		assert.Len(t, e.Dynamics(), 1)
		assert.Len(t, e.Statics(), 1)
		assert.Same(t, a, e.Find(1))
	})
}

func TestEngine_LandingOnGround(t *testing.T) {
	// Walker falling at 300 px/s onto ground spanning y 200..232
	e := createTestEngine(t, createTestPhysicsConfig())
	ground := createTestFloor(0, 200, 320, 32)
	walker := entity.NewWalker(cp.Vector{X: 100, Y: 190}, nil)
	walker.Velocity.Y = 300
	require.NoError(t, e.AddStaticBody(ground))
	require.NoError(t, e.AddDynamicBody(walker))

	e.Step(0.1)

	assert.InDelta(t, 200.0, walker.Bounds().Bottom(), 1e-9)
	assert.True(t, walker.Grounded)
	assert.Zero(t, walker.Velocity.Y)
	assert.Equal(t, collision.SideNone, collision.ResolveSide(walker.Bounds(), ground.Bounds(), walker.Velocity))
}

func TestEngine_GravityClampedToMaxFall(t *testing.T) {
	cfg := createTestPhysicsConfig()
	e := createTestEngine(t, cfg)
	p := newProbe(0, 0, 8, 8, true)
	p.Velocity.Y = cfg.Physics.MaxFallSpeed - 1
	require.NoError(t, e.AddDynamicBody(p))

	e.Step(0.1)

	assert.Equal(t, cfg.Physics.MaxFallSpeed, p.Velocity.Y)
	assert.InDelta(t, cfg.Physics.MaxFallSpeed*0.1, p.Position.Y, 1e-9)
}

func TestEngine_GroundedResetEachStep(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	p := newProbe(0, 0, 8, 8, false)
	p.Grounded = true
	require.NoError(t, e.AddDynamicBody(p))
	require.NoError(t, e.AddStaticBody(createTestFloor(0, 8, 64, 16)))

	e.Step(frame)

	assert.False(t, p.Grounded, "touching without overlap does not ground")
}

func TestEngine_StaticSides(t *testing.T) {
	tests := []struct {
		name       string
		pos        cp.Vector
		vel        cp.Vector
		wantSide   collision.Side
		wantPos    cp.Vector
		wantVel    cp.Vector
		wantGround bool
	}{
		{
			name:       "land on top",
			pos:        cp.Vector{X: 20, Y: 31},
			vel:        cp.Vector{X: 0, Y: 120},
			wantSide:   collision.SideBottom,
			wantPos:    cp.Vector{X: 20, Y: 32},
			wantVel:    cp.Vector{},
			wantGround: true,
		},
		{
			name:     "bump head",
			pos:      cp.Vector{X: 20, Y: 66},
			vel:      cp.Vector{X: 0, Y: -240},
			wantSide: collision.SideTop,
			wantPos:  cp.Vector{X: 20, Y: 64},
			wantVel:  cp.Vector{},
		},
		{
			name:     "walk into left face",
			pos:      cp.Vector{X: 7, Y: 44},
			vel:      cp.Vector{X: 120, Y: 0},
			wantSide: collision.SideRight,
			wantPos:  cp.Vector{X: 8, Y: 44},
			wantVel:  cp.Vector{},
		},
		{
			name:     "walk into right face",
			pos:      cp.Vector{X: 65, Y: 44},
			vel:      cp.Vector{X: -120, Y: 0},
			wantSide: collision.SideLeft,
			wantPos:  cp.Vector{X: 64, Y: 44},
			wantVel:  cp.Vector{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEngine(t, createWeightlessConfig())
			block := newProbe(16, 40, 48, 24, false)
			p := newProbe(tt.pos.X, tt.pos.Y, 8, 8, false)
			p.Velocity = tt.vel
			require.NoError(t, e.AddStaticBody(block))
			require.NoError(t, e.AddDynamicBody(p))

			e.Step(frame)

			require.Len(t, p.hits, 1)
			assert.Equal(t, tt.wantSide, p.hits[0].side)
			require.Len(t, block.hits, 1)
			assert.Equal(t, tt.wantSide.Opposite(), block.hits[0].side)
			assert.InDelta(t, tt.wantPos.X, p.Position.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, p.Position.Y, 1e-9)
			assert.Equal(t, tt.wantVel, p.Velocity)
			assert.Equal(t, tt.wantGround, p.Grounded)
			assert.False(t, collision.Overlaps(p.Bounds(), block.Bounds()))
		})
	}
}

func TestEngine_TileSeamDoesNotStopRun(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	require.NoError(t, e.AddStaticBody(createTestFloor(0, 100, 16, 16)))
	require.NoError(t, e.AddStaticBody(createTestFloor(16, 100, 16, 16)))
	p := newProbe(10, 86, 14, 16, false)
	p.Velocity.X = 50
	require.NoError(t, e.AddDynamicBody(p))

	e.Step(frame)

	assert.Equal(t, 50.0, p.Velocity.X)
	assert.InDelta(t, 84.0, p.Position.Y, 1e-9)
	assert.True(t, p.Grounded)
	for _, h := range p.hits {
		assert.Equal(t, collision.SideBottom, h.side)
	}
}

func TestEngine_NonSolidStaticIsTrigger(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	trigger := newProbe(0, 0, 32, 32, false)
	trigger.Solid = false
	p := newProbe(8, 20, 8, 8, false)
	p.Velocity.Y = 60
	require.NoError(t, e.AddStaticBody(trigger))
	require.NoError(t, e.AddDynamicBody(p))

	e.Step(frame)

	assert.Len(t, p.hits, 1)
	assert.Len(t, trigger.hits, 1)
	assert.InDelta(t, 21.0, p.Position.Y, 1e-9)
	assert.Equal(t, 60.0, p.Velocity.Y)
	assert.False(t, p.Grounded)
}

func TestEngine_NonSolidDynamicSkipsStatics(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	floor := newProbe(0, 0, 32, 32, false)
	p := newProbe(8, 8, 8, 8, false)
	p.Solid = false
	require.NoError(t, e.AddStaticBody(floor))
	require.NoError(t, e.AddDynamicBody(p))

	e.Step(frame)

	assert.Empty(t, p.hits)
	assert.Equal(t, cp.Vector{X: 8, Y: 8}, p.Position)
}

func TestEngine_DynamicPairs(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	a := newProbe(0, 0, 16, 16, false)
	b := newProbe(0, 12, 16, 16, false)
	far := newProbe(100, 100, 16, 16, false)
	require.NoError(t, e.AddDynamicBody(a))
	require.NoError(t, e.AddDynamicBody(b))
	require.NoError(t, e.AddDynamicBody(far))

	e.Step(frame)

	require.Len(t, a.hits, 1)
	require.Len(t, b.hits, 1)
	assert.Equal(t, collision.SideBottom, a.hits[0].side)
	assert.Equal(t, collision.SideTop, b.hits[0].side)
	assert.Same(t, b, a.hits[0].other)
	assert.Empty(t, far.hits)
	assert.Equal(t, cp.Vector{X: 0, Y: 0}, a.Position, "no positional correction between dynamics")
	assert.Equal(t, cp.Vector{X: 0, Y: 12}, b.Position)
}

func TestEngine_DynamicSideUsesRelativeVelocity(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	// both move right, but b pulls away faster: relative to b, a moves left
	a := newProbe(0, 0, 16, 16, false)
	b := newProbe(12, 0, 16, 16, false)
	a.Velocity.X = 30
	b.Velocity.X = 90
	require.NoError(t, e.AddDynamicBody(a))
	require.NoError(t, e.AddDynamicBody(b))

	e.Step(0)

	require.Len(t, a.hits, 1)
	assert.Equal(t, collision.SideLeft, a.hits[0].side)
	assert.Equal(t, collision.SideRight, b.hits[0].side)
}

func TestEngine_PickupBeforeDamage(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	player := entity.NewPlayer(0, cp.Vector{X: 100, Y: 184}, nil)
	walker := entity.NewWalker(cp.Vector{X: 110, Y: 184}, nil)
	mushroom := entity.NewItem(entity.KindMushroom, cp.Vector{X: 96, Y: 190}, nil)
	require.NoError(t, e.AddDynamicBody(player))
	require.NoError(t, e.AddDynamicBody(walker))
	require.NoError(t, e.AddDynamicBody(mushroom))

	e.Step(0)

	assert.False(t, mushroom.IsActive())
	assert.Equal(t, entity.TierSmall, player.Tier, "mushroom absorbed the hit")
	assert.Equal(t, 3, player.Lives)
	assert.True(t, player.IsInvincible())
	assert.Len(t, e.Dynamics(), 2)
}

func TestEngine_InactiveNeverDispatched(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	fragile := newProbe(0, 0, 16, 16, false)
	fragile.onHit = func(p *probe, _ entity.Entity, _ collision.Side) { p.Destroy() }
	first := newProbe(0, 8, 16, 16, false)
	second := newProbe(8, -8, 16, 16, false)
	require.NoError(t, e.AddDynamicBody(fragile))
	require.NoError(t, e.AddDynamicBody(first))
	require.NoError(t, e.AddDynamicBody(second))

	e.Step(0)

	assert.Len(t, fragile.hits, 1)
	assert.Empty(t, first.hits, "partner of a body destroyed in its own handler is skipped")
	assert.Empty(t, second.hits)
	assert.Nil(t, e.Find(fragile.ID))
	assert.Len(t, e.Dynamics(), 2)
}

func TestEngine_SpawnDuringStepIsQueued(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	var spawned *probe
	a := newProbe(0, 0, 16, 16, false)
	a.onHit = func(_ *probe, _ entity.Entity, _ collision.Side) {
		if spawned != nil {
			return
		}
		spawned = newProbe(0, 0, 16, 16, false)
		require.NoError(t, e.AddDynamicBody(spawned))
		assert.Len(t, e.Dynamics(), 2, "not visible during the step")
	}
	require.NoError(t, e.AddDynamicBody(a))
	require.NoError(t, e.AddDynamicBody(newProbe(0, 8, 16, 16, false)))

	e.Step(0)

	require.NotNil(t, spawned)
	assert.Empty(t, spawned.hits)
	assert.NotZero(t, spawned.ID)
	assert.Len(t, e.Dynamics(), 3)

	e.Step(0)
	assert.NotEmpty(t, spawned.hits)
}

func TestEngine_KillPlane(t *testing.T) {
	cfg := createWeightlessConfig()
	cfg.Physics.KillPlaneY = 300
	e := createTestEngine(t, cfg)
	walker := entity.NewWalker(cp.Vector{X: 0, Y: 301}, nil)
	player := entity.NewPlayer(0, cp.Vector{X: 40, Y: 50}, nil)
	require.NoError(t, e.AddDynamicBody(walker))
	require.NoError(t, e.AddDynamicBody(player))
	player.Position.Y = 310

	e.Step(frame)

	assert.False(t, walker.IsActive())
	assert.Nil(t, e.Find(walker.ID))
	assert.True(t, player.IsActive())
	assert.Equal(t, 2, player.Lives)
	assert.Equal(t, cp.Vector{X: 40, Y: 50}, player.Position)
}

func TestEngine_IdlePlayerStaysPut(t *testing.T) {
	e := createTestEngine(t, createTestPhysicsConfig())
	require.NoError(t, e.AddStaticBody(createTestFloor(0, 200, 320, 16)))
	player := entity.NewPlayer(0, cp.Vector{X: 80, Y: 184}, nil)
	require.NoError(t, e.AddDynamicBody(player))

	for i := 0; i < 60; i++ {
		e.Update(frame)
		e.Step(frame)

		require.Zero(t, player.Velocity.X, "frame %d", i)
		require.Zero(t, player.Velocity.Y, "frame %d", i)
		require.True(t, player.Grounded, "frame %d", i)
		require.InDelta(t, 184.0, player.Position.Y, 1e-9, "frame %d", i)
	}
	assert.Equal(t, uint64(60), e.Frame())
}

func TestEngine_RemoveAndClear(t *testing.T) {
	e := createTestEngine(t, createTestPhysicsConfig())
	a := newProbe(0, 0, 8, 8, false)
	b := newProbe(0, 0, 8, 8, false)
	require.NoError(t, e.AddDynamicBody(a))
	require.NoError(t, e.AddStaticBody(b))

	assert.True(t, e.RemoveBody(a.ID))
	assert.False(t, a.IsActive())
	assert.False(t, e.RemoveBody(a.ID))
	assert.Equal(t, 1, e.Bodies())

	e.ClearAll()
	assert.Zero(t, e.Bodies())
}

func TestEngine_Snapshot(t *testing.T) {
	e := createTestEngine(t, createTestPhysicsConfig())
	require.NoError(t, e.AddStaticBody(createTestFloor(0, 200, 32, 16)))
	w := entity.NewWalker(cp.Vector{X: 8, Y: 100}, nil)
	require.NoError(t, e.AddDynamicBody(w))

	views := e.Snapshot()

	require.Len(t, views, 2)
	assert.True(t, views[0].Static)
	assert.Equal(t, "ground", views[0].State)
	assert.False(t, views[1].Static)
	assert.Equal(t, entity.KindWalker, views[1].Kind)
	assert.Equal(t, "Walking", views[1].State)
	assert.Equal(t, w.Bounds(), views[1].Bounds)
}

func TestEngine_SetConfig(t *testing.T) {
	e := createTestEngine(t, createWeightlessConfig())
	p := newProbe(0, 0, 8, 8, true)
	require.NoError(t, e.AddDynamicBody(p))

	e.Step(0.1)
	assert.Zero(t, p.Velocity.Y)

	e.SetConfig(createTestPhysicsConfig())
	e.SetConfig(nil)
	e.Step(0.1)
	assert.InDelta(t, 98.0, p.Velocity.Y, 1e-9)
}
