package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stomp/internal/domain/collision"
)

// stepLurker runs Update and applies the velocity the way the engine would
func stepLurker(l *Lurker, dt float64) {
	l.Update(dt)
	l.Position = l.Position.Add(l.Velocity.Mult(dt))
}

func TestNewLurker(t *testing.T) {
	l := NewLurker(cp.Vector{X: 200, Y: 176}, nil)

	require.NotNil(t, l)
	assert.Equal(t, LurkerWaitingBottom, l.State)
	assert.False(t, l.Solid)
	assert.False(t, l.Gravity)
}

func TestLurker_Cycle(t *testing.T) {
	rig := createTestRig()
	l := NewLurker(cp.Vector{X: 200, Y: 176}, rig.svc)
	tu := l.tuning

	stepLurker(l, tu.WaitBottom)
	assert.Equal(t, LurkerRising, l.State)

	for i := 0; i < 200 && l.State == LurkerRising; i++ {
		stepLurker(l, frame)
	}
	require.Equal(t, LurkerWaitingTop, l.State)
	assert.InDelta(t, 176-tu.Height, l.Position.Y, 1e-6)

	stepLurker(l, tu.WaitTop)
	assert.Equal(t, LurkerSinking, l.State)

	for i := 0; i < 200 && l.State == LurkerSinking; i++ {
		stepLurker(l, frame)
	}
	require.Equal(t, LurkerWaitingBottom, l.State)
	assert.InDelta(t, 176.0, l.Position.Y, 1e-6)
}

func TestLurker_RiseNeverOvershoots(t *testing.T) {
	l := NewLurker(cp.Vector{X: 0, Y: 100}, nil)
	l.State = LurkerRising
	top := 100 - l.tuning.Height

	for i := 0; i < 100; i++ {
		stepLurker(l, 0.25)
		assert.GreaterOrEqual(t, l.Position.Y, top-1e-9)
	}
}

func TestLurker_StaysHiddenNearPlayer(t *testing.T) {
	tests := []struct {
		name      string
		playerPos cp.Vector
		wantState LurkerState
	}{
		{"player standing beside the pipe", cp.Vector{X: 215, Y: 176}, LurkerWaitingBottom},
		{"player far away", cp.Vector{X: 400, Y: 176}, LurkerRising},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := createTestRig()
			createTestPlayerAt(rig, tt.playerPos)
			l := NewLurker(cp.Vector{X: 200, Y: 176}, rig.svc)

			l.Update(l.tuning.WaitBottom + frame)

			assert.Equal(t, tt.wantState, l.State)
		})
	}
}

func TestLurker_IgnoresInactivePlayers(t *testing.T) {
	rig := createTestRig()
	p := createTestPlayerAt(rig, cp.Vector{X: 200, Y: 176})
	p.Destroy()
	l := NewLurker(cp.Vector{X: 200, Y: 176}, rig.svc)

	l.Update(l.tuning.WaitBottom + frame)

	assert.Equal(t, LurkerRising, l.State)
}

func TestLurker_ContactAlwaysDamages(t *testing.T) {
	for _, side := range []collision.Side{collision.SideTop, collision.SideBottom, collision.SideLeft, collision.SideRight} {
		t.Run(side.String(), func(t *testing.T) {
			rig := createTestRig()
			p := createTestPlayer(rig)
			p.CollectPower(TierBig)
			l := NewLurker(cp.Vector{}, rig.svc)

			l.OnCollision(p, side)

			assert.Equal(t, TierSmall, p.Tier)
			assert.True(t, l.Active, "stomping a lurker is not lethal")
		})
	}
}

func TestLurker_NotStompable(t *testing.T) {
	var e Entity = NewLurker(cp.Vector{}, nil)
	_, ok := e.(Stompable)
	assert.False(t, ok)
}

func createTestPlayerAt(rig *testRig, pos cp.Vector) *Player {
	p := NewPlayer(len(rig.players.list), pos, rig.svc)
	rig.players.list = append(rig.players.list, p)
	return p
}
