package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.DefaultPhysicsConfig(),
		Entities: config.DefaultEntitiesConfig(),
	}
}

// createTestStage is a walled corridor with ground at y=80 and a goal
// column just inside the right wall
func createTestStage() *config.StageConfig {
	return &config.StageConfig{
		ID:           "corridor",
		Size:         config.StageSizeConfig{Width: 192, Height: 96, TileSize: 16},
		PlayerSpawns: []config.PositionConfig{{X: 32, Y: 64}},
		Layers: config.LayersConfig{
			Collision: []string{
				"#.........G#",
				"#.........G#",
				"#.........G#",
				"#.........G#",
				"#.........G#",
				"############",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "ground"},
			"G": {Type: "goal"},
		},
	}
}

func TestRunner_IdleSettles(t *testing.T) {
	runner := NewRunner(createTestGameConfig(), createTestStage(), nil)

	res, err := runner.Run(CreateTestReplayData(60, 1, entity.Input{}))

	require.NoError(t, err)
	assert.Equal(t, "corridor", res.Stage)
	assert.Equal(t, 60, res.Frames)
	assert.False(t, res.Completed)
	assert.False(t, res.GameOver)
	require.Len(t, res.Players, 1)
	assert.InDelta(t, 32.0, res.Players[0].X, 1e-9)
	assert.InDelta(t, 64.0, res.Players[0].Y, 1e-9)
	assert.Equal(t, 3, res.Players[0].Lives)
}

func TestRunner_WalkToGoal(t *testing.T) {
	runner := NewRunner(createTestGameConfig(), createTestStage(), nil)

	res, err := runner.Run(CreateTestReplayData(600, 1, entity.Input{Axis: 1}))

	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Less(t, res.Frames, 600, "simulation stops once the stage is cleared")
}

func TestRunner_FallingOutEndsGame(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Physics.Physics.KillPlaneY = 100
	stage := createTestStage()
	stage.Layers.Collision = nil

	res, err := NewRunner(cfg, stage, nil).Run(CreateTestReplayData(600, 1, entity.Input{}))

	require.NoError(t, err)
	assert.True(t, res.GameOver)
	assert.Less(t, res.Frames, 600)
	require.Len(t, res.Players, 1)
	assert.Zero(t, res.Players[0].Lives)
	assert.False(t, res.Players[0].Active)
}

func TestRunner_Deterministic(t *testing.T) {
	data := CreateTestReplayData(240, 2, entity.Input{Axis: 1, Run: true, Jump: true})
	for i := range data.Frames {
		if i%30 < 10 {
			data.Frames[i].P[1] = SlotInput{A: -1}
		}
	}
	runner := NewRunner(createTestGameConfig(), createTestStage(), nil)

	first, err := runner.Run(data)
	require.NoError(t, err)
	second, err := runner.Run(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunner_ReplaysRecording(t *testing.T) {
	rec := NewRecorder("corridor", 1, 1.0/60.0)
	for i := 0; i < 90; i++ {
		rec.RecordFrame([]entity.Input{{Axis: 1, Jump: i == 20}})
	}
	path := filepath.Join(t.TempDir(), "corridor.json")
	require.NoError(t, rec.Save(path))
	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	runner := NewRunner(createTestGameConfig(), createTestStage(), nil)

	live, err := runner.Run(rec.GetData())
	require.NoError(t, err)
	replayed, err := runner.Run(*loaded)
	require.NoError(t, err)

	assert.Equal(t, live, replayed)
	assert.Greater(t, replayed.Players[0].X, 32.0)
}

func TestRunner_Errors(t *testing.T) {
	t.Run("no players", func(t *testing.T) {
		_, err := NewRunner(createTestGameConfig(), createTestStage(), nil).Run(ReplayData{})
		assert.ErrorIs(t, err, ErrNoPlayers)
	})

	t.Run("no stage", func(t *testing.T) {
		_, err := NewRunner(createTestGameConfig(), nil, nil).Run(CreateTestReplayData(1, 1, entity.Input{}))
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("bad stage", func(t *testing.T) {
		stage := createTestStage()
		stage.PlayerSpawns = nil

		_, err := NewRunner(createTestGameConfig(), stage, nil).Run(CreateTestReplayData(1, 1, entity.Input{}))
		assert.ErrorContains(t, err, "failed to load stage")
	})
}

func TestRunner_DefaultTimestep(t *testing.T) {
	data := CreateTestReplayData(30, 1, entity.Input{})
	data.DT = 0

	res, err := NewRunner(nil, createTestStage(), nil).Run(data)

	require.NoError(t, err)
	assert.Equal(t, 30, res.Frames)
}
