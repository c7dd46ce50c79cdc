package system

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// LoadStage populates w from a stage: one static tile per mapped grid cell,
// the configured enemies and items, and up to players players placed on the
// stage's spawn points in order.
func LoadStage(cfg *config.StageConfig, w *World, players int) error {
	if cfg == nil {
		return fmt.Errorf("stage: %w", config.ErrInvalid)
	}
	ts := float64(cfg.Size.TileSize)
	size := cp.Vector{X: ts, Y: ts}

	for y, row := range cfg.Layers.Collision {
		for x, char := range row {
			if char == '.' || char == ' ' {
				continue
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				return fmt.Errorf("stage %s: tile %q at %d,%d: %w", cfg.ID, char, x, y, config.ErrInvalid)
			}
			tileType, err := entity.ParseTileType(mapping.Type)
			if err != nil {
				return fmt.Errorf("stage %s: %w", cfg.ID, err)
			}
			contents := entity.KindNone
			if mapping.Contents != "" {
				if contents, err = entity.ParseKind(mapping.Contents); err != nil {
					return fmt.Errorf("stage %s: %w", cfg.ID, err)
				}
			}
			pos := cp.Vector{X: float64(x) * ts, Y: float64(y) * ts}
			if _, err := w.AddTile(tileType, pos, size, contents); err != nil {
				return fmt.Errorf("stage %s: %w", cfg.ID, err)
			}
		}
	}

	for _, group := range [][]config.SpawnConfig{cfg.Enemies, cfg.Items} {
		for _, sp := range group {
			if err := spawnFromConfig(w, sp); err != nil {
				return fmt.Errorf("stage %s: %w", cfg.ID, err)
			}
		}
	}

	if players > 0 && len(cfg.PlayerSpawns) == 0 {
		return fmt.Errorf("stage %s: no player spawns: %w", cfg.ID, config.ErrInvalid)
	}
	for i := 0; i < players; i++ {
		spawn := cfg.PlayerSpawns[i%len(cfg.PlayerSpawns)]
		w.AddPlayer(cp.Vector{X: spawn.X, Y: spawn.Y})
	}
	return nil
}

func spawnFromConfig(w *World, sp config.SpawnConfig) error {
	kind, err := entity.ParseKind(sp.Type)
	if err != nil {
		return err
	}
	e, err := w.SpawnKind(kind, cp.Vector{X: sp.X, Y: sp.Y})
	if err != nil {
		return err
	}
	if !sp.FacingRight {
		return nil
	}
	switch v := e.(type) {
	case *entity.Walker:
		v.Dir = 1
	case *entity.Shell:
		v.Dir = 1
	case *entity.Item:
		v.Dir = 1
	}
	return nil
}
