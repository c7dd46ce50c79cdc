package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID           string                       `json:"id" yaml:"id"`
	Name         string                       `json:"name" yaml:"name"`
	Size         StageSizeConfig              `json:"size" yaml:"size"`
	Background   string                       `json:"background" yaml:"background"`
	PlayerSpawns []PositionConfig             `json:"playerSpawns" yaml:"playerSpawns"`
	Layers       LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping  map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
	Enemies      []SpawnConfig                `json:"enemies" yaml:"enemies"`
	Items        []SpawnConfig                `json:"items" yaml:"items"`
}

type StageSizeConfig struct {
	Width    int `json:"width" yaml:"width"`
	Height   int `json:"height" yaml:"height"`
	TileSize int `json:"tileSize" yaml:"tileSize"`
}

// PositionConfig is a pixel position (top-left of the body)
type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// LayersConfig holds the character grid, one string per tile row
type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

// TileMappingConfig maps a collision layer character to a tile
type TileMappingConfig struct {
	Type     string `json:"type" yaml:"type"`
	Contents string `json:"contents,omitempty" yaml:"contents,omitempty"`
}

type SpawnConfig struct {
	Type        string  `json:"type" yaml:"type"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	FacingRight bool    `json:"facingRight" yaml:"facingRight"`
}
