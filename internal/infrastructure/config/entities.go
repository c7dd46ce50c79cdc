package config

// EntitiesConfig is the root config for entities.json / entities.yaml
type EntitiesConfig struct {
	Player   PlayerConfig   `json:"player" yaml:"player"`
	Enemies  EnemiesConfig  `json:"enemies" yaml:"enemies"`
	Items    ItemsConfig    `json:"items" yaml:"items"`
	Fireball FireballConfig `json:"fireball" yaml:"fireball"`
	Tiles    TilesConfig    `json:"tiles" yaml:"tiles"`
}

type PlayerConfig struct {
	Width       float64 `json:"width" yaml:"width"`
	SmallHeight float64 `json:"smallHeight" yaml:"smallHeight"`
	BigHeight   float64 `json:"bigHeight" yaml:"bigHeight"`
}

type EnemiesConfig struct {
	Walker WalkerConfig `json:"walker" yaml:"walker"`
	Shell  ShellConfig  `json:"shell" yaml:"shell"`
	Lurker LurkerConfig `json:"lurker" yaml:"lurker"`
}

type WalkerConfig struct {
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Speed    float64 `json:"speed" yaml:"speed"`
	StunTime float64 `json:"stunTime" yaml:"stunTime"`
	Points   int     `json:"points" yaml:"points"`
}

type ShellConfig struct {
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
	ShellHeight  float64 `json:"shellHeight" yaml:"shellHeight"`
	Speed        float64 `json:"speed" yaml:"speed"`
	KickSpeed    float64 `json:"kickSpeed" yaml:"kickSpeed"`
	ShellTimeout float64 `json:"shellTimeout" yaml:"shellTimeout"`
	KickGrace    float64 `json:"kickGrace" yaml:"kickGrace"`
	Points       int     `json:"points" yaml:"points"`
}

type LurkerConfig struct {
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
	Speed        float64 `json:"speed" yaml:"speed"`
	WaitTop      float64 `json:"waitTop" yaml:"waitTop"`
	WaitBottom   float64 `json:"waitBottom" yaml:"waitBottom"`
	DetectRadius float64 `json:"detectRadius" yaml:"detectRadius"`
	Points       int     `json:"points" yaml:"points"`
}

type ItemsConfig struct {
	Size        float64 `json:"size" yaml:"size"`
	Speed       float64 `json:"speed" yaml:"speed"`
	PowerPoints int     `json:"powerPoints" yaml:"powerPoints"`
	CoinPoints  int     `json:"coinPoints" yaml:"coinPoints"`
	LifePoints  int     `json:"lifePoints" yaml:"lifePoints"`
}

type FireballConfig struct {
	Size     float64 `json:"size" yaml:"size"`
	Speed    float64 `json:"speed" yaml:"speed"`
	Bounce   float64 `json:"bounce" yaml:"bounce"`
	Lifetime float64 `json:"lifetime" yaml:"lifetime"`
}

type TilesConfig struct {
	Size        float64 `json:"size" yaml:"size"`
	BrickPoints int     `json:"brickPoints" yaml:"brickPoints"`
}
