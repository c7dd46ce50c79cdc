package config

// PhysicsConfig is the root config for physics.json / physics.yaml.
// All units are pixels and seconds.
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display" yaml:"display"`
	Physics  PhysicsSettings `json:"physics" yaml:"physics"`
	Movement MovementConfig  `json:"movement" yaml:"movement"`
	Jump     JumpConfig      `json:"jump" yaml:"jump"`
	Combat   CombatConfig    `json:"combat" yaml:"combat"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity" yaml:"gravity"`           // px/s²
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"` // px/s
	// TieEpsilon is how close the vertical and horizontal penetration
	// minima may be before the vertical axis wins
	TieEpsilon float64 `json:"tieEpsilon" yaml:"tieEpsilon"`
	KillPlaneY float64 `json:"killPlaneY" yaml:"killPlaneY"`
}

type MovementConfig struct {
	WalkSpeed    float64 `json:"walkSpeed" yaml:"walkSpeed"`
	RunSpeed     float64 `json:"runSpeed" yaml:"runSpeed"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	Friction     float64 `json:"friction" yaml:"friction"`
	AirControl   float64 `json:"airControl" yaml:"airControl"`
}

type JumpConfig struct {
	Speed         float64 `json:"speed" yaml:"speed"`
	RunBonus      float64 `json:"runBonus" yaml:"runBonus"`
	CutMultiplier float64 `json:"cutMultiplier" yaml:"cutMultiplier"`
	CoyoteTime    float64 `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBuffer    float64 `json:"jumpBuffer" yaml:"jumpBuffer"`
}

type CombatConfig struct {
	Lives             int     `json:"lives" yaml:"lives"`
	InvincibilityTime float64 `json:"invincibilityTime" yaml:"invincibilityTime"`
	StompBounce       float64 `json:"stompBounce" yaml:"stompBounce"`
	StompJumpBoost    float64 `json:"stompJumpBoost" yaml:"stompJumpBoost"`
	FireballCap       int     `json:"fireballCap" yaml:"fireballCap"`
	FireballCooldown  float64 `json:"fireballCooldown" yaml:"fireballCooldown"`
}
