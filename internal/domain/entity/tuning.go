package entity

// PlayerTuning holds player movement and combat parameters (px, px/s, px/s², s)
type PlayerTuning struct {
	Width       float64
	SmallHeight float64
	BigHeight   float64

	WalkSpeed    float64
	RunSpeed     float64
	Acceleration float64
	Friction     float64
	AirControl   float64 // multiplier on Acceleration while airborne

	JumpSpeed      float64
	RunJumpBonus   float64 // added to JumpSpeed when jumping at run speed
	JumpCut        float64 // upward velocity multiplier when jump is released
	CoyoteTime     float64
	JumpBuffer     float64
	StompBounce    float64
	StompJumpBoost float64 // bounce when jump is held during a stomp

	Lives             int
	InvincibilityTime float64

	FireballCap      int
	FireballCooldown float64
}

// WalkerTuning holds the generic enemy parameters
type WalkerTuning struct {
	Width    float64
	Height   float64
	Speed    float64
	StunTime float64
	Points   int
}

// ShellTuning holds the shelled enemy parameters
type ShellTuning struct {
	Width        float64
	Height       float64
	ShellHeight  float64
	Speed        float64
	KickSpeed    float64
	ShellTimeout float64
	KickGrace    float64
	Points       int
}

// LurkerTuning holds the immune oscillating enemy parameters
type LurkerTuning struct {
	Width        float64
	Height       float64
	Speed        float64
	WaitTop      float64
	WaitBottom   float64
	DetectRadius float64
	Points       int
}

// ItemTuning holds collectible parameters
type ItemTuning struct {
	Size        float64
	Speed       float64
	PowerPoints int
	CoinPoints  int
	LifePoints  int
}

// FireballTuning holds projectile parameters
type FireballTuning struct {
	Size     float64
	Speed    float64
	Bounce   float64
	Lifetime float64
}

// TileTuning holds tile parameters
type TileTuning struct {
	Size        float64
	BrickPoints int
}

// Tuning is the full set of entity parameters
type Tuning struct {
	Player   PlayerTuning
	Walker   WalkerTuning
	Shell    ShellTuning
	Lurker   LurkerTuning
	Item     ItemTuning
	Fireball FireballTuning
	Tile     TileTuning
}

// DefaultTuning returns parameters for a 16 px tile world at 60 fps
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Width:             14,
			SmallHeight:       16,
			BigHeight:         32,
			WalkSpeed:         90,
			RunSpeed:          150,
			Acceleration:      600,
			Friction:          800,
			AirControl:        0.6,
			JumpSpeed:         330,
			RunJumpBonus:      30,
			JumpCut:           0.5,
			CoyoteTime:        0.1,
			JumpBuffer:        0.1,
			StompBounce:       220,
			StompJumpBoost:    330,
			Lives:             3,
			InvincibilityTime: 2.0,
			FireballCap:       2,
			FireballCooldown:  0.25,
		},
		Walker: WalkerTuning{
			Width:    16,
			Height:   16,
			Speed:    40,
			StunTime: 0.5,
			Points:   100,
		},
		Shell: ShellTuning{
			Width:        16,
			Height:       24,
			ShellHeight:  14,
			Speed:        40,
			KickSpeed:    240,
			ShellTimeout: 5.0,
			KickGrace:    0.2,
			Points:       100,
		},
		Lurker: LurkerTuning{
			Width:        16,
			Height:       24,
			Speed:        30,
			WaitTop:      1.5,
			WaitBottom:   2.0,
			DetectRadius: 32,
			Points:       200,
		},
		Item: ItemTuning{
			Size:        16,
			Speed:       50,
			PowerPoints: 1000,
			CoinPoints:  200,
			LifePoints:  0,
		},
		Fireball: FireballTuning{
			Size:     8,
			Speed:    200,
			Bounce:   180,
			Lifetime: 3.0,
		},
		Tile: TileTuning{
			Size:        16,
			BrickPoints: 50,
		},
	}
}
