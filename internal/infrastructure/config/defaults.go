package config

// DefaultPhysicsConfig returns tuning for a 320x240 view of 16 px tiles at 60 fps
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      980,
			MaxFallSpeed: 600,
			TieEpsilon:   0.01,
			KillPlaneY:   1000,
		},
		Movement: MovementConfig{
			WalkSpeed:    90,
			RunSpeed:     150,
			Acceleration: 600,
			Friction:     800,
			AirControl:   0.6,
		},
		Jump: JumpConfig{
			Speed:         330,
			RunBonus:      30,
			CutMultiplier: 0.5,
			CoyoteTime:    0.1,
			JumpBuffer:    0.1,
		},
		Combat: CombatConfig{
			Lives:             3,
			InvincibilityTime: 2.0,
			StompBounce:       220,
			StompJumpBoost:    330,
			FireballCap:       2,
			FireballCooldown:  0.25,
		},
	}
}

// DefaultEntitiesConfig returns sizes and timings for the stock entities
func DefaultEntitiesConfig() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{
			Width:       14,
			SmallHeight: 16,
			BigHeight:   32,
		},
		Enemies: EnemiesConfig{
			Walker: WalkerConfig{
				Width:    16,
				Height:   16,
				Speed:    40,
				StunTime: 0.5,
				Points:   100,
			},
			Shell: ShellConfig{
				Width:        16,
				Height:       24,
				ShellHeight:  14,
				Speed:        40,
				KickSpeed:    240,
				ShellTimeout: 5.0,
				KickGrace:    0.2,
				Points:       100,
			},
			Lurker: LurkerConfig{
				Width:        16,
				Height:       24,
				Speed:        30,
				WaitTop:      1.5,
				WaitBottom:   2.0,
				DetectRadius: 32,
				Points:       200,
			},
		},
		Items: ItemsConfig{
			Size:        16,
			Speed:       50,
			PowerPoints: 1000,
			CoinPoints:  200,
		},
		Fireball: FireballConfig{
			Size:     8,
			Speed:    200,
			Bounce:   180,
			Lifetime: 3.0,
		},
		Tiles: TilesConfig{
			Size:        16,
			BrickPoints: 50,
		},
	}
}
