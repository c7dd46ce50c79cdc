package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/stomp/internal/application/state"
	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorGround     = color.RGBA{120, 72, 40, 255}
	colorBrick      = color.RGBA{180, 90, 50, 255}
	colorQuestion   = color.RGBA{230, 180, 40, 255}
	colorCheckpoint = color.RGBA{80, 160, 220, 160}
	colorGoal       = color.RGBA{250, 250, 250, 160}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorLurker     = color.RGBA{60, 170, 80, 255}
	colorItem       = color.RGBA{240, 120, 200, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255}
	colorFireball   = color.RGBA{255, 140, 0, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 128}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
	colorClear      = color.RGBA{0, 80, 0, 180}
)

// player colours per slot, tinted by tier
var playerColors = []color.RGBA{
	{220, 40, 40, 255},
	{40, 180, 60, 255},
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	for _, v := range p.world.Engine().Snapshot() {
		p.drawBody(screen, v)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorOverlay, "PAUSED\n\nESC: resume  Q: quit")
	case state.StateGameOver:
		p.drawOverlay(screen, colorGameOver,
			fmt.Sprintf("GAME OVER\n\nScore: %d\n\nR: restart  Q: quit", p.TotalScore()))
	case state.StateStageClear:
		p.drawOverlay(screen, colorClear,
			fmt.Sprintf("STAGE CLEAR\n\nScore: %d\n\nR: restart  Q: quit", p.TotalScore()))
	}
}

func (p *Playing) drawBody(screen *ebiten.Image, v system.BodyView) {
	x := float32(v.Bounds.X - p.camX)
	y := float32(v.Bounds.Y - p.camY)
	w := float32(v.Bounds.W)
	h := float32(v.Bounds.H)
	if x+w < 0 || y+h < 0 || x > float32(p.screenW) || y > float32(p.screenH) {
		return
	}

	if v.Kind == entity.KindPlayer {
		p.drawPlayer(screen, v, x, y, w, h)
		return
	}
	c := bodyColor(v)
	if v.Static && !v.Solid {
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, v system.BodyView, x, y, w, h float32) {
	var player *entity.Player
	for _, candidate := range p.world.Players() {
		if candidate.ID == v.ID {
			player = candidate
		}
	}
	if player == nil {
		return
	}
	c := playerColors[player.Slot%len(playerColors)]
	if player.Tier == entity.TierFire {
		c = color.RGBA{255, 255, 255, 255}
	}
	// Flash when invincible
	if player.IsInvincible() && int(player.InvincibleTime()*10)%2 == 0 {
		c.A = 96
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func bodyColor(v system.BodyView) color.Color {
	switch v.Kind {
	case entity.KindTile:
		switch v.State {
		case entity.TileBrick.String():
			return colorBrick
		case entity.TileQuestion.String():
			return colorQuestion
		case entity.TileCheckpoint.String():
			return colorCheckpoint
		case entity.TileGoal.String():
			return colorGoal
		}
		return colorGround
	case entity.KindLurker:
		return colorLurker
	case entity.KindWalker, entity.KindShell:
		return colorEnemy
	case entity.KindCoin:
		return colorCoin
	case entity.KindFireball:
		return colorFireball
	}
	if v.Kind.IsItem() {
		return colorItem
	}
	return colorEnemy
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	for _, player := range p.world.Players() {
		fmt.Fprintf(&b, "P%d %-5s lives:%d coins:%02d score:%06d\n",
			player.Slot+1, player.Tier, player.Lives, player.Coins, player.Score)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)

	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-60, p.screenH-16)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// parseColor reads a "#rrggbb" stage background, falling back to def
func parseColor(s string, def color.RGBA) color.RGBA {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return def
	}
	return color.RGBA{r, g, b, 255}
}
