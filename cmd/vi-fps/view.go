package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/physics"
	"github.com/lixenwraith/vi-fps/vmath"
	"github.com/lixenwraith/vi-fps/weapon"
)

const (
	hudRows     = 3
	logCapacity = 4
)

var (
	styleDefault = tcell.StyleDefault
	styleGrass   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleGravel  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRound   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleAlert   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// headingGlyphs are 8 compass arrows starting at +Z (up on screen), clockwise
var headingGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// screenPresenter maps the cursor lock to the terminal cursor
type screenPresenter struct {
	screen tcell.Screen
}

func (p screenPresenter) SetCursorLocked(locked bool) {
	if locked {
		p.screen.HideCursor()
		p.screen.EnableMouse(tcell.MouseMotionEvents)
		return
	}
	p.screen.DisableMouse()
}

// eventLog keeps the last few gameplay messages for the HUD
type eventLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *eventLog) observe(ev event.GameEvent) {
	var line string
	switch p := ev.Payload.(type) {
	case *event.ShotPayload:
		if p.Hit {
			line = fmt.Sprintf("%s hit %s", p.Weapon, p.HitTag)
		}
	case *event.FireRejectedPayload:
		if p.Reason == event.RejectEmpty {
			line = p.Weapon + " empty"
		}
	case *event.ReloadPayload:
		line = fmt.Sprintf("%s %s", p.Weapon, ev.Type)
	case *event.WeaponSwitchedPayload:
		line = fmt.Sprintf("%s -> %s", p.From, p.To)
	case *event.ProjectileHitPayload:
		line = fmt.Sprintf("%s round hit %s", p.Weapon, p.Tag)
	}
	if line == "" {
		return
	}

	l.mu.Lock()
	l.lines = append(l.lines, line)
	if len(l.lines) > logCapacity {
		l.lines = l.lines[len(l.lines)-logCapacity:]
	}
	l.mu.Unlock()
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// view draws a top-down map of the arena and a status HUD
type view struct {
	screen  tcell.Screen
	world   *engine.World
	terrain *physics.Terrain
	camera  *engine.CameraState
	log     *eventLog
}

// draw renders one frame, caller holds the world update lock
func (v *view) draw(paused bool) {
	v.screen.Clear()
	width, height := v.screen.Size()
	mapHeight := height - hudRows
	if width <= 0 || mapHeight <= 0 {
		v.screen.Show()
		return
	}

	// Terminal cells are about twice as tall as wide
	spanX := v.terrain.MaxX - v.terrain.MinX
	spanZ := v.terrain.MaxZ - v.terrain.MinZ
	scale := math.Min(float64(width)/spanX, float64(mapHeight)*2/spanZ)

	toCell := func(x, z float64) (int, int) {
		cx := int((x - v.terrain.MinX) * scale)
		cy := mapHeight - 1 - int((z-v.terrain.MinZ)*scale/2)
		return cx, cy
	}

	for cy := 0; cy < mapHeight; cy++ {
		for cx := 0; cx < width; cx++ {
			x := v.terrain.MinX + (float64(cx)+0.5)/scale
			z := v.terrain.MinZ + (float64(mapHeight-1-cy)+0.5)*2/scale
			if x > v.terrain.MaxX || z > v.terrain.MaxZ {
				continue
			}
			switch v.terrain.MaterialAt(x, z) {
			case parameter.MaterialGrass:
				v.screen.SetContent(cx, cy, '"', nil, styleGrass)
			case parameter.MaterialGravel:
				v.screen.SetContent(cx, cy, ':', nil, styleGravel)
			default:
				v.screen.SetContent(cx, cy, '.', nil, styleGround)
			}
		}
	}

	for _, b := range v.terrain.Boxes {
		x0, y0 := toCell(b.Min.X, b.Max.Z)
		x1, y1 := toCell(b.Max.X, b.Min.Z)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				v.screen.SetContent(cx, cy, '#', nil, styleTarget)
			}
		}
	}

	actor := v.world.Player
	for _, fc := range actor.Loadout.Weapons() {
		if p, ok := fc.Effect().(*weapon.Projectile); ok {
			for _, r := range p.Rounds() {
				cx, cy := toCell(r.Position.X, r.Position.Z)
				v.screen.SetContent(cx, cy, '*', nil, styleRound)
			}
		}
	}

	pos := actor.Body.Position()
	px, py := toCell(pos.X, pos.Z)
	v.screen.SetContent(px, py, headingGlyph(actor.Body.Heading()), nil, stylePlayer)

	v.drawHUD(mapHeight, width, paused)
	v.screen.Show()
}

func (v *view) drawHUD(top, width int, paused bool) {
	actor := v.world.Player
	rot := v.camera.Rotation()
	amp, freq := v.camera.Noise()
	pos := actor.Body.Position()

	status := fmt.Sprintf("pos %.1f,%.1f,%.1f  heading %.0f  pitch %.1f  speed %.1fx%.2f",
		pos.X, pos.Y, pos.Z, actor.Body.Heading(), rot.Pitch,
		vmath.V3FHorizontalMag(actor.Body.Velocity()), actor.Locomotion.CurrentSpeedMultiplier)
	drawText(v.screen, 0, top, width, status, styleHUD)

	line := fmt.Sprintf("recoil %.2f,%.2f  bob %.3f@%.2f  steps %d %s",
		actor.Recoil.Current.X, actor.Recoil.Current.Y, amp, freq,
		actor.Footstep.Steps, actor.Footstep.LastMaterial)
	if fc := actor.Weapon(); fc != nil {
		line = fmt.Sprintf("%s [%d/%d] %.0f/%.0f  %s", fc.Config().Name,
			actor.Loadout.Index()+1, actor.Loadout.Len(), fc.Ammo(), fc.Config().MagazineSize, line)
		if fc.IsReloading() {
			line = "RELOADING " + line
		}
	}
	drawText(v.screen, 0, top+1, width, line, styleHUD)

	messages := v.log.snapshot()
	tail := ""
	for i, m := range messages {
		if i > 0 {
			tail += " | "
		}
		tail += m
	}
	if paused {
		drawText(v.screen, 0, top+2, width, "PAUSED  "+tail, styleAlert)
		return
	}
	drawText(v.screen, 0, top+2, width, tail, styleDefault)
}

func headingGlyph(heading float64) rune {
	deg := heading
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Round(deg/45)) % len(headingGlyphs)
	return headingGlyphs[idx]
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
