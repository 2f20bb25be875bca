package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/rennick7/arena/config"
	"github.com/rennick7/arena/engine"
	gamenet "github.com/rennick7/arena/net"
	"github.com/rennick7/arena/obj"
)

const (
	baseWidth  = 960
	baseHeight = 600

	maxEventsPerFrame      = 64
	positionReportInterval = 6 // frames between local position reports
)

var backgroundColor = color.NRGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}

// Feed delivers decoded game events. The websocket client and the
// offline demo both satisfy it.
type Feed interface {
	Events() <-chan gamenet.Event
	Close() error
}

// Sender is the optional upstream half of a feed.
type Sender interface {
	Send(gamenet.Event) error
}

type Game struct {
	frames int

	stage   *engine.Stage
	spec    config.Spec
	cfgPath string
	watcher *config.Watcher
	feed    Feed

	players map[string]*obj.Player
	localID string

	hud    *HUD
	paused bool

	clipboardReady bool
}

func NewGame(spec config.Spec, cfgPath string, feed Feed, watcher *config.Watcher, status string, clipboardReady bool) *Game {
	stage := engine.NewStage(spec.WorldWidth, spec.WorldHeight, baseWidth, baseHeight)
	g := &Game{
		stage:          stage,
		spec:           spec,
		cfgPath:        cfgPath,
		watcher:        watcher,
		feed:           feed,
		players:        map[string]*obj.Player{},
		clipboardReady: clipboardReady,
	}
	g.hud = NewHUD(g, status)
	stage.On(obj.EventUpdateHealth, g.hud.SetHealth)
	stage.Camera().Follow(spec.WorldWidth/2, spec.WorldHeight/2)
	return g
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.clipboardReady && inpututil.IsKeyJustPressed(ebiten.KeyF2) && g.localID != "" {
		clipboard.Write(clipboard.FmtText, []byte(g.localID))
	}
	g.hud.Update()
	if g.paused {
		return nil
	}

	g.drainEvents()
	g.reloadConfig()

	g.stage.Step()
	for _, p := range g.players {
		p.Update()
	}

	if local := g.players[g.localID]; local != nil {
		x, y := local.Position()
		g.stage.Camera().Follow(x, y)
		g.reportPosition(local)
	}
	return nil
}

func (g *Game) drainEvents() {
	if g.feed == nil {
		return
	}
	for i := 0; i < maxEventsPerFrame; i++ {
		select {
		case e := <-g.feed.Events():
			g.dispatch(e)
		default:
			return
		}
	}
}

// dispatch routes one decoded event to the entity it targets. Events
// for unknown ids are dropped; the next join or snapshot recovers.
func (g *Game) dispatch(e gamenet.Event) {
	switch e.Type {
	case gamenet.TypeHello:
		g.localID = e.ID
		g.spawn(e)
	case gamenet.TypeJoin:
		g.spawn(e)
	case gamenet.TypeLeave:
		if p := g.players[e.ID]; p != nil {
			p.Destroy()
			delete(g.players, e.ID)
		}
	case gamenet.TypeMove:
		if p := g.players[e.ID]; p != nil && !p.Local {
			p.MoveTo(e.X, e.Y)
		}
	case gamenet.TypeHealth:
		if p := g.players[e.ID]; p != nil {
			p.SetHealth(e.Health)
		}
	case gamenet.TypeDamage:
		if p := g.players[e.ID]; p != nil {
			p.Damage(e.Amount)
		}
	case gamenet.TypeHeal:
		if p := g.players[e.ID]; p != nil {
			p.Heal(e.Amount)
		}
	case gamenet.TypeBoost:
		if p := g.players[e.ID]; p != nil {
			frames := e.Frames
			if frames <= 0 {
				frames = g.spec.BoostFrames
			}
			p.ApplySpeedBoost(frames)
		}
	case gamenet.TypeReset:
		if p := g.players[e.ID]; p != nil {
			p.Reset()
		}
	default:
		log.Printf("game: unknown event type %q", e.Type)
	}
}

func (g *Game) spawn(e gamenet.Event) {
	if _, ok := g.players[e.ID]; ok {
		return
	}
	colorIdx := -1
	if e.Color != nil {
		colorIdx = *e.Color
	}
	x, y := e.X, e.Y
	if x == 0 && y == 0 {
		x, y = g.spec.WorldWidth/2, g.spec.WorldHeight/2
	}
	name := e.Name
	if name == "" {
		name = e.ID
	}
	p := obj.NewPlayer(g.stage, g.spec.Tuning(), e.ID, name, "ship", x, y, g.localID, colorIdx)
	g.players[e.ID] = p
	if p.Local {
		g.hud.SetHealth(p.Health())
	}
}

// reportPosition sends the local position upstream every few frames
// when the feed supports it.
func (g *Game) reportPosition(local *obj.Player) {
	if g.frames%positionReportInterval != 0 {
		return
	}
	s, ok := g.feed.(Sender)
	if !ok {
		return
	}
	x, y := local.Position()
	if err := s.Send(gamenet.Event{Type: gamenet.TypeMove, ID: g.localID, X: x, Y: y}); err != nil {
		// the client reconnects on its own; skip this report
		return
	}
}

// reloadConfig applies tuning changes picked up by the watcher.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		spec, err := config.Load(g.cfgPath)
		if err != nil {
			log.Printf("game: config reload: %v", err)
			return
		}
		g.spec = spec
		tun := spec.Tuning()
		for _, p := range g.players {
			p.SetTuning(tun)
		}
		log.Printf("game: config reloaded from %s", g.cfgPath)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.stage.Draw(screen)
	g.hud.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  players: %d", ebiten.ActualFPS(), len(g.players)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
