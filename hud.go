package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD overlays the scene: local health readout and feed status in the
// top-left corner, plus a centered pause panel while the game is
// paused. Built from colored nine-slices and the basic font so no
// theme assets are needed.
type HUD struct {
	game  *Game
	ui    *ebitenui.UI
	pause *ebitenui.UI

	healthText *widget.Text
	statusText *widget.Text
}

func NewHUD(g *Game, status string) *HUD {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}

	healthText := widget.NewText(
		widget.TextOpts.Text("HP --", &face, white),
	)
	statusText := widget.NewText(
		widget.TextOpts.Text(status, &face, grey),
	)

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})
	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	box.AddChild(healthText)
	box.AddChild(statusText)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(box)

	h := &HUD{
		game:       g,
		ui:         &ebitenui.UI{Container: root},
		healthText: healthText,
		statusText: statusText,
	}
	h.pause = newPauseUI(g, &face)
	return h
}

func newPauseUI(g *Game, face *ebtext.Face) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// SetHealth updates the health readout; wired to the updateHealth
// event stream.
func (h *HUD) SetHealth(v int) {
	h.healthText.Label = fmt.Sprintf("HP %d", v)
}

// SetStatus updates the feed status line.
func (h *HUD) SetStatus(s string) {
	h.statusText.Label = s
}

func (h *HUD) Update() {
	h.ui.Update()
	if h.game.paused {
		h.pause.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
	if h.game.paused {
		h.pause.Draw(screen)
	}
}
