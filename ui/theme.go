package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// theme holds the faces and colors shared by every screen.
type theme struct {
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func newTheme() (*theme, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading UI font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading UI font: %w", err)
	}
	return &theme{
		titleFace:  &text.GoTextFace{Source: bold, Size: 32},
		normalFace: &text.GoTextFace{Source: regular, Size: 14},
		smallFace:  &text.GoTextFace{Source: regular, Size: 10},
	}, nil
}

var (
	panelColor    = color.RGBA{20, 20, 30, 220}
	textColor     = color.RGBA{255, 255, 255, 255}
	subtleColor   = color.RGBA{200, 200, 200, 255}
	accentColor   = color.RGBA{255, 180, 50, 255}
	buttonIdle    = color.RGBA{60, 60, 80, 255}
	buttonHover   = color.RGBA{80, 80, 110, 255}
	buttonPressed = color.RGBA{40, 40, 60, 255}
)

// centeredColumn is a vertical stack anchored to the middle of its parent.
func centeredColumn(background bool) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	}
	if background {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)))
	}
	return widget.NewContainer(opts...)
}

func anchoredRoot() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

func (t *theme) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

func (t *theme) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(buttonIdle),
			Hover:   image.NewNineSliceColor(buttonHover),
			Pressed: image.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, &t.normalFace, &widget.ButtonTextColor{
			Idle:    textColor,
			Hover:   accentColor,
			Pressed: subtleColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}
