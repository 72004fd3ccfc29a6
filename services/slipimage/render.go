// Package slipimage renders a quiniela as a self-contained PNG summary:
// a header band with the slip number and timestamp, one row per entry
// and a footer with the outcome counts and the disclaimer.
package slipimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"github.com/leonmuri/progol-backend/lib/quiniela"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	imageWidth   = 800
	headerHeight = 120
	rowHeight    = 50
	footerHeight = 80
)

// Progol green plus the neutral palette of the printed slips.
var (
	colorGreen     = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLightGray = color.RGBA{R: 240, G: 248, B: 255, A: 255}
	colorGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorBlack     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

const Disclaimer = "Predicciones aleatorias - Solo para entretenimiento"

// Render draws the slip into a PNG and returns its bytes.
func Render(slip quiniela.Slip, slipNumber int64, generatedAt time.Time) ([]byte, error) {
	totalHeight := headerHeight + len(slip)*rowHeight + footerHeight

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, totalHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)

	drawHeader(img, slipNumber, generatedAt)

	y := headerHeight
	for i, entry := range slip {
		drawEntry(img, entry, y, i%2 == 0)
		y += rowHeight
	}

	drawFooter(img, slip, y)

	var buffer bytes.Buffer
	err := png.Encode(&buffer, img)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func drawHeader(img *image.RGBA, slipNumber int64, generatedAt time.Time) {
	fillRect(img, image.Rect(0, 0, imageWidth, headerHeight), colorGreen)

	title := fmt.Sprintf("QUINIELA PROGOL #%d", slipNumber)
	drawTextCentered(img, title, 45, colorWhite)

	timestamp := generatedAt.Format("02/01/2006 15:04")
	drawTextCentered(img, timestamp, 85, colorWhite)
}

func drawEntry(img *image.RGBA, entry quiniela.Entry, y int, lightBackground bool) {
	if lightBackground {
		fillRect(img, image.Rect(0, y, imageWidth, y+rowHeight), colorLightGray)
	}

	baseline := y + rowHeight/2 + 5

	drawText(img, fmt.Sprintf("%d", entry.MatchIndex), 20, baseline, colorGray)

	teams := fmt.Sprintf("%s vs %s", truncate(entry.Home, 25), truncate(entry.Away, 25))
	drawText(img, teams, 60, baseline, colorBlack)

	prediction := fmt.Sprintf("[%s] %s", entry.Code, entry.Outcome.Label())
	width := measureText(prediction)
	x := imageWidth - width - 30
	fillRect(img, image.Rect(x-10, y+10, x+width+10, y+rowHeight-10), colorGreen)
	drawText(img, prediction, x, baseline, colorWhite)
}

func drawFooter(img *image.RGBA, slip quiniela.Slip, y int) {
	fillRect(img, image.Rect(20, y, imageWidth-20, y+2), colorGray)

	stats := quiniela.ComputeStats(slip)
	summary := fmt.Sprintf(
		"Locales: %d | Empates: %d | Visitantes: %d",
		stats.Counts[quiniela.Home],
		stats.Counts[quiniela.Draw],
		stats.Counts[quiniela.Away],
	)
	drawTextCentered(img, summary, y+30, colorGray)
	drawTextCentered(img, Disclaimer, y+55, colorGray)
}

func fillRect(img *image.RGBA, rect image.Rectangle, fill color.Color) {
	draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
}

func textFace() font.Face {
	return basicfont.Face7x13
}

func measureText(text string) int {
	return font.MeasureString(textFace(), text).Ceil()
}

func drawText(img *image.RGBA, text string, x, baseline int, fill color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fill),
		Face: textFace(),
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

func drawTextCentered(img *image.RGBA, text string, baseline int, fill color.Color) {
	x := (imageWidth - measureText(text)) / 2
	drawText(img, text, x, baseline, fill)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
