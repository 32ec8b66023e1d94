package flappy

import (
	"github.com/vovakirdan/flapboard/internal/config"
	"github.com/vovakirdan/flapboard/internal/video"
)

// Scene colors.
const (
	ColorSky      = video.SkyBlue
	ColorObstacle = video.Green
	ColorScore    = video.White
	ColorPause    = video.White
	ColorEye      = video.White
	ColorPupil    = video.Black
	ColorBeak     = video.Orange
	ColorWing     = video.White
)

// BirdColors is the body color of each player's bird.
var BirdColors = [NumPlayers]video.Color{video.Yellow, video.Red}

// Score position: right edge and top of the combined score.
const (
	ScoreRightX = ScreenW - 10
	ScoreY      = 10
)

// Render draws the scene into dst, back to front: sky, obstacles, living
// birds, pause indicator and the combined score.
func (g *Game) Render(dst *video.Buffer, cfg config.DifficultyConfig) {
	dst.Fill(ColorSky)

	for _, o := range g.pool.Active() {
		top := o.TopRect()
		video.FillRect(dst, top.X, top.Y, top.Right(), top.Bottom(), ColorObstacle)
		bottom := o.BottomRect(cfg.GapHeight)
		video.FillRect(dst, bottom.X, bottom.Y, bottom.Right(), bottom.Bottom(), ColorObstacle)
	}

	for p, b := range g.birds {
		if b.Alive {
			drawBird(dst, PlayerX[p], int(b.Y), cfg.BirdRadius, BirdColors[p])
		}
	}

	if cfg.Paused {
		drawPause(dst)
	}

	video.DrawNumber(dst, g.scores[Player1]+g.scores[Player2], ScoreRightX, ScoreY, ColorScore)
}

// drawBird draws a bird centered at (x, y): body, eye with pupil, beak and wing.
func drawBird(dst *video.Buffer, x, y, r int, body video.Color) {
	video.FillCircle(dst, x, y, r, body)

	eyeX, eyeY := x+r/2, y-r/3
	video.FillCircle(dst, eyeX, eyeY, r/4, ColorEye)
	video.SetPixel(dst, eyeX, eyeY, ColorPupil)

	video.FillRect(dst, x+r, y-2, x+r+5, y+2, ColorBeak)
	video.FillRect(dst, x-r/2, y, x, y+5, ColorWing)
}

// drawPause draws two vertical bars in the middle of the screen.
func drawPause(dst *video.Buffer) {
	video.FillRect(dst, 145, 100, 155, 140, ColorPause)
	video.FillRect(dst, 165, 100, 175, 140, ColorPause)
}
