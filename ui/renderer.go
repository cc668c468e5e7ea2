package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"word-snake/game"
	"word-snake/game/manager"
	"word-snake/game/types"
	"word-snake/ui/hud"
)

const borderPadding = 10

var (
	colorBoard   = rl.Color{R: 238, G: 242, B: 255, A: 255}
	colorBorder  = rl.Color{R: 49, G: 46, B: 129, A: 255}
	colorHead    = rl.Color{R: 79, G: 70, B: 229, A: 255}
	colorBody    = rl.Color{R: 99, G: 102, B: 241, A: 255}
	colorCorrect = rl.Color{R: 74, G: 222, B: 128, A: 255}
	colorDecoy   = rl.Color{R: 248, G: 113, B: 113, A: 255}
	colorSlot    = rl.Color{R: 243, G: 244, B: 246, A: 255}
	colorPanel   = rl.Color{R: 30, G: 27, B: 75, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window, the board the rest
	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

// layout fits the grid into the game area and centres it.
func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2

	r.cellSize = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = (r.gameWidth - r.totalGridWidth) / 2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

// Draw renders one frame.
func (r *Renderer) Draw(s game.State, session manager.SessionStats, autopilot bool) {
	started := s.Phase != game.PhaseIdle
	r.UpdateDimensions()
	r.layout(s.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(colorPanel)

	fontSize := min(r.screenHeight/40, r.statsPanel/14)
	lineHeight := fontSize + fontSize/2

	rl.DrawRectangle(r.offsetX-4, r.offsetY-4, r.totalGridWidth+8, r.totalGridHeight+8, colorBorder)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, colorBoard)

	r.drawSnake(s)
	r.drawTiles(s)

	switch {
	case !started:
		r.drawOverlay([]string{hud.Title, hud.StartPrompt(autopilot)}, fontSize*2, 0.5)
	case s.Terminal():
		over, _ := s.GameOver()
		r.drawOverlay(hud.GameOver(over), fontSize+fontSize/2, 0.7)
	}

	r.drawStatsPanel(s, session, started, autopilot, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) cellRect(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawSnake(s game.State) {
	letters := s.SegmentLetters()
	// Tail first so the head is drawn on top
	for i := len(s.Snake.Body) - 1; i >= 0; i-- {
		x, y := r.cellRect(s.Snake.Body[i])
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
		if letters[i] != 0 {
			r.drawCellLetter(letters[i], x, y, rl.White)
		}
	}
	if s.Snake.Len() > 0 && letters[0] == 0 {
		r.drawHeading(s.Snake.Head(), s.Direction)
	}
}

// drawHeading marks the direction of travel on the head.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	headX, headY := r.cellRect(head)
	halfCell := r.cellSize / 2
	quarter := r.cellSize / 4
	x, y := float32(headX), float32(headY)
	c, h, q := float32(r.cellSize), float32(halfCell), float32(quarter)

	var tip, a, b rl.Vector2
	switch dir {
	case types.Right:
		tip, a, b = rl.Vector2{X: x + c - q, Y: y + h}, rl.Vector2{X: x + h, Y: y + q}, rl.Vector2{X: x + h, Y: y + c - q}
	case types.Left:
		tip, a, b = rl.Vector2{X: x + q, Y: y + h}, rl.Vector2{X: x + h, Y: y + q}, rl.Vector2{X: x + h, Y: y + c - q}
	case types.Down:
		tip, a, b = rl.Vector2{X: x + h, Y: y + c - q}, rl.Vector2{X: x + q, Y: y + h}, rl.Vector2{X: x + c - q, Y: y + h}
	default:
		tip, a, b = rl.Vector2{X: x + h, Y: y + q}, rl.Vector2{X: x + q, Y: y + h}, rl.Vector2{X: x + c - q, Y: y + h}
	}
	// raylib culls triangles that are not counter-clockwise on screen
	if (a.X-tip.X)*(b.Y-tip.Y)-(b.X-tip.X)*(a.Y-tip.Y) > 0 {
		a, b = b, a
	}
	rl.DrawTriangle(tip, a, b, rl.Yellow)
}

func (r *Renderer) drawTiles(s game.State) {
	for _, t := range s.Tiles {
		x, y := r.cellRect(t.Position)
		color := colorDecoy
		if t.Correct {
			color = colorCorrect
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
		r.drawCellLetter(t.Letter, x, y, rl.White)
	}
}

func (r *Renderer) drawCellLetter(letter byte, x, y int32, color rl.Color) {
	size := r.cellSize * 3 / 5
	text := string(letter)
	w := rl.MeasureText(text, size)
	rl.DrawText(text, x+(r.cellSize-w)/2, y+(r.cellSize-size)/2, size, color)
}

func (r *Renderer) drawOverlay(lines []string, fontSize int32, alpha float32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, alpha))

	lineHeight := fontSize + fontSize/2
	y := r.offsetY + (r.totalGridHeight-lineHeight*int32(len(lines)))/2
	for i, line := range lines {
		size := fontSize
		if i == 0 {
			size = fontSize + fontSize/3
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, r.offsetX+(r.totalGridWidth-w)/2, y, size, rl.White)
		y += lineHeight
	}
}

func (r *Renderer) drawStatsPanel(s game.State, session manager.SessionStats, started, autopilot bool, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)

	rl.DrawText(hud.Title, statsX, statsY, fontSize*3/2, rl.White)
	statsY += lineHeight * 2

	rl.DrawText(hud.Score(s), statsX, statsY, fontSize, rl.Gold)
	statsY += lineHeight
	if best := hud.Best(session); best != "" {
		rl.DrawText(best, statsX, statsY, fontSize*4/5, rl.LightGray)
		statsY += lineHeight
	}

	if started {
		rl.DrawText(hud.Level(s), statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
		rl.DrawText(hud.Words(s), statsX, statsY, fontSize, rl.White)
		statsY += lineHeight * 3 / 2

		rl.DrawText("Build:", statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
		statsY = r.drawSlots(s.BuildSlots(), statsX, statsY, fontSize)
	}
	statsY += lineHeight

	// Legend
	for i, caption := range hud.Legend {
		color := colorCorrect
		if i == 1 {
			color = colorDecoy
		}
		rl.DrawRectangle(statsX, statsY, fontSize, fontSize, color)
		rl.DrawText(caption, statsX+fontSize+6, statsY, fontSize*4/5, rl.LightGray)
		statsY += lineHeight
	}
	statsY += lineHeight / 2

	for _, line := range hud.Help {
		rl.DrawText(line, statsX, statsY, fontSize*3/4, rl.LightGray)
		statsY += lineHeight * 3 / 4
	}

	if autopilot {
		rl.DrawText("Autopilot (P)", statsX, r.screenHeight-lineHeight-borderPadding, fontSize, rl.Yellow)
	}
}

// drawSlots draws one box per target letter and returns the y below them.
func (r *Renderer) drawSlots(slots string, x, y, fontSize int32) int32 {
	box := fontSize + fontSize/2
	perRow := max(1, (r.statsPanel-10)/(box+4))
	for i := 0; i < len(slots); i++ {
		bx := x + int32(i)%perRow*(box+4)
		by := y + int32(i)/perRow*(box+4)
		fill, text := colorCorrect, rl.White
		if slots[i] == '?' {
			fill, text = colorSlot, rl.Gray
		}
		rl.DrawRectangle(bx, by, box, box, fill)
		letter := string(slots[i])
		w := rl.MeasureText(letter, fontSize)
		rl.DrawText(letter, bx+(box-w)/2, by+(box-fontSize)/2, fontSize, text)
	}
	rows := (int32(len(slots)) + perRow - 1) / perRow
	return y + rows*(box+4)
}
