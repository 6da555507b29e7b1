package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"rogue-dungeon/components"
	"rogue-dungeon/config"
	"rogue-dungeon/ecs"
	"rogue-dungeon/generation"
)

// RenderSystem draws a generated level as ASCII
type RenderSystem struct {
	messageLog *MessageLog
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(messageLog *MessageLog) *RenderSystem {
	return &RenderSystem{
		messageLog: messageLog,
	}
}

// RenderASCII returns one string per map row. Non-blocking entities are drawn
// before blocking ones so actors stay on top of items and stairs, and the
// player is drawn last.
func RenderASCII(world *ecs.World, m *components.MapComponent) []string {
	cells := make([][]rune, m.Height)
	for y := 0; y < m.Height; y++ {
		cells[y] = make([]rune, m.Width)
		for x := 0; x < m.Width; x++ {
			cells[y][x] = m.Tile(x, y).Definition().Glyph
		}
	}

	draw := func(id ecs.EntityID) {
		pos, ok := world.GetComponent(id, components.Position)
		if !ok {
			return
		}
		p := pos.(*components.PositionComponent)
		if !m.InBounds(p.X, p.Y) {
			return
		}
		r, _ := world.GetComponent(id, components.Renderable)
		cells[p.Y][p.X] = r.(*components.RenderableComponent).Char
	}

	drawn := world.GetEntitiesWithComponent(components.Renderable)
	for _, blocking := range []bool{false, true} {
		for _, entity := range drawn {
			if world.HasComponent(entity.ID, components.Player) || entityBlocks(world, entity.ID) != blocking {
				continue
			}
			draw(entity.ID)
		}
	}
	for _, player := range world.GetEntitiesWithComponent(components.Player) {
		draw(player.ID)
	}

	rows := make([]string, m.Height)
	for y := range cells {
		rows[y] = string(cells[y])
	}
	return rows
}

func entityBlocks(world *ecs.World, id ecs.EntityID) bool {
	col, ok := world.GetComponent(id, components.Collision)
	return ok && col.(*components.CollisionComponent).Blocks
}

// StatusLine summarises a level for the status bar
func StatusLine(level *generation.Level) string {
	return fmt.Sprintf("Depth %d  Rooms %d  Monsters %d  Items %d",
		level.Depth, len(level.Rooms), level.Monsters, level.Items)
}

// Draw renders the level, a status line and the latest messages
func (s *RenderSystem) Draw(world *ecs.World, level *generation.Level, screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if level == nil {
		return
	}

	for y, row := range RenderASCII(world, level.Map) {
		ebitenutil.DebugPrintAt(screen, row, 0, y*config.CellHeight)
	}

	top := level.Map.Height * config.CellHeight
	ebitenutil.DebugPrintAt(screen, StatusLine(level)+"  [R] regenerate  [>] descend", 0, top)

	if s.messageLog == nil {
		return
	}
	for i, msg := range s.messageLog.RecentMessages(config.StatusLines - 1) {
		ebitenutil.DebugPrintAt(screen, msg, 0, top+(i+1)*config.CellHeight)
	}
}
