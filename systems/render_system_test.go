package systems

import (
	"strings"
	"testing"

	"rogue-dungeon/components"
	"rogue-dungeon/ecs"
	"rogue-dungeon/generation"
)

func TestRenderASCII(t *testing.T) {
	world := ecs.NewWorld()
	m := components.NewMapComponent(6, 4)
	generation.CarveRoom(m, generation.NewRect(0, 0, 5, 3))

	place := func(x, y int, glyph rune, blocks bool) {
		e := world.CreateEntity()
		world.AddComponent(e.ID, components.Position, &components.PositionComponent{X: x, Y: y})
		world.AddComponent(e.ID, components.Renderable, components.NewRenderableComponent(glyph, nil))
		world.AddComponent(e.ID, components.Collision, &components.CollisionComponent{Blocks: blocks})
	}
	place(1, 1, 'o', true)
	place(1, 1, '!', false) // created later but drawn underneath
	place(3, 2, '>', false)

	want := []string{
		"######",
		"#o...#",
		"#..>.#",
		"######",
	}
	got := RenderASCII(world, m)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("unexpected render:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestStatusLine(t *testing.T) {
	level := &generation.Level{Depth: 3, Rooms: make([]generation.Rect, 4), Monsters: 5, Items: 2}
	if got := StatusLine(level); got != "Depth 3  Rooms 4  Monsters 5  Items 2" {
		t.Errorf("unexpected status %q", got)
	}
}

func TestMessageLog(t *testing.T) {
	log := NewMessageLog(2)
	log.Add("one")
	log.Add("two")
	log.Addf("three %d", 3)

	recent := log.RecentMessages(5)
	if len(recent) != 2 || recent[0] != "three 3" || recent[1] != "two" {
		t.Errorf("unexpected messages %v", recent)
	}

	log.Clear()
	if len(log.RecentMessages(1)) != 0 {
		t.Error("expected empty log")
	}
}
