package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rogue-dungeon/config"
	"rogue-dungeon/data"
	"rogue-dungeon/ecs"
	"rogue-dungeon/generation"
	"rogue-dungeon/session"
	"rogue-dungeon/systems"
)

// Game implements ebiten.Game for previewing generated levels.
type Game struct {
	session      *session.Session
	renderSystem *systems.RenderSystem
	messageLog   *systems.MessageLog
	generatorCfg config.GeneratorConfig
}

// NewGame builds the generator from cfg and generates the starting depth
func NewGame(cfg config.PreviewConfig, seed int64, logFunc func(string)) (*Game, error) {
	tables, err := loadTables(cfg.TablesPath)
	if err != nil {
		return nil, err
	}

	generator, err := generation.NewDungeonGenerator(cfg.Generator, tables, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	messageLog := systems.NewMessageLog(100)
	generator.SetLogger(func(msg string) {
		messageLog.Add(msg)
		if logFunc != nil {
			logFunc(msg)
		}
	})

	s := session.New(generator)
	s.Subscribe(generation.EventLevelGenerated, func(e ecs.Event) {
		ev := e.(generation.LevelGeneratedEvent)
		messageLog.Addf("Welcome to depth %d.", ev.Depth)
	})

	if err := s.GoTo(cfg.Depth); err != nil {
		return nil, err
	}
	messageLog.Addf("Seed %d", seed)

	return &Game{
		session:      s,
		renderSystem: systems.NewRenderSystem(messageLog),
		messageLog:   messageLog,
		generatorCfg: cfg.Generator,
	}, nil
}

func loadTables(path string) (*data.SpawnTables, error) {
	if path == "" {
		return data.DefaultSpawnTables()
	}
	return data.LoadSpawnTables(path)
}

// Update handles the preview keys.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.session.Regenerate(); err != nil {
			g.messageLog.Add("Error: " + err.Error())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		if err := g.session.Descend(); err != nil {
			g.messageLog.Add("Error: " + err.Error())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.session.World, g.session.Level, screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions(g.generatorCfg.Width, g.generatorCfg.Height)
}

// Dump writes the current level as text
func (g *Game) Dump() string {
	var b strings.Builder
	for _, row := range systems.RenderASCII(g.session.World, g.session.Level.Map) {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	fmt.Fprintln(&b, systems.StatusLine(g.session.Level))
	return b.String()
}
