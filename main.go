package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/strider/assets"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/automoto/strider/scenes"
	"github.com/automoto/strider/shared/intent"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/shared/physics"
	"github.com/automoto/strider/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config  string `help:"YAML tuning file applied on top of saved tuning." type:"existingfile" optional:""`
	Levels  string `help:"Directory of TMX courses to use instead of the embedded ones." type:"existingdir" optional:""`
	Course  int    `help:"Index of the starting course. Negative opens course select." default:"-1"`
	Camera  string `help:"Camera mode override: orbit or fixed." optional:""`
	NoSave  bool   `help:"Ignore saved tuning and do not persist changes."`
	Gamepad bool   `help:"Read gamepads." default:"true" negatable:""`
	Debug   bool   `help:"Whether to enable debug logging and the debug overlay."`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("strider"),
		kong.Description("third-person locomotion and camera-follow demo"),
		kong.UsageOnError(),
	)

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		cfg.Debug.Overlay = true
		log.Warn().Msg("debug logging enabled")
	}

	if err := fonts.LoadDefaults(); err != nil {
		writeError(err)
	}

	snap, err := loadTuning()
	if err != nil {
		writeError(err)
	}

	courses, names, err := loadCourses(CLI.Levels)
	if err != nil {
		writeError(err)
	}

	var gamepad intent.GamepadSource
	if CLI.Gamepad {
		gamepad = intent.GamepadSourceFunc(systems.ReadGamepad)
	}

	setup := scenes.Setup{
		Store:       cfg.NewStore(snap),
		Devices:     intent.NewDevices(),
		Gamepad:     gamepad,
		Courses:     courses,
		Names:       names,
		CourseIndex: CLI.Course,
		Physics:     physics.DefaultOptions,
	}

	g := &Game{}
	if CLI.Course < 0 {
		g.scene = scenes.NewMenuScene(g, setup)
	} else {
		g.scene = scenes.NewCourseScene(g, setup)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(cfg.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// loadTuning layers defaults, saved tuning, the --config file and flag
// overrides, in that order.
func loadTuning() (cfg.Snapshot, error) {
	snap := cfg.Default()

	if !CLI.NoSave {
		if err := systems.InitPersistence(); err != nil {
			log.Warn().Err(err).Msg("could not initialize persistence")
		}
		snap = systems.ApplySavedTuning(snap)
	}

	if CLI.Config != "" {
		data, err := os.ReadFile(CLI.Config)
		if err != nil {
			return cfg.Snapshot{}, fmt.Errorf("read config: %w", err)
		}
		f, err := cfg.DecodeFile(data)
		if err != nil {
			return cfg.Snapshot{}, fmt.Errorf("parse config %s: %w", CLI.Config, err)
		}
		if snap, err = f.Apply(snap); err != nil {
			return cfg.Snapshot{}, fmt.Errorf("apply config %s: %w", CLI.Config, err)
		}
	}

	if CLI.Camera != "" {
		mode, err := cfg.ParseCameraMode(CLI.Camera)
		if err != nil {
			return cfg.Snapshot{}, err
		}
		snap.Camera.Mode = mode
	}
	return snap, nil
}

func loadCourses(dir string) (map[string]*leveldata.CourseData, []string, error) {
	if dir == "" {
		return assets.LoadCourses()
	}
	return leveldata.LoadAllCourses(os.DirFS(dir), ".")
}
