// Command simulate runs the locomotion pipeline headless against a course
// and a scripted input sequence, logging the avatar's state.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/strider/assets"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/shared/physics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Level    string `help:"TMX course file. Defaults to an embedded course." type:"existingfile" optional:""`
	Course   int    `help:"Index of the embedded course when --level is not set." default:"0"`
	Config   string `help:"YAML tuning file." type:"existingfile" optional:""`
	Script   string `help:"YAML input script. Defaults to a built-in walk, run and jump." type:"existingfile" optional:""`
	Ticks    int    `help:"Ticks to run. Zero runs the script to its end." default:"0"`
	Rate     int    `help:"Ticks per second." default:"60"`
	Realtime bool   `help:"Pace ticks in wall-clock time."`
	LogEvery int    `help:"Log the avatar state every N ticks. Zero logs only the final state." default:"30"`
	JSON     bool   `help:"Write JSON log lines instead of console output."`
	Debug    bool   `help:"Whether to enable debug logging."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	kong.Parse(&CLI,
		kong.Name("simulate"),
		kong.Description("Headless locomotion simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	if !CLI.JSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	snap := cfg.Default()
	if CLI.Config != "" {
		var err error
		if snap, err = cfg.LoadFile(CLI.Config); err != nil {
			writeError(err)
		}
	}

	script := DefaultScript
	if CLI.Script != "" {
		var err error
		if script, err = LoadScript(CLI.Script); err != nil {
			writeError(err)
		}
	}

	course, err := loadCourse(CLI.Level, CLI.Course)
	if err != nil {
		writeError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := NewSimulation(course, cfg.NewStore(snap), script, SimOptions{
		Rate:     CLI.Rate,
		Ticks:    CLI.Ticks,
		LogEvery: CLI.LogEvery,
		Physics:  physics.DefaultOptions,
	})
	log.Info().Str("course", course.Name).Int("platforms", len(course.Platforms)).Msg("course loaded")

	if _, err := sim.Run(ctx, CLI.Realtime); err != nil {
		log.Warn().Err(err).Msg("simulation interrupted")
	}
}

func loadCourse(path string, index int) (*leveldata.CourseData, error) {
	if path != "" {
		return leveldata.LoadCourse(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	courses, names, err := assets.LoadCourses()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("course index %d out of range, have %d", index, len(names))
	}
	return courses[names[index]], nil
}
