// Command bezier samples a Bézier curve and renders it, with its control
// points, control polygon and axes, to a PNG.
//
// Control points come from an embedded preset (the default), a YAML or SVG
// file, or stdin as one "x y" pair per line:
//
//	printf '0 0\n50 100\n100 0\n' | bezier --stdin --show
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/bezier"
	"github.com/osuushi/bezier/config"
	"github.com/osuushi/bezier/render"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Version indicates the current build version.
var Version = "dev"

type options struct {
	configPath  string
	preset      string
	stdin       bool
	step        float64
	out         string
	scale       float64
	padding     float64
	labels      bool
	show        bool
	dump        bool
	listPresets bool
	color       bool
}

func parseFlags(args []string) (*options, error) {
	app := kingpin.New("bezier", "Sample a Bézier curve and render it to a PNG.")
	app.Version(Version)

	opts := &options{}
	app.Flag("config", "YAML or SVG file with the control points.").Short('c').ExistingFileVar(&opts.configPath)
	app.Flag("preset", "Embedded preset to draw.").Short('p').Default("default").StringVar(&opts.preset)
	app.Flag("stdin", `Read "x y" control points from stdin.`).BoolVar(&opts.stdin)
	app.Flag("step", "Parameter step, in (0, 1]. Overrides the configured step.").Short('s').Float64Var(&opts.step)
	app.Flag("out", "Output PNG. Defaults to a new file in the temp directory.").Short('o').StringVar(&opts.out)
	app.Flag("scale", "Pixels per unit.").Default("1").Float64Var(&opts.scale)
	app.Flag("padding", "Padding around the curve, in pixels.").Default("50").Float64Var(&opts.padding)
	app.Flag("labels", "Label the control points.").BoolVar(&opts.labels)
	app.Flag("show", "Print the image in the terminal (iTerm).").BoolVar(&opts.show)
	app.Flag("dump", "Dump the computed curve.").BoolVar(&opts.dump)
	app.Flag("list-presets", "List the embedded presets and exit.").BoolVar(&opts.listPresets)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.color)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if opts.configPath != "" && opts.stdin {
		return nil, errors.New("--config and --stdin are mutually exclusive")
	}
	return opts, nil
}

// Pick the configuration source. An explicit file or stdin wins over the
// preset, and a --step flag wins over any configured step.
func loadConfig(opts *options, stdin io.Reader) (bezier.Config, error) {
	var cfg bezier.Config
	var err error
	switch {
	case opts.configPath != "":
		cfg, err = config.Load(opts.configPath)
	case opts.stdin:
		var points []bezier.Point
		points, err = config.ReadPoints(stdin)
		cfg = bezier.Config{ControlPoints: points, Step: bezier.DefaultStep}
	default:
		cfg, err = config.Preset(opts.preset)
	}
	if err != nil {
		return bezier.Config{}, err
	}
	if opts.step != 0 {
		cfg.Step = opts.step
	}
	return cfg, nil
}

func renderOptions(opts *options) render.Options {
	ro := render.DefaultOptions()
	ro.Scale = opts.scale
	ro.Padding = opts.padding
	ro.Labels = opts.labels
	return ro
}

func main() {
	log.SetFlags(0)

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("bezier: %v", err)
	}

	au := aurora.NewAurora(opts.color && term.IsTerminal(int(os.Stderr.Fd())))
	fatal := func(err error) {
		log.Fatalf("%s %v", au.Red("error:"), err)
	}

	if opts.listPresets {
		for _, name := range config.Presets() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := loadConfig(opts, os.Stdin)
	if err != nil {
		fatal(err)
	}

	result, err := bezier.ComputeCurve(cfg)
	if err != nil {
		fatal(err)
	}
	log.Printf("%s degree %d, %d samples at step %g",
		au.Cyan("curve:"), result.Degree, len(result.Path), result.Step)
	log.Printf("%s %s", au.Cyan("bounds:"), result.Bounds)

	if opts.dump {
		spew.Fdump(os.Stdout, result)
	}

	canvas, err := render.NewCanvas(result, renderOptions(opts))
	if err != nil {
		fatal(err)
	}
	out := opts.out
	if out == "" {
		out = render.TempPath()
	}
	if err := canvas.SavePNG(out); err != nil {
		fatal(err)
	}
	log.Printf("%s %s (%dx%d)", au.Green("wrote"), au.Bold(out), canvas.Width(), canvas.Height())

	if opts.show {
		if err := render.Show(out, os.Stdout); err != nil {
			fatal(err)
		}
	}
}
