// Command roomforge generates dungeon layouts.
//
// Usage:
//
//	roomforge generate [-seed N] [-rooms N] [-format json|ascii] [...]
//	roomforge schema [-out file]
//	roomforge serve [-addr :8080]
//
// Logging follows LOG_LEVEL and LOG_FORMAT. ROOMFORGE_ADDR overrides the
// default serve address.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/logger"
	"github.com/katalvlaran/roomforge/server"
)

const defaultAddr = ":8080"

var errUsage = errors.New("usage: roomforge generate|schema|serve [flags]")

func main() {
	log := logger.New(logger.FromEnv())
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.WithError(err).Error("roomforge failed")
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, log *logrus.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "generate":
		return generate(args[1:], stdout, log)
	case "schema":
		return schema(args[1:], stdout)
	case "serve":
		return serve(args[1:], log)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func generate(args []string, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	d := dungeon.DefaultConfig()
	seed := fs.Int64("seed", 0, "random seed (0 for a time-based seed)")
	rooms := fs.Int("rooms", d.Rooms, "number of rooms")
	iterations := fs.Int("iterations", d.Iterations, "random walks per room")
	walk := fs.Int("walk", d.WalkLength, "steps per random walk")
	padding := fs.Int("padding", d.Padding, "margin between carve area and cell edge")
	thickness := fs.Int("thickness", d.WallThickness, "wall rings around the floor")
	halfW := fs.Float64("half-width", d.Viewport.HalfWidth, "viewport half width")
	halfH := fs.Float64("half-height", d.Viewport.HalfHeight, "viewport half height")
	bridge := fs.Bool("bridge", false, "join stray floor islands")
	format := fs.String("format", "json", "output format: json or ascii")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
		log.WithField("seed", *seed).Info("using time-based seed")
	}
	g, err := dungeon.New(
		dungeon.WithSeed(*seed),
		dungeon.WithRooms(*rooms),
		dungeon.WithCarve(*iterations, *walk),
		dungeon.WithPadding(*padding),
		dungeon.WithWallThickness(*thickness),
		dungeon.WithViewport(*halfW, *halfH),
		dungeon.WithBridgeIslands(*bridge),
		dungeon.WithLogger(log),
		dungeon.WithNavMesh(dungeon.NavMeshFunc(func() error {
			log.Debug("navmesh bake skipped: no scene in CLI mode")
			return nil
		})),
	)
	if err != nil {
		return err
	}
	layout, err := g.Generate()
	if err != nil {
		return err
	}

	switch *format {
	case "ascii":
		_, err = io.WriteString(stdout, layout.ASCII())
		return err
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(layout.Document())
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	s := reflector.Reflect(new(dungeon.Document))
	s.Title = "roomforge layout"
	s.Description = "Dungeon layout produced by roomforge generate"
	return s
}

func schema(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	out := fs.String("out", "", "file to write (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')
	if *out == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

func serve(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", envOr("ROOMFORGE_ADDR", defaultAddr), "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(log).Run(ctx, *addr)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
