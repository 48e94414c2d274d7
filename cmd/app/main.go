package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/atvirokodosprendimai/listings"
	"github.com/atvirokodosprendimai/listings/internal/codec"
	"github.com/atvirokodosprendimai/listings/internal/watch"
)

func main() {
	cmd := &cli.Command{
		Name:  "listings",
		Usage: "Validate project and collection description files",
		Commands: []*cli.Command{
			validateCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate description files against their schema",
		ArgsUsage: "GLOB...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Value:   "project",
				Sources: cli.EnvVars("LISTINGS_KIND"),
				Usage:   "Record kind: project or collection",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "auto",
				Usage: "File format: json, yaml or auto (by extension)",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and re-validate files as they change",
			},
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("at least one file or glob is required")
	}

	schemaName, err := schemaForKind(c.String("kind"))
	if err != nil {
		return err
	}

	var paths []string
	for _, arg := range c.Args().Slice() {
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("glob %s: %w", arg, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return errors.New("no files matched")
	}
	sort.Strings(paths)

	svc, err := listings.New()
	if err != nil {
		return fmt.Errorf("compile schemas: %w", err)
	}

	check := func(path string) bool {
		value, err := decodeFile(path, c.String("format"))
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			return false
		}
		result := svc.Validate(value, schemaName)
		if result.Valid {
			fmt.Printf("ok   %s\n", path)
			return true
		}
		fmt.Printf("FAIL %s\n", path)
		for _, key := range sortedKeys(result.Errors) {
			fmt.Printf("     %s: %s\n", key, result.Errors[key])
		}
		return false
	}

	failed := 0
	for _, path := range paths {
		if !check(path) {
			failed++
		}
	}

	if c.Bool("watch") {
		return watchFiles(ctx, paths, check)
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d file(s) failed validation", failed), 1)
	}
	return nil
}

func watchFiles(ctx context.Context, paths []string, check func(string) bool) error {
	w, err := watch.New(paths, func(path string) { check(path) }, log.Default())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			log.Printf("close watcher: %v", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("watching %d file(s)", len(paths))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func schemaForKind(kind string) (string, error) {
	switch kind {
	case "project":
		return listings.SchemaProject, nil
	case "collection":
		return listings.SchemaCollection, nil
	default:
		return "", fmt.Errorf("unknown kind %q (want project or collection)", kind)
	}
}

func decodeFile(path, format string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dec listings.Decoder
	switch format {
	case "json":
		dec = codec.JSON{}
	case "yaml":
		dec = codec.YAML{}
	case "auto":
		if listings.FormatForPath(path) == listings.FormatYAML {
			dec = codec.YAML{}
		} else {
			dec = codec.JSON{}
		}
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or auto)", format)
	}
	return dec.Decode(data)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
