// Cookbook is a recipe toolkit: it parses free-form recipe text into
// structured recipes and scales or converts them between units.
//
// Usage:
//
//	cookbook [-verbose] [-quiet] <command> [args]
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/hammamikhairi/cookbook/internal/config"
	"github.com/hammamikhairi/cookbook/internal/convert"
	"github.com/hammamikhairi/cookbook/internal/display"
	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/logger"
	"github.com/hammamikhairi/cookbook/internal/service"
	"github.com/hammamikhairi/cookbook/internal/storage"
)

func main() {
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.Command{
		Name:  "cookbook",
		Usage: "parse, scale, and convert recipes",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable verbose/debug logging",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "disable all logging",
			},
			&cli.StringFlag{
				Name:  "store",
				Value: cfg.StoreDir,
				Usage: "directory for persisted recipes (empty keeps everything in memory)",
			},
			&cli.StringFlag{
				Name:  "rules",
				Value: cfg.RulesFile,
				Usage: "YAML file with house conversion rules",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Value: cfg.LogFile,
				Usage: "file to write logs to (\"stderr\" logs to console)",
			},
		},
		Commands: []*cli.Command{
			importCmd(),
			listCmd(),
			showCmd(),
			scaleCmd(),
			convertCmd(),
			rescaleCmd(),
			shopCmd(),
			exportCmd(),
			deleteCmd(),
			findCmd(),
		},
	}

	return app.Run(ctx, args)
}

// buildService wires the logger, repository, and conversion registry
// from the global flags.
func buildService(cmd *cli.Command) (*service.Service, func(), error) {
	level := logger.LevelNormal
	if cmd.Bool("verbose") {
		level = logger.LevelVerbose
	}
	if cmd.Bool("quiet") {
		level = logger.LevelOff
	}

	cleanup := func() {}

	var logOut io.Writer = os.Stderr
	logFile := cmd.String("log-file")
	if logFile != "" && logFile != "stderr" {
		if dir := filepath.Dir(logFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", logFile, err)
		} else {
			logOut = f
			cleanup = func() { f.Close() }
		}
	}

	// Redirect the default log package to the same output so library
	// logging does not land in the middle of command output.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, logOut)

	var repo domain.RecipeRepository
	if dir := cmd.String("store"); dir != "" {
		fileRepo, err := storage.NewFileRepository(dir, log)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("opening store %s: %w", dir, err)
		}
		repo = fileRepo
	} else {
		repo = storage.NewMemoryRepository(log)
	}

	registry := convert.NewStandardRegistry()
	if path := cmd.String("rules"); path != "" {
		rules, err := config.LoadHouseRules(path)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		registry = registry.WithRules(convert.TierHouse, rules)
		log.Info("loaded %d house rules from %s", len(rules), path)
	}

	return service.New(repo, log, service.WithRegistry(registry)), cleanup, nil
}

func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a recipe from a text or JSON file, or from stdin with -",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var recipe *domain.Recipe
			if path := cmd.Args().First(); path == "-" {
				text, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				recipe, err = svc.ImportText(ctx, string(text))
				if err != nil {
					return err
				}
			} else {
				recipe, err = svc.ImportFile(ctx, path)
				if err != nil {
					return err
				}
			}

			fmt.Println(display.Recipe(recipe))
			return nil
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list stored recipes",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipes, err := svc.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(display.Summaries(recipes))
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "display a recipe by ID or title",
		ArgsUsage: "<id-or-title>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected a recipe ID or title")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipe, err := lookup(ctx, svc, cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(display.Recipe(recipe))
			return nil
		},
	}
}

func scaleCmd() *cli.Command {
	return &cli.Command{
		Name:      "scale",
		Usage:     "scale a recipe to a target number of servings",
		ArgsUsage: "<id-or-title> <servings>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected a recipe and a servings count")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipe, err := lookup(ctx, svc, cmd.Args().First())
			if err != nil {
				return err
			}

			servings, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid servings %q", cmd.Args().Get(1))
			}

			scaled, err := svc.Scale(ctx, recipe.ID, servings)
			if err != nil {
				return err
			}
			fmt.Println(display.Recipe(scaled))
			return nil
		},
	}
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert every measured ingredient of a recipe to a unit",
		ArgsUsage: "<id-or-title> <unit>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected a recipe and a target unit")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipe, err := lookup(ctx, svc, cmd.Args().First())
			if err != nil {
				return err
			}

			unit, ok := domain.ResolveUnit(cmd.Args().Get(1))
			if !ok {
				return fmt.Errorf("unknown unit %q", cmd.Args().Get(1))
			}

			converted, err := svc.Convert(ctx, recipe.ID, unit)
			if err != nil {
				return err
			}
			fmt.Println(display.Recipe(converted))
			return nil
		},
	}
}

func rescaleCmd() *cli.Command {
	return &cli.Command{
		Name:      "rescale",
		Usage:     "rescale a recipe so one ingredient hits a target amount",
		ArgsUsage: "<id-or-title> <ingredient> <amount> <unit>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 4 {
				return fmt.Errorf("expected a recipe, an ingredient, an amount, and a unit")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipe, err := lookup(ctx, svc, cmd.Args().First())
			if err != nil {
				return err
			}

			amount, err := strconv.ParseFloat(cmd.Args().Get(2), 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", cmd.Args().Get(2))
			}
			unit, ok := domain.ResolveUnit(cmd.Args().Get(3))
			if !ok {
				return fmt.Errorf("unknown unit %q", cmd.Args().Get(3))
			}
			target, err := domain.NewExact(amount, unit)
			if err != nil {
				return err
			}

			scaled, err := svc.ScaleToTarget(ctx, recipe.ID, cmd.Args().Get(1), target)
			if err != nil {
				return err
			}
			fmt.Println(display.Recipe(scaled))
			return nil
		},
	}
}

func shopCmd() *cli.Command {
	return &cli.Command{
		Name:      "shop",
		Usage:     "build an aggregated shopping list from one or more recipes",
		ArgsUsage: "<id-or-title>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("expected at least one recipe")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ids := make([]string, 0, cmd.Args().Len())
			for _, arg := range cmd.Args().Slice() {
				recipe, err := lookup(ctx, svc, arg)
				if err != nil {
					return err
				}
				ids = append(ids, recipe.ID)
			}

			list, err := svc.ShoppingList(ctx, ids...)
			if err != nil {
				return err
			}
			fmt.Println(display.ShoppingList(list))
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export a recipe as Markdown",
		ArgsUsage: "<id-or-title> [output-file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 || cmd.Args().Len() > 2 {
				return fmt.Errorf("expected a recipe and an optional output file")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipe, err := lookup(ctx, svc, cmd.Args().First())
			if err != nil {
				return err
			}

			doc, err := svc.ExportMarkdown(ctx, recipe.ID, cmd.Args().Get(1))
			if err != nil {
				return err
			}
			fmt.Print(doc)
			return nil
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a stored recipe",
		ArgsUsage: "<id-or-title>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected a recipe ID or title")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipe, err := lookup(ctx, svc, cmd.Args().First())
			if err != nil {
				return err
			}
			if err := svc.Delete(ctx, recipe.ID); err != nil {
				return err
			}
			fmt.Printf("deleted %q\n", recipe.Title)
			return nil
		},
	}
}

func findCmd() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "find recipes containing an ingredient",
		ArgsUsage: "<ingredient>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected an ingredient name")
			}

			svc, cleanup, err := buildService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			recipes, err := svc.FindByIngredient(ctx, strings.Join(cmd.Args().Slice(), " "))
			if err != nil {
				return err
			}
			fmt.Println(display.Summaries(recipes))
			return nil
		},
	}
}

// lookup resolves an argument as a recipe ID first, then as a title.
func lookup(ctx context.Context, svc *service.Service, arg string) (*domain.Recipe, error) {
	recipe, err := svc.Get(ctx, arg)
	if err == nil {
		return recipe, nil
	}
	return svc.GetByTitle(ctx, arg)
}
