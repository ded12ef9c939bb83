package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/viewmodel"
)

func runGenres(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 {
		return genresUsage()
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return runGenresList(cmdCtx)
	case "get":
		return runGenresGet(cmdCtx, rest)
	case "create":
		return runGenresCreate(cmdCtx, rest)
	case "update":
		return runGenresUpdate(cmdCtx, rest)
	case "delete":
		return runGenresDelete(cmdCtx, rest)
	default:
		if err := writef(os.Stderr, "unknown genres subcommand %q\n\n", sub); err != nil {
			return err
		}
		return genresUsage()
	}
}

func genresUsage() error {
	return writef(os.Stdout, `Usage: filmoteca genres <subcommand> [flags]

Subcommands:
  list                     List genres
  get -id N                Show one genre
  create -nombre NAME      Create a genre
  update -id N -nombre X   Rename a genre
  delete -id N [-yes]      Delete a genre
`)
}

func runGenresList(cmdCtx *commandContext) error {
	vm := viewmodel.NewGenreList(cmdCtx.App.Genres)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	return printGenreTable(vm.Items())
}

func runGenresGet(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("genres get", flag.ContinueOnError)
	id := fs.Int("id", 0, "Genre ID")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse genres get flags: %w", err)
	}
	if *id <= 0 {
		return fmt.Errorf("genres get: -id is required")
	}

	genre, err := cmdCtx.App.Genres.GetByID(cmdCtx.Ctx, *id)
	if err != nil {
		return err
	}
	return printGenreTable([]catalog.Genre{genre})
}

func runGenresCreate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("genres create", flag.ContinueOnError)
	nombre := fs.String("nombre", "", "Genre name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse genres create flags: %w", err)
	}

	vm := viewmodel.NewGenreForm(cmdCtx.App.Genres, 0)
	vm.Load(cmdCtx.Ctx)
	vm.Data.Nombre = *nombre

	if err := vm.Submit(cmdCtx.Ctx); err != nil {
		if printErr := printScreenError(vm.Message()); printErr != nil {
			return printErr
		}
		return err
	}
	if _, err := successText.Println("Género creado"); err != nil {
		return fmt.Errorf("print create result: %w", err)
	}
	return nil
}

func runGenresUpdate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("genres update", flag.ContinueOnError)
	id := fs.Int("id", 0, "Genre ID")
	nombre := fs.String("nombre", "", "New genre name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse genres update flags: %w", err)
	}
	if *id <= 0 {
		return fmt.Errorf("genres update: -id is required")
	}

	vm := viewmodel.NewGenreForm(cmdCtx.App.Genres, *id)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	if *nombre != "" {
		vm.Data.Nombre = *nombre
	}

	if err := vm.Submit(cmdCtx.Ctx); err != nil {
		if printErr := printScreenError(vm.Message()); printErr != nil {
			return printErr
		}
		return err
	}
	if _, err := successText.Println("Género actualizado"); err != nil {
		return fmt.Errorf("print update result: %w", err)
	}
	return nil
}

func runGenresDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("genres delete", flag.ContinueOnError)
	id := fs.Int("id", 0, "Genre ID")
	yes := fs.Bool("yes", false, "Skip confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse genres delete flags: %w", err)
	}
	if *id <= 0 {
		return fmt.Errorf("genres delete: -id is required")
	}

	if !*yes {
		confirmed, err := confirmPrompt(fmt.Sprintf("Eliminar el género %d?", *id))
		if err != nil {
			return err
		}
		if !confirmed {
			return writef(os.Stdout, "Cancelado\n")
		}
	}

	vm := viewmodel.NewGenreList(cmdCtx.App.Genres)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	if err := vm.Delete(cmdCtx.Ctx, *id); err != nil {
		if printErr := printScreenError(vm.Message()); printErr != nil {
			return printErr
		}
		return err
	}
	if _, err := successText.Println("Género eliminado"); err != nil {
		return fmt.Errorf("print delete result: %w", err)
	}
	return nil
}

func printGenreTable(genres []catalog.Genre) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNOMBRE"); err != nil {
		return fmt.Errorf("write genre header: %w", err)
	}
	for _, g := range genres {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Nombre); err != nil {
			return fmt.Errorf("write genre row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush genre table: %w", err)
	}
	return nil
}
