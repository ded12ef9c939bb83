package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/viewmodel"
)

func runMovies(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 {
		return moviesUsage()
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return runMoviesList(cmdCtx)
	case "get":
		return runMoviesGet(cmdCtx, rest)
	case "create":
		return runMoviesCreate(cmdCtx, rest)
	case "update":
		return runMoviesUpdate(cmdCtx, rest)
	case "delete":
		return runMoviesDelete(cmdCtx, rest)
	default:
		if err := writef(os.Stderr, "unknown movies subcommand %q\n\n", sub); err != nil {
			return err
		}
		return moviesUsage()
	}
}

func moviesUsage() error {
	return writef(os.Stdout, `Usage: filmoteca movies <subcommand> [flags]

Subcommands:
  list                 List the catalog
  get -id N            Show one movie
  create [fields]      Create a movie
  update -id N [...]   Update a movie
  delete -id N [-yes]  Delete a movie
`)
}

func runMoviesList(cmdCtx *commandContext) error {
	vm := viewmodel.NewMovieList(cmdCtx.App.Movies)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	return printMovieTable(vm.Items())
}

func runMoviesGet(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("movies get", flag.ContinueOnError)
	id := fs.Int("id", 0, "Movie ID")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse movies get flags: %w", err)
	}
	if *id <= 0 {
		return fmt.Errorf("movies get: -id is required")
	}

	vm := viewmodel.NewMovieDetail(cmdCtx.App.Movies, *id)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	return printMovieDetail(vm.Movie())
}

// movieFlags binds the form draft to a flag set. Flags left at their zero
// value keep the draft's current value, so update only touches what the
// caller passed.
func movieFlags(fs *flag.FlagSet, data *catalog.MovieFormData) {
	fs.StringVar(&data.Titulo, "titulo", data.Titulo, "Title")
	fs.StringVar(&data.Director, "director", data.Director, "Director")
	fs.IntVar(&data.Anio, "anio", data.Anio, "Release year")
	fs.Float64Var(&data.Rating, "rating", data.Rating, "Rating 0-10")
	fs.StringVar(&data.Sinopsis, "sinopsis", data.Sinopsis, "Synopsis")
	fs.IntVar(&data.Duracion, "duracion", data.Duracion, "Duration in minutes")
	fs.StringVar(&data.Trailer, "trailer", data.Trailer, "Trailer URL")
	fs.IntVar(&data.GeneroID, "genero", data.GeneroID, "Genre ID")
}

func runMoviesCreate(cmdCtx *commandContext, args []string) error {
	vm := viewmodel.NewMovieForm(cmdCtx.App.Movies, cmdCtx.App.Genres, 0)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}

	fs := flag.NewFlagSet("movies create", flag.ContinueOnError)
	movieFlags(fs, &vm.Data)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse movies create flags: %w", err)
	}

	if err := vm.Submit(cmdCtx.Ctx); err != nil {
		if printErr := printScreenError(vm.Message()); printErr != nil {
			return printErr
		}
		return err
	}
	if _, err := successText.Println("Película creada"); err != nil {
		return fmt.Errorf("print create result: %w", err)
	}
	return nil
}

func runMoviesUpdate(cmdCtx *commandContext, args []string) error {
	id, rest, err := popIDFlag("movies update", args)
	if err != nil {
		return err
	}

	vm := viewmodel.NewMovieForm(cmdCtx.App.Movies, cmdCtx.App.Genres, id)
	vm.Load(cmdCtx.Ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}

	fs := flag.NewFlagSet("movies update", flag.ContinueOnError)
	movieFlags(fs, &vm.Data)
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("parse movies update flags: %w", err)
	}

	if err := vm.Submit(cmdCtx.Ctx); err != nil {
		if printErr := printScreenError(vm.Message()); printErr != nil {
			return printErr
		}
		return err
	}
	if _, err := successText.Println("Película actualizada"); err != nil {
		return fmt.Errorf("print update result: %w", err)
	}
	return nil
}

func runMoviesDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("movies delete", flag.ContinueOnError)
	id := fs.Int("id", 0, "Movie ID")
	yes := fs.Bool("yes", false, "Skip confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse movies delete flags: %w", err)
	}
	if *id <= 0 {
		return fmt.Errorf("movies delete: -id is required")
	}

	if !*yes {
		confirmed, err := confirmPrompt(fmt.Sprintf("Eliminar la película %d?", *id))
		if err != nil {
			return err
		}
		if !confirmed {
			return writef(os.Stdout, "Cancelado\n")
		}
	}

	vm := viewmodel.NewMovieList(cmdCtx.App.Movies)
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
	if _, err := successText.Println("Película eliminada"); err != nil {
		return fmt.Errorf("print delete result: %w", err)
	}
	return nil
}

// popIDFlag extracts a leading -id flag, returning the remaining args for the
// field flag set that must be parsed after the draft is loaded.
func popIDFlag(name string, args []string) (int, []string, error) {
	rest := make([]string, 0, len(args))
	id := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-id" || arg == "--id" {
			if i+1 >= len(args) {
				return 0, nil, fmt.Errorf("%s: -id needs a value", name)
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return 0, nil, fmt.Errorf("%s: invalid -id %q", name, args[i+1])
			}
			id = v
			i++
			continue
		}
		if v, ok := strings.CutPrefix(arg, "-id="); ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return 0, nil, fmt.Errorf("%s: invalid -id %q", name, v)
			}
			id = parsed
			continue
		}
		rest = append(rest, arg)
	}
	if id <= 0 {
		return 0, nil, fmt.Errorf("%s: -id is required", name)
	}
	return id, rest, nil
}

func printMovieTable(movies []catalog.Movie) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTÍTULO\tDIRECTOR\tAÑO\tRATING\tGÉNERO"); err != nil {
		return fmt.Errorf("write movie header: %w", err)
	}
	for _, m := range movies {
		genre := "-"
		if m.Genero != nil {
			genre = m.Genero.Nombre
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.1f\t%s\n",
			m.ID, m.Titulo, m.Director, m.Anio, m.Rating, genre); err != nil {
			return fmt.Errorf("write movie row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush movie table: %w", err)
	}
	return nil
}

func printMovieDetail(m catalog.Movie) error {
	if _, err := headerText.Printf("%s (%d)\n", m.Titulo, m.Anio); err != nil {
		return fmt.Errorf("write movie title: %w", err)
	}
	genre := "-"
	if m.Genero != nil {
		genre = m.Genero.Nombre
	}
	return writef(os.Stdout,
		"Director: %s\nGénero: %s\nRating: %.1f\nDuración: %d min\nTráiler: %s\n\n%s\n",
		m.Director, genre, m.Rating, m.Duracion, m.Trailer, m.Sinopsis)
}

func printScreenError(message string) error {
	if _, err := errorText.Fprintln(os.Stderr, message); err != nil {
		return fmt.Errorf("print screen error: %w", err)
	}
	return nil
}

func confirmPrompt(question string) (bool, error) {
	if err := writef(os.Stdout, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation input: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si", nil
}
