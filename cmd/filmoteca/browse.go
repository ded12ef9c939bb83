package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/filmoteca/filmoteca-cli/internal/service"
	"github.com/filmoteca/filmoteca-cli/internal/validation"
	"github.com/filmoteca/filmoteca-cli/internal/viewmodel"
)

// errQuit unwinds the browse loop on the quit choice or on EOF.
var errQuit = errors.New("quit")

// browser drives the interactive screens. The active route is decided once at
// startup and re-decided only after a login or logout, never in between.
type browser struct {
	cmdCtx *commandContext
	reader *bufio.Reader
}

func runBrowse(cmdCtx *commandContext, _ []string) error {
	b := &browser{
		cmdCtx: cmdCtx,
		reader: bufio.NewReader(os.Stdin),
	}

	route, _, err := service.Resolve(cmdCtx.Ctx, cmdCtx.App.Sessions)
	if err != nil {
		cmdCtx.Logger.Warn("session unreadable, starting unauthenticated", "error", err)
	}

	for {
		var next service.Route
		switch route {
		case service.RouteAdmin:
			next, err = b.adminMenu(cmdCtx.Ctx)
		case service.RouteUser:
			next, err = b.userMenu(cmdCtx.Ctx)
		default:
			next, err = b.authMenu(cmdCtx.Ctx)
		}
		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		route = next
	}
}

func (b *browser) authMenu(ctx context.Context) (service.Route, error) {
	if _, err := headerText.Println("\n— Filmoteca —"); err != nil {
		return service.RouteAuth, err
	}
	choice, err := b.choose("1) Iniciar sesión  2) Registrarse  q) Salir")
	if err != nil {
		return service.RouteAuth, err
	}
	switch choice {
	case "1":
		return b.loginScreen(ctx)
	case "2":
		if err := b.registerScreen(ctx); err != nil {
			return service.RouteAuth, err
		}
		return service.RouteAuth, nil
	case "q":
		return service.RouteAuth, errQuit
	default:
		return service.RouteAuth, nil
	}
}

func (b *browser) loginScreen(ctx context.Context) (service.Route, error) {
	vm := viewmodel.NewLogin(b.cmdCtx.App.Auth)

	var err error
	if vm.Identifier, err = promptLine(b.reader, "Usuario o email: "); err != nil {
		return service.RouteAuth, err
	}
	if vm.Password, err = promptLine(b.reader, "Contraseña: "); err != nil {
		return service.RouteAuth, err
	}

	route, submitErr := vm.Submit(ctx)
	if submitErr != nil {
		if printErr := printScreenError(vm.Message()); printErr != nil {
			return service.RouteAuth, printErr
		}
		return service.RouteAuth, nil
	}
	return route, nil
}

func (b *browser) registerScreen(ctx context.Context) error {
	vm := viewmodel.NewRegister(b.cmdCtx.App.Auth)

	var err error
	if vm.Username, err = promptLine(b.reader, "Usuario: "); err != nil {
		return err
	}
	if vm.Email, err = promptLine(b.reader, "Email: "); err != nil {
		return err
	}
	if vm.Password, err = promptLine(b.reader, "Contraseña: "); err != nil {
		return err
	}
	role, err := promptLine(b.reader, "Rol [USER]: ")
	if err != nil {
		return err
	}
	if role != "" {
		vm.Role = strings.ToUpper(role)
	}

	if submitErr := vm.Submit(ctx); submitErr != nil {
		return printScreenError(vm.Message())
	}
	if _, err := successText.Println("Cuenta creada. Ahora inicia sesión."); err != nil {
		return err
	}
	return nil
}

func (b *browser) userMenu(ctx context.Context) (service.Route, error) {
	if _, err := headerText.Println("\n— Catálogo —"); err != nil {
		return service.RouteUser, err
	}
	choice, err := b.choose("1) Películas  2) Ver detalle  3) Cerrar sesión  q) Salir")
	if err != nil {
		return service.RouteUser, err
	}
	switch choice {
	case "1":
		return service.RouteUser, b.movieListScreen(ctx)
	case "2":
		return service.RouteUser, b.movieDetailScreen(ctx)
	case "3":
		return b.logout(ctx)
	case "q":
		return service.RouteUser, errQuit
	default:
		return service.RouteUser, nil
	}
}

func (b *browser) adminMenu(ctx context.Context) (service.Route, error) {
	if _, err := headerText.Println("\n— Catálogo (admin) —"); err != nil {
		return service.RouteAdmin, err
	}
	choice, err := b.choose("1) Películas  2) Ver detalle  3) Nueva película  4) Eliminar película  5) Géneros  6) Eliminar género  7) Cerrar sesión  q) Salir")
	if err != nil {
		return service.RouteAdmin, err
	}
	switch choice {
	case "1":
		return service.RouteAdmin, b.movieListScreen(ctx)
	case "2":
		return service.RouteAdmin, b.movieDetailScreen(ctx)
	case "3":
		return service.RouteAdmin, b.movieCreateScreen(ctx)
	case "4":
		return service.RouteAdmin, b.movieDeleteScreen(ctx)
	case "5":
		return service.RouteAdmin, b.genreListScreen(ctx)
	case "6":
		return service.RouteAdmin, b.genreDeleteScreen(ctx)
	case "7":
		return b.logout(ctx)
	case "q":
		return service.RouteAdmin, errQuit
	default:
		return service.RouteAdmin, nil
	}
}

func (b *browser) logout(ctx context.Context) (service.Route, error) {
	if err := b.cmdCtx.App.Auth.Logout(ctx); err != nil {
		return service.RouteAuth, err
	}
	route, _, err := service.Resolve(ctx, b.cmdCtx.App.Sessions)
	if err != nil {
		b.cmdCtx.Logger.Warn("session unreadable after logout", "error", err)
	}
	return route, nil
}

func (b *browser) movieListScreen(ctx context.Context) error {
	vm := viewmodel.NewMovieList(b.cmdCtx.App.Movies)
	vm.Load(ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	return printMovieTable(vm.Items())
}

func (b *browser) movieDetailScreen(ctx context.Context) error {
	id, err := b.promptID("ID de la película: ")
	if err != nil || id == 0 {
		return err
	}
	vm := viewmodel.NewMovieDetail(b.cmdCtx.App.Movies, id)
	vm.Load(ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	return printMovieDetail(vm.Movie())
}

func (b *browser) movieCreateScreen(ctx context.Context) error {
	vm := viewmodel.NewMovieForm(b.cmdCtx.App.Movies, b.cmdCtx.App.Genres, 0)
	vm.Load(ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}

	if err := printGenreTable(vm.Genres()); err != nil {
		return err
	}

	var err error
	if vm.Data.Titulo, err = promptLine(b.reader, "Título: "); err != nil {
		return err
	}
	if vm.Data.Director, err = promptLine(b.reader, "Director: "); err != nil {
		return err
	}
	genreRaw, err := promptLine(b.reader, "ID de género: ")
	if err != nil {
		return err
	}
	if genreRaw != "" {
		if vm.Data.GeneroID, err = strconv.Atoi(genreRaw); err != nil {
			return printScreenError("ID de género inválido")
		}
	}

	// Optional fields keep their defaults when left blank; bad input
	// re-prompts before anything is sent.
	anioRaw, err := b.promptValidated("Año ["+strconv.Itoa(vm.Data.Anio)+"]: ",
		validation.IntRange("El año", 1888, time.Now().Year()+5))
	if err != nil {
		return err
	}
	if anioRaw != "" {
		vm.Data.Anio, _ = strconv.Atoi(anioRaw)
	}
	ratingRaw, err := b.promptValidated(fmt.Sprintf("Rating [%.1f]: ", vm.Data.Rating),
		validation.FloatRange("El rating", 0, 10))
	if err != nil {
		return err
	}
	if ratingRaw != "" {
		vm.Data.Rating, _ = strconv.ParseFloat(ratingRaw, 64)
	}
	trailer, err := b.promptValidated("Tráiler (URL, opcional): ",
		validation.OptionalURL("El tráiler"))
	if err != nil {
		return err
	}
	vm.Data.Trailer = trailer
	if vm.Data.Sinopsis, err = promptLine(b.reader, "Sinopsis: "); err != nil {
		return err
	}

	if submitErr := vm.Submit(ctx); submitErr != nil {
		return printScreenError(vm.Message())
	}
	if _, err := successText.Println("Película creada"); err != nil {
		return err
	}
	return nil
}

func (b *browser) movieDeleteScreen(ctx context.Context) error {
	vm := viewmodel.NewMovieList(b.cmdCtx.App.Movies)
	vm.Load(ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	if err := printMovieTable(vm.Items()); err != nil {
		return err
	}

	id, err := b.promptID("ID a eliminar: ")
	if err != nil || id == 0 {
		return err
	}
	confirmed, err := confirmPrompt("Confirmar eliminación?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	if deleteErr := vm.Delete(ctx, id); deleteErr != nil {
		return printScreenError(vm.Message())
	}
	return printMovieTable(vm.Items())
}

func (b *browser) genreListScreen(ctx context.Context) error {
	vm := viewmodel.NewGenreList(b.cmdCtx.App.Genres)
	vm.Load(ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	return printGenreTable(vm.Items())
}

func (b *browser) genreDeleteScreen(ctx context.Context) error {
	vm := viewmodel.NewGenreList(b.cmdCtx.App.Genres)
	vm.Load(ctx)
	if vm.Phase() == viewmodel.PhaseError {
		return printScreenError(vm.Message())
	}
	if err := printGenreTable(vm.Items()); err != nil {
		return err
	}

	id, err := b.promptID("ID a eliminar: ")
	if err != nil || id == 0 {
		return err
	}
	confirmed, err := confirmPrompt("Confirmar eliminación?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	if deleteErr := vm.Delete(ctx, id); deleteErr != nil {
		return printScreenError(vm.Message())
	}
	return printGenreTable(vm.Items())
}

// promptValidated reads an optional field, re-prompting while the input is
// non-empty and fails the validator. Empty input means "keep the default".
func (b *browser) promptValidated(prompt string, validate validation.Validator) (string, error) {
	for {
		raw, err := promptLine(b.reader, prompt)
		if err != nil {
			return "", err
		}
		if raw == "" {
			return "", nil
		}
		msg := validate(raw)
		if msg == "" {
			return raw, nil
		}
		if printErr := printScreenError(msg); printErr != nil {
			return "", printErr
		}
	}
}

func (b *browser) choose(options string) (string, error) {
	return promptLine(b.reader, options+"\n> ")
}

// promptID reads a positive numeric id. Bad input prints a message and
// returns 0, which screens treat as "back to the menu".
func (b *browser) promptID(prompt string) (int, error) {
	raw, err := promptLine(b.reader, prompt)
	if err != nil {
		return 0, err
	}
	id, convErr := strconv.Atoi(raw)
	if convErr != nil || id <= 0 {
		return 0, printScreenError("ID inválido: " + raw)
	}
	return id, nil
}
