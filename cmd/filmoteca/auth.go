package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/filmoteca/filmoteca-cli/internal/ports"
	"github.com/filmoteca/filmoteca-cli/internal/service"
	"github.com/filmoteca/filmoteca-cli/internal/viewmodel"
)

var (
	successText = color.New(color.FgGreen)
	errorText   = color.New(color.FgRed)
	headerText  = color.New(color.Bold)
)

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	identifier := fs.String("user", "", "Username or email")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse login flags: %w", err)
	}

	vm := viewmodel.NewLogin(cmdCtx.App.Auth)
	vm.Identifier = *identifier
	vm.Password = *password

	reader := bufio.NewReader(os.Stdin)
	if vm.Identifier == "" {
		value, err := promptLine(reader, "Usuario o email: ")
		if err != nil {
			return err
		}
		vm.Identifier = value
	}
	if vm.Password == "" {
		value, err := promptLine(reader, "Contraseña: ")
		if err != nil {
			return err
		}
		vm.Password = value
	}

	route, err := vm.Submit(cmdCtx.Ctx)
	if err != nil {
		if _, printErr := errorText.Fprintln(os.Stderr, vm.Message()); printErr != nil {
			return fmt.Errorf("print login failure: %w", printErr)
		}
		return err
	}

	if _, err := successText.Printf("Sesión iniciada (%s)\n", routeLabel(route)); err != nil {
		return fmt.Errorf("print login result: %w", err)
	}
	return nil
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("user", "", "Username")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	role := fs.String("role", "USER", "Account role (USER or ADMIN)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse register flags: %w", err)
	}

	vm := viewmodel.NewRegister(cmdCtx.App.Auth)
	vm.Username = *username
	vm.Email = *email
	vm.Password = *password
	vm.Role = *role

	if err := vm.Submit(cmdCtx.Ctx); err != nil {
		if _, printErr := errorText.Fprintln(os.Stderr, vm.Message()); printErr != nil {
			return fmt.Errorf("print register failure: %w", printErr)
		}
		return err
	}

	if _, err := successText.Println("Cuenta creada. Inicia sesión con `filmoteca login`."); err != nil {
		return fmt.Errorf("print register result: %w", err)
	}
	return nil
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.App.Auth.Logout(cmdCtx.Ctx); err != nil {
		return err
	}
	if _, err := successText.Println("Sesión cerrada"); err != nil {
		return fmt.Errorf("print logout result: %w", err)
	}
	return nil
}

func runWhoami(cmdCtx *commandContext, _ []string) error {
	sess, err := cmdCtx.App.Auth.ActiveSession(cmdCtx.Ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return writef(os.Stdout, "No hay sesión activa\n")
		}
		return err
	}
	route := service.RouteFor(sess)
	return writef(os.Stdout, "role: %s\nroute: %s\n", sess.Role, routeLabel(route))
}

func routeLabel(route service.Route) string {
	switch route {
	case service.RouteAdmin:
		return "admin"
	case service.RouteUser:
		return "user"
	default:
		return "auth"
	}
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	if err := writef(os.Stdout, "%s", prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
