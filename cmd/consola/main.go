package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/autofix/consola-taller/internal/api"
	"github.com/autofix/consola-taller/internal/domain"
	"github.com/autofix/consola-taller/internal/infrastructure/session"
	"github.com/autofix/consola-taller/internal/interfaces/cli"
	"github.com/autofix/consola-taller/pkg/config"
	"github.com/autofix/consola-taller/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	sesion, err := session.Abrir(cfg.Session.Path)
	if err != nil {
		log.Fatal().Err(err).Str("ruta", cfg.Session.Path).Msg("abrir la sesión")
	}

	zl := log.Zerolog()
	cliente := api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
		Session: sesion,
		Logger:  &zl,
	})

	// Ctrl-C cancela la petición en curso en lugar de matar el proceso a
	// mitad de una escritura de sesión.
	ctx, cancelar := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancelar()

	consola := cli.New(cliente, sesion, log, os.Stdout)
	if err := consola.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, domain.ErrSesionExpirada) {
			fmt.Fprintln(os.Stderr, "vuelve a iniciar sesión: consola login -usuario <u> -password <p>")
		}
		os.Exit(1)
	}
}
