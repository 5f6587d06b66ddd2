package main

import (
	"context"
	"errors"
	pkgerrors "github.com/pkg/errors"
	"go-link-shortener/internal/app/handlers"
	"go-link-shortener/internal/app/registry"
	"go-link-shortener/internal/app/service"
	"go-link-shortener/internal/configs"
	"golang.org/x/sync/errgroup"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.SetOutput(os.Stdout)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config, err := configs.ReadConfig()
	if err != nil {
		return pkgerrors.Wrap(err, "read server configuration")
	}
	log.Printf("Config: %+v", config)

	network, err := config.Network()
	if err != nil {
		return err
	}

	reg := registry.New(
		registry.WithShards(config.RegistryShards),
		registry.WithCollisionPolicy(config.Policy()),
	)
	log.Printf("Memory registry is used (collision policy: %v)", reg.Policy())

	svc := service.NewService(reg, network, config.BaseURL)
	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: handlers.NewRouter(handlers.NewHTTPHandler(svc)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server started on %v", config.ServerAddress)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return pkgerrors.Wrap(serveErr, "listen and serve")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Print("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
