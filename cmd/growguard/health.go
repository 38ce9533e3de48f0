package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"growguard/internal/domain/service"
	"growguard/internal/errors"

	"go.uber.org/fx"
)

// runHealth builds only what the gateway needs, probes the backend and prints its answer.
func runHealth(timeout time.Duration) error {
	var gw service.Gateway

	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Populate(&gw),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() { _ = app.Stop(context.Background()) }()

	status, err := gw.Health(ctx)
	if err != nil {
		return errors.Wrap(err, "backend health check failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(status); err != nil {
		return errors.WithStack(err)
	}
	if !status.Success {
		return errors.New("backend reported unhealthy")
	}

	return nil
}
