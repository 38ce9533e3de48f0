package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"growguard/config"
	"growguard/internal/delivery"
	"growguard/internal/delivery/http"
	"growguard/internal/delivery/http/middleware"
	"growguard/internal/delivery/http/router/handler"
	"growguard/internal/domain/i18n"
	"growguard/internal/domain/service"
	"growguard/internal/infra/auth"
	"growguard/internal/infra/camera"
	"growguard/internal/infra/gateway"
	"growguard/internal/infra/imagecache"
	logs "growguard/internal/infra/log"
	"growguard/internal/infra/metrics"
	"growguard/internal/infra/qrcode"
	"growguard/internal/infra/storage"
	"growguard/internal/infra/validation"
	"growguard/internal/usecase"
	"growguard/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Supported subcommands:
// - serve:  Run the companion server (default)
// - health: Probe the backend once and exit

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	healthCmd := flag.NewFlagSet("health", flag.ExitOnError)
	healthTimeout := healthCmd.Duration("timeout", 10*time.Second, "Maximum time to wait for the backend")

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		runServer()
	case "health":
		if err := healthCmd.Parse(os.Args[2:]); err != nil {
			os.Exit(2)
		}
		if err := runHealth(*healthTimeout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: growguard [serve|health]")
	fmt.Fprintln(os.Stderr, "  serve   Run the companion server (default)")
	fmt.Fprintln(os.Stderr, "  health  Probe the backend once and exit")
}

func runServer() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		storage.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gateway.New,
			camera.New,
			imagecache.New,
			qrcode.New,
			auth.NewTokenInspector,
			i18n.Default,
			newClock,
			fx.Annotate(
				validation.New,
				fx.As(new(service.Validator)),
				fx.As(new(echo.Validator)),
			),
		),
	)
}

func newClock() service.Clock {
	return time.Now
}

// newSessionBinding hands the gateway the session without exposing the rest of it.
func newSessionBinding(session usecase.SessionUsecase) service.SessionBinding {
	return session
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigatorService,
			impl.NewLanguageService,
			impl.NewSessionService,
			newSessionBinding,
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewRatingService,
			impl.NewReportService,
			impl.NewDiagnosisService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScreenRenderer,
			handler.NewLanguageHandler,
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewProfileHandler,
			handler.NewScanHandler,
			handler.NewReportHandler,
			handler.NewSystemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
