package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/pkg/auth"
	"droscher.com/RecipeBox/pkg/repository"
	"droscher.com/RecipeBox/pkg/server"
	"droscher.com/RecipeBox/pkg/server/rest"
	"droscher.com/RecipeBox/pkg/server/rest/api/v1/apiv1http"
	"droscher.com/RecipeBox/pkg/shortlink"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 30 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".RecipeBox.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewAuthManager(conf, repo, logger)
	allocator := shortlink.NewAllocator(repo, conf.ShortLink, logger)

	recipeServer := server.NewRecipeServer(repo, repo, repo, repo, allocator, conf, logger)
	userServer := server.NewUserServer(repo, repo, repo, authManager, conf, logger)
	catalogServer := server.NewCatalogServer(repo, logger)

	opts := []apiv1http.HandlerOption{
		apiv1http.WithLogger(logger),
		apiv1http.WithPageSize(conf.Pagination.PageSize),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(rest.RequestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(conf.Server.RequestTimeout))
	router.Use(authManager.Authenticate)

	router.Mount(apiv1http.NewAuthServiceHandler(userServer, opts...))
	router.Mount(apiv1http.NewUserServiceHandler(userServer, opts...))
	router.Mount(apiv1http.NewTagServiceHandler(catalogServer, opts...))
	router.Mount(apiv1http.NewIngredientServiceHandler(catalogServer, opts...))
	router.Mount(apiv1http.NewRecipeServiceHandler(recipeServer, opts...))
	router.Mount(apiv1http.NewShortLinkHandler(recipeServer, opts...))

	checker := grpchealth.NewStaticChecker()
	router.Mount(grpchealth.NewHandler(checker))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(router)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	return serve(svr, logger)
}

// serve runs svr until SIGINT or SIGTERM, then drains in-flight requests.
func serve(svr *http.Server, logger *zap.Logger) error {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening", zap.String("address", svr.Addr))

		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-signalCtx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := svr.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders: []string{
			"content-disposition",
			"location",
		},
		MaxAge:             86400,
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
