package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"mediazone/internal/adapter/api"
	"mediazone/internal/adapter/api/handler"
	apimiddleware "mediazone/internal/adapter/api/middleware"
	"mediazone/internal/adapter/api/router"
	"mediazone/internal/adapter/repository"
	"mediazone/internal/infrastructure/firebase"
	"mediazone/internal/infrastructure/storage"
	"mediazone/internal/usecase"
	"mediazone/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./firebase-service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	authClient := firebase.NewAuthClient(fbAuth)

	productRepo := repository.NewJSONFileProductRepository(cfg.DataDir)
	orderRepo := repository.NewJSONFileOrderRepository(cfg.DataDir)

	uploadService := storage.NewLocalClient(cfg.UploadDir, cfg.PublicUploadURL)

	productUseCase := usecase.NewProductUseCase(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cfg.StorePhone)

	handler.Setup(productUseCase, orderUseCase)

	authHandler := handler.NewAuthHandler(authClient)
	fileHandler := handler.NewFileHandler(uploadService, cfg.MaxUploadSize)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware, authHandler, fileHandler)

	// Uploaded payment proofs and product images are served straight from
	// the upload directory.
	e.Static(cfg.PublicUploadURL, cfg.UploadDir)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
