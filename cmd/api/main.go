package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"foreign/internal/adapter/api"
	"foreign/internal/adapter/api/handler"
	apimiddleware "foreign/internal/adapter/api/middleware"
	"foreign/internal/adapter/api/router"
	"foreign/internal/adapter/repository"
	"foreign/internal/infrastructure/firebase"
	"foreign/internal/infrastructure/ratelimit"
	"foreign/internal/infrastructure/storage"
	"foreign/internal/infrastructure/websocket"
	"foreign/internal/usecase"
	"foreign/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from the environment in production, from a file in
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	postRepo := repository.NewFirestorePostRepository(firestoreClient)
	forumRepo := repository.NewFirestoreForumRepository(firestoreClient)
	locationRepo := repository.NewFirestoreLocationRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	resolver := usecase.NewAuthorResolver(userRepo)
	session := usecase.NewProfileSession(userRepo)

	profileUseCase := usecase.NewProfileUseCase(userRepo, firebaseAuthClient)
	feedUseCase := usecase.NewFeedUseCase(postRepo, locationRepo, resolver)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, notificationRepo, resolver)
	forumUseCase := usecase.NewForumUseCase(forumRepo, userRepo, notificationRepo, resolver)
	friendUseCase := usecase.NewFriendUseCase(userRepo, notificationRepo, resolver)
	locationUseCase := usecase.NewLocationUseCase(locationRepo, userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, notificationRepo, resolver, wsManager)
	adminUseCase := usecase.NewAdminUseCase(userRepo, postRepo, locationRepo, forumRepo)

	handler.Setup(
		profileUseCase,
		session,
		feedUseCase,
		postUseCase,
		forumUseCase,
		friendUseCase,
		locationUseCase,
		notificationUseCase,
		adminUseCase,
	)
	handler.SetupFileHandler(storageClient, limiter, cfg.MaxUploadMB)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	chatHandler := handler.NewChatHandler(chatUseCase, limiter)
	wsHandler := handler.NewWebSocketHandler(wsManager, firebaseAuthClient, chatUseCase, forumUseCase)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
