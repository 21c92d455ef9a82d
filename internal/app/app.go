package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/config"
	"github.com/minigram/minigram/internal/db"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/storage"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	UserService    *service.UserService
	ProfileService *service.ProfileService
	PostService    *service.PostService
	PhotoService   *service.PhotoService
	SocialService  *service.SocialService
	CommentService *service.CommentService
	SearchService  *service.SearchService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	postRepository := repository.NewPostRepository(database)
	photoRepository := repository.NewPhotoRepository(database)
	followerRepository := repository.NewFollowerRepository(database)
	commentRepository := repository.NewCommentRepository(database)
	likeRepository := repository.NewLikeRepository(database)

	// Storage
	photoStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	profileService := service.NewProfileService(profileRepository, postRepository, followerRepository)
	photoService := service.NewPhotoService(photoRepository, photoStorage)
	postService := service.NewPostService(postRepository, profileRepository, photoRepository, commentRepository, likeRepository, photoService)
	socialService := service.NewSocialService(profileRepository, postRepository, followerRepository, likeRepository)
	commentService := service.NewCommentService(commentRepository, postRepository)
	searchService := service.NewSearchService(postRepository, profileRepository)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		UserService:    userService,
		ProfileService: profileService,
		PostService:    postService,
		PhotoService:   photoService,
		SocialService:  socialService,
		CommentService: commentService,
		SearchService:  searchService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
