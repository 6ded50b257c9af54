package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-lattice/api"
	api_i "github.com/beka-birhanu/vinom-lattice/api/i"
	"github.com/beka-birhanu/vinom-lattice/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-lattice/api/maze"
	"github.com/beka-birhanu/vinom-lattice/config"
	"github.com/beka-birhanu/vinom-lattice/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-lattice/infrastruture/log"
	"github.com/beka-birhanu/vinom-lattice/infrastruture/repo"
	"github.com/beka-birhanu/vinom-lattice/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-lattice/infrastruture/token"
	"github.com/beka-birhanu/vinom-lattice/service"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	mazeRepo       *repo.MazeRepo
	mazeCache      i.MazeCache
	recentIndex    i.SortedIndex
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeService
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func newLogger(name, color string) *logger.Logger {
	l, err := logger.New(name, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", name, err))
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("User repository initialized")

	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	if err := mazeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")

	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, "maze", config.Envs.MazeCacheTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}

	recentIndex, err = sortedstorage.NewRedisSortedIndex(redisClient)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating recent maze index: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze cache and recent index initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer, newLogger("AUTH", config.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.MazeConfig{
		Repo:        mazeRepo,
		Cache:       mazeCache,
		Index:       recentIndex,
		Logger:      newLogger("MAZE", config.ColorCyan),
		MaxSize:     config.Envs.MaxCubeSize,
		DefaultSize: config.Envs.DefaultCubeSize,
		RecentLimit: config.Envs.RecentMazesLimit,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.Load()
	gin.SetMode(config.Envs.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	initRepos(ctx)
	initRedis(ctx)
	defer redisClient.Close()

	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
