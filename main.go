package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/labyrinth-api/api"
	api_i "github.com/beka-birhanu/labyrinth-api/api/i"
	"github.com/beka-birhanu/labyrinth-api/api/identity"
	mazeapi "github.com/beka-birhanu/labyrinth-api/api/mazes"
	"github.com/beka-birhanu/labyrinth-api/config"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/cache"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/token"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	mazeCache      i.MazeCache
	mazeService    i.MazeCrafter
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	router         *api.Router
	appLogger      *logrus.Logger
)

func initLogger() {
	appLogger = logrus.New()
	appLogger.SetOutput(os.Stdout)
	appLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		appLogger.Warnf("Unknown log level %q, defaulting to info", config.Envs.LogLevel)
		level = logrus.InfoLevel
	}
	appLogger.SetLevel(level)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Errorf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Errorf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Errorf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initMazeCache() {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, config.Envs.MazeCacheTTL)
	if err != nil {
		appLogger.Errorf("Creating maze cache: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze cache initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(
		mazeRepo,
		mazeCache,
		config.Envs.MazeMaxSize,
		logrus.NewEntry(appLogger).WithField("component", "maze-service"),
	)
	if err != nil {
		appLogger.Errorf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Errorf("Creating auth service: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
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
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	initLogger()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initMazeCache()
	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
