package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-tilt/api"
	gameapi "github.com/beka-birhanu/vinom-tilt/api/game"
	api_i "github.com/beka-birhanu/vinom-tilt/api/i"
	"github.com/beka-birhanu/vinom-tilt/api/identity"
	"github.com/beka-birhanu/vinom-tilt/config"
	"github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/beka-birhanu/vinom-tilt/game"
	pb "github.com/beka-birhanu/vinom-tilt/game/pb_encoder"
	logger "github.com/beka-birhanu/vinom-tilt/infrastruture/log"
	"github.com/beka-birhanu/vinom-tilt/infrastruture/repo"
	"github.com/beka-birhanu/vinom-tilt/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-tilt/infrastruture/token"
	"github.com/beka-birhanu/vinom-tilt/service"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout  = 10 * time.Second
	janitorInterval = time.Minute
	leaderboardTTL  = 30 * 24 * time.Hour
)

// Global variables for dependencies
var (
	envs               config.Config
	gameConfig         game.Config
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	runRepo            i.RunRepo
	leaderboard        i.Leaderboard
	gameSessionManager *service.GameSessionManager
	jwtTokenizer       i.Tokenizer
	authService        i.SessionAuthenticator
	sessionController  api_i.Controller
	authController     api_i.Controller
	router             *api.Router
	appLogger          *logger.Logger
)

func fatal(format string, args ...interface{}) {
	appLogger.Error(fmt.Sprintf(format, args...))
	_ = appLogger.Sync()
	os.Exit(1)
}

func initConfig() {
	var err error
	envs, err = config.Load()
	if err != nil {
		fatal("Loading configuration: %v", err)
	}
	if envs.EnvFileErr != nil {
		appLogger.Info(fmt.Sprintf(".env file not loaded: %v", envs.EnvFileErr))
	}
	gin.SetMode(envs.GinMode)

	gameConfig, err = config.LoadGame(envs.GameConfigPath)
	if err != nil {
		fatal("Loading game configuration: %v", err)
	}
	appLogger.Info(fmt.Sprintf("Game configured for %dx%d mazes", gameConfig.Cols, gameConfig.Rows))
}

func initMongo(ctx context.Context) {
	if envs.DBHost == "" {
		appLogger.Warning("DB_HOST not set, finished runs will not be stored")
		return
	}

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(envs.MongoURI()))
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	runRepo = repo.NewRunRepo(mongoClient, envs.DBName, "runs")
	appLogger.Info("Connected to MongoDB")
}

func initLeaderboard(ctx context.Context) {
	if envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set, leaderboard is disabled")
		leaderboard = service.NopLeaderboard{}
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}

	var err error
	leaderboard, err = sortedstorage.NewRedisLeaderboard(sortedstorage.Config{
		Client: redisClient,
		Size:   int64(envs.LeaderboardSize),
		TTL:    leaderboardTTL,
	})
	if err != nil {
		fatal("Creating leaderboard: %v", err)
	}
	appLogger.Info("Connected to Redis")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		fatal("Creating session manager logger: %v", err)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		GameConfig:  gameConfig,
		Encoder:     &pb.Protobuf{},
		RunRepo:     runRepo,
		Leaderboard: leaderboard,
		Logger:      sessionLogger,
		MaxSessions: envs.MaxSessions,
		IdleTimeout: envs.SessionIdleTimeout,
	})
	if err != nil {
		fatal("Creating session manager: %v", err)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuth(jwtTokenizer, envs.SessionTokenTTL)
	if err != nil {
		fatal("Creating auth service: %v", err)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	controllerLogger, err := logger.New("API", config.ColorBlue, os.Stdout)
	if err != nil {
		fatal("Creating controller logger: %v", err)
	}

	sessionController, err = gameapi.NewSessionController(gameapi.Config{
		Sessions:     gameSessionManager,
		Auth:         authService,
		Leaderboard:  leaderboard,
		DefaultBoard: domain.BoardName(gameConfig.Cols, gameConfig.Rows),
		Logger:       controllerLogger,
	})
	if err != nil {
		fatal("Creating session controller: %v", err)
	}

	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, sessionController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initConfig()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	initMongo(connectCtx)
	initLeaderboard(connectCtx)
	cancel()
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initSessionManager()
	defer gameSessionManager.StopAll()
	go gameSessionManager.RunJanitor(ctx, janitorInterval)

	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", envs.HostIP, envs.RESTPort))
	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Running server: %v", err))
		return
	}
	appLogger.Info("Server stopped")
}
