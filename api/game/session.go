package gameapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-tilt/api/identity"
	"github.com/beka-birhanu/vinom-tilt/domain"
	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/service"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	contextSessionID   = "sessionID"
	defaultBoardLimit  = 10
	maxBoardLimit      = 100
	leaderboardTimeout = time.Second
)

// SessionController exposes game sessions over HTTP and WebSocket.
type SessionController struct {
	sessions     i.GameSessionManager
	auth         i.SessionAuthenticator
	leaderboard  i.Leaderboard
	defaultBoard string
	logger       i.Logger
	upgrader     websocket.Upgrader
	stream       StreamConfig
}

// Config holds the dependencies of a SessionController.
type Config struct {
	Sessions     i.GameSessionManager
	Auth         i.SessionAuthenticator
	Leaderboard  i.Leaderboard
	DefaultBoard string // Board shown when the leaderboard is requested without one.
	Logger       i.Logger
	CheckOrigin  func(r *http.Request) bool // Defaults to allowing every origin.
	Stream       StreamConfig
}

// NewSessionController initializes a SessionController.
func NewSessionController(c Config) (*SessionController, error) {
	if c.Sessions == nil || c.Auth == nil || c.Leaderboard == nil || c.Logger == nil {
		return nil, errors.New("sessions, auth, leaderboard and logger are required")
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = func(*http.Request) bool { return true }
	}
	if c.DefaultBoard == "" {
		c.DefaultBoard = domain.BoardName(game.DefaultConfig().Cols, game.DefaultConfig().Rows)
	}

	return &SessionController{
		sessions:     c.Sessions,
		auth:         c.Auth,
		leaderboard:  c.Leaderboard,
		defaultBoard: c.DefaultBoard,
		logger:       c.Logger,
		upgrader:     websocket.Upgrader{CheckOrigin: c.CheckOrigin},
		stream:       c.Stream.withDefaults(),
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/sessions", sc.create)
	route.GET("/leaderboard", sc.top)
}

// RegisterProtected registers protected routes.
func (sc *SessionController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions/:ID")
	sessions.Use(sc.ownSession)
	{
		sessions.POST("/load", sc.load)
		sessions.GET("/maze", sc.maze)
		sessions.GET("/state", sc.state)
		sessions.PUT("/input", sc.input)
		sessions.DELETE("", sc.close)
		sessions.GET("/ws", sc.serveStream)
	}
}

// create starts a new session and returns its token.
func (sc *SessionController) create(ctx *gin.Context) {
	info, err := sc.sessions.NewSession()
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	token, err := sc.auth.Issue(info.ID)
	if err != nil {
		_ = sc.sessions.Close(info.ID)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing token"})
		return
	}

	ctx.JSON(http.StatusCreated, SessionResponse{
		ID:        info.ID,
		Token:     token,
		Cols:      info.Cols,
		Rows:      info.Rows,
		CreatedAt: info.CreatedAt,
	})
}

// top lists the fastest runs of a board.
func (sc *SessionController) top(ctx *gin.Context) {
	board := ctx.DefaultQuery("board", sc.defaultBoard)
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", strconv.Itoa(defaultBoardLimit)), 10, 64)
	if err != nil || limit <= 0 || limit > maxBoardLimit {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be between 1 and %d", maxBoardLimit)})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, leaderboardTimeout)
	defer cancel()
	entries, err := sc.leaderboard.Top(timeoutCtx, board, limit)
	if err != nil {
		sc.logger.Error(fmt.Sprintf("reading leaderboard %s: %s", board, err))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, newLeaderboardResponse(board, entries))
}

// ownSession rejects requests whose token is not scoped to the session in the path.
func (sc *SessionController) ownSession(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	claims, ok := identity.Claims(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	tokenSession, err := service.SessionFromClaims(claims)
	if err != nil || tokenSession != id {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not grant this session"})
		return
	}

	ctx.Set(contextSessionID, id)
	ctx.Next()
}

func sessionID(ctx *gin.Context) uuid.UUID {
	return ctx.MustGet(contextSessionID).(uuid.UUID)
}

// load regenerates the maze and resets the ball.
func (sc *SessionController) load(ctx *gin.Context) {
	w, err := sc.sessions.Load(sessionID(ctx))
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, newMazeResponse(w))
}

func (sc *SessionController) maze(ctx *gin.Context) {
	w, err := sc.sessions.World(sessionID(ctx))
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(w))
}

func (sc *SessionController) state(ctx *gin.Context) {
	s, err := sc.sessions.State(sessionID(ctx))
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newStateResponse(s))
}

func (sc *SessionController) input(ctx *gin.Context) {
	var request InputRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update, ok := request.update()
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tilt or keys required"})
		return
	}

	if err := sc.sessions.Input(sessionID(ctx), update); err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (sc *SessionController) close(ctx *gin.Context) {
	if err := sc.sessions.Close(sessionID(ctx)); err != nil {
		sc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// fail writes the response for a service error.
func (sc *SessionController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTooManySessions):
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrNotLoaded):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		sc.logger.Error(fmt.Sprintf("%s %s: %s", ctx.Request.Method, ctx.FullPath(), err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
