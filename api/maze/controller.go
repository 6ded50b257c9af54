package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-lattice/api/identity"
	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/maze"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	readTimeout     = 2 * time.Second
	generateTimeout = 30 * time.Second
)

// MazeController serves maze generation and retrieval.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is nil")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/recent", mc.recent)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/segments", mc.segments)
		mazes.GET("/:ID/render", mc.render)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// generate builds a new maze for the caller.
func (mc *MazeController) generate(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request GenerateRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()
	record, err := mc.mazeService.Generate(timeoutCtx, owner, request.Size)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, summaryFromRecord(record))
}

// get returns every cell of a maze.
func (mc *MazeController) get(ctx *gin.Context) {
	m, record, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, mazeResponse(m, record))
}

// segments returns the line segments a renderer draws for a maze.
func (mc *MazeController) segments(ctx *gin.Context) {
	m, record, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, &SegmentsResponse{
		ID:       record.ID.String(),
		Size:     m.Size(),
		Segments: m.Segments(),
	})
}

// render returns the layered text drawing of a maze.
func (mc *MazeController) render(ctx *gin.Context) {
	m, _, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(m.String()))
}

// recent lists the newest maze IDs.
func (mc *MazeController) recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	ids, err := mc.mazeService.Recent(timeoutCtx, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := RecentResponse{IDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		response.IDs = append(response.IDs, id.String())
	}
	ctx.JSON(http.StatusOK, response)
}

// delete removes a maze owned by the caller.
func (mc *MazeController) delete(ctx *gin.Context) {
	requester, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	if err := mc.mazeService.Delete(timeoutCtx, requester, id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) load(ctx *gin.Context) (*maze.Maze, *dmn.MazeRecord, bool) {
	id, ok := pathID(ctx)
	if !ok {
		return nil, nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	m, record, err := mc.mazeService.ByID(timeoutCtx, id)
	if err != nil {
		writeError(ctx, err)
		return nil, nil, false
	}
	return m, record, true
}

func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidSize):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	case errors.Is(err, dmn.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
