// Package mazeapi handles maze crafting and retrieval over HTTP.
package mazeapi

import (
	"net/http"

	"github.com/beka-birhanu/labyrinth-api/api/identity"
	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze crafting operations.
type MazeController struct {
	crafter i.MazeCrafter
}

// NewMazeController initializes a MazeController.
func NewMazeController(mc i.MazeCrafter) (*MazeController, error) {
	return &MazeController{
		crafter: mc,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeByID)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.craft)
	}
}

// craft handles maze crafting requests.
func (mc *MazeController) craft(ctx *gin.Context) {
	var request CraftRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Size < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "size must be a positive integer"})
		return
	}

	record, err := mc.crafter.Craft(ctx, request.Size, request.Seed, craftedBy(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(record))
}

// mazeByID retrieves a stored maze.
func (mc *MazeController) mazeByID(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := mc.crafter.ByID(ctx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Maze"})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(record))
}

// craftedBy extracts the username from the claims set by the auth middleware.
func craftedBy(ctx *gin.Context) string {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return ""
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return ""
	}
	username, _ := claims["username"].(string)
	return username
}

func toResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:          record.ID.String(),
		Rows:        record.Rows,
		Cols:        record.Cols,
		Seed:        record.Seed,
		EntranceRow: record.EntranceRow,
		EntranceCol: record.EntranceCol,
		ExitRow:     record.ExitRow,
		ExitCol:     record.ExitCol,
		PathLength:  record.PathLength,
		Data:        record.Data,
		CreatedBy:   record.CreatedBy,
	}
}
