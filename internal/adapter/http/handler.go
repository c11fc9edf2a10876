package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"tilerealm/internal/app/worldstate"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/sovereign"
	"tilerealm/internal/domain/world"
)

const playerIDHeader = "X-Player-ID"

// Handler exposes the player path of the world service. Gameplay failures
// come back as 200 with a result-style body; only infrastructure problems
// surface as 5xx.
type Handler struct {
	World         *worldstate.World
	KPI           kpiSnapshotProvider
	SpawnPoint    world.Point
	StartingCoins int
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	w := s.Group("/api/world")
	w.POST("/join", h.join)
	w.POST("/claim", h.claim)
	w.POST("/claim-all", h.claimAll)
	w.POST("/gather", h.gather)
	w.POST("/place", h.place)
	w.POST("/consume", h.consume)
	w.POST("/name-tile", h.nameTile)
	w.GET("/view", h.view)
	w.GET("/networth", h.netWorth)

	s.POST("/api/sovereignty", h.createSovereignty)
	s.PATCH("/api/sovereignty", h.updateSovereignty)
	s.GET("/api/standings", h.standings)
	s.GET("/ops/kpi", h.kpi)
}

type tileRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type claimAllRequest struct {
	Tiles []world.Point `json:"tiles"`
}

type gatherRequest struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	ResourceID string `json:"resource_id"`
}

type itemRequest struct {
	ResourceID string `json:"resource_id"`
}

type nameTileRequest struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Name string `json:"name"`
}

type sovereigntyRequest struct {
	Name  string `json:"name"`
	Flag  string `json:"flag"`
	Motto string `json:"motto"`
}

// join registers the caller as an embodied claimant at the spawn point.
// Joining twice is harmless: an existing record is kept untouched.
func (h Handler) join(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	h.World.AddPlayer(agent.NewPlayer(playerID, h.SpawnPoint, h.StartingCoins))
	p, _ := h.World.PlayerSnapshot(playerID)
	ctx.JSON(consts.StatusOK, map[string]any{"player": p})
}

func (h Handler) claim(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body tileRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.Claim(playerID, body.X, body.Y))
}

func (h Handler) claimAll(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body claimAllRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.ClaimAll(playerID, body.Tiles))
}

func (h Handler) gather(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body gatherRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.Gather(playerID, body.X, body.Y, body.ResourceID))
}

func (h Handler) place(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body itemRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.PlaceFacing(playerID, body.ResourceID))
}

func (h Handler) consume(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body itemRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.Consume(playerID, body.ResourceID))
}

func (h Handler) nameTile(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body nameTileRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.NameTile(playerID, body.X, body.Y, body.Name))
}

// view returns the grid window around the player, clamped to bounds.
func (h Handler) view(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	p, ok := h.World.PlayerSnapshot(playerID)
	if !ok {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "unknown player")
		return
	}
	radius, _ := strconv.Atoi(string(ctx.Query("radius")))
	if radius <= 0 || radius > 16 {
		radius = 8
	}
	grid := h.World.GridSnapshot()
	tiles := make([]world.Tile, 0, (radius*2+1)*(radius*2+1))
	for y := p.Pos.Y - radius; y <= p.Pos.Y+radius; y++ {
		for x := p.Pos.X - radius; x <= p.Pos.X+radius; x++ {
			if t, inBounds := grid.At(x, y); inBounds {
				tiles = append(tiles, t)
			}
		}
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"player": p,
		"radius": radius,
		"tiles":  tiles,
	})
}

func (h Handler) netWorth(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	report, found := h.World.NetWorth(playerID)
	if !found {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "unknown claimant")
		return
	}
	ctx.JSON(consts.StatusOK, report)
}

func (h Handler) createSovereignty(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body sovereigntyRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.CreateSovereignty(playerID, body.Name, body.Flag, body.Motto))
}

func (h Handler) updateSovereignty(_ context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayer(ctx)
	if !ok {
		return
	}
	var body sovereigntyRequest
	if !decodeJSON(ctx, &body) {
		return
	}
	ctx.JSON(consts.StatusOK, h.World.UpdateSovereignty(playerID, sovereign.Update{
		Name:  body.Name,
		Flag:  body.Flag,
		Motto: body.Motto,
	}))
}

func (h Handler) standings(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"standings": h.World.Standings()})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

var ErrMissingPlayerHeader = errors.New("missing x-player-id header")

func requirePlayer(ctx *app.RequestContext) (string, bool) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", ErrMissingPlayerHeader.Error())
		return "", false
	}
	return playerID, true
}

func decodeJSON(ctx *app.RequestContext, out any) bool {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return true
	}
	if err := json.Unmarshal(body, out); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return false
	}
	return true
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
