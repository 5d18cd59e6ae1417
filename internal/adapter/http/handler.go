package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"villagrove/internal/app/activity"
	"villagrove/internal/app/auth"
	"villagrove/internal/app/inventory"
	"villagrove/internal/app/museum"
	"villagrove/internal/app/ports"
	"villagrove/internal/app/shop"
	"villagrove/internal/app/villager"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	RegisterUC  auth.RegisterUseCase
	LoginUC     auth.LoginUseCase
	ProfileUC   auth.ProfileUseCase
	Tokens      ports.TokenIssuer
	VillagerUC  villager.UseCase
	ActivityUC  activity.UseCase
	MuseumUC    museum.UseCase
	InventoryUC inventory.UseCase
	ShopUC      shop.UseCase
	KPI         kpiSnapshotProvider
	Log         *logrus.Logger

	// AuthLimiter optionally throttles login/register.
	AuthLimiter app.HandlerFunc
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	if h.Log != nil {
		s.Use(requestLogger(h.Log))
	}

	s.GET("/ping", h.ping)
	s.GET("/ops/kpi", h.kpi)

	authGroup := s.Group("/api/v1/auth")
	if h.AuthLimiter != nil {
		authGroup.POST("/login", h.AuthLimiter, h.login)
		authGroup.POST("/register", h.AuthLimiter, h.register)
	} else {
		authGroup.POST("/login", h.login)
		authGroup.POST("/register", h.register)
	}
	authGroup.GET("/me", h.requireUser, h.me)

	villagers := s.Group("/api/villagers", h.requireUser)
	villagers.GET("", h.listVillagers)
	villagers.POST("/create", h.createVillager)
	villagers.GET("/:id", h.getVillager)
	villagers.PUT("/:id/name", h.renameVillager)
	villagers.DELETE("/:id", h.releaseVillager)
	villagers.POST("/:id/talk", h.talk)
	villagers.POST("/:id/give-gift", h.interaction("give-gift"))
	villagers.POST("/:id/play", h.interaction("play"))
	villagers.POST("/:id/feed", h.interaction("feed"))
	villagers.POST("/:id/heal", h.interaction("heal"))
	villagers.POST("/:id/sleep", h.interaction("sleep"))

	activities := s.Group("/api/activities", h.requireUser)
	activities.GET("/bugs", h.bugCatalog)
	activities.GET("/fish", h.fishCatalog)
	activities.POST("/villagers/:id/catch-bug", h.catchBug)
	activities.POST("/villagers/:id/catch-fish", h.catchFish)
	activities.GET("/villagers/:id/caught-bugs", h.caughtBugs)
	activities.GET("/villagers/:id/caught-fish", h.caughtFish)

	museumGroup := s.Group("/api/museum", h.requireUser)
	museumGroup.GET("/villagers/:id/bugs", h.museumBugs)
	museumGroup.GET("/villagers/:id/fish", h.museumFish)

	inventoryGroup := s.Group("/api/inventory", h.requireUser)
	inventoryGroup.GET("", h.listInventory)
	inventoryGroup.GET("/furniture", h.listOwnedFurniture)
	inventoryGroup.DELETE("/item/:id", h.sellItem)
	inventoryGroup.DELETE("/furniture/:id", h.sellItem)

	shopGroup := s.Group("/api/shop", h.requireUser)
	shopGroup.GET("/furniture", h.shopFurniture)
	shopGroup.POST("/purchase", h.purchase)
}

func (h Handler) ping(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	var body auth.RegisterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RegisterUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) login(c context.Context, ctx *app.RequestContext) {
	var body loginRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.LoginUC.Execute(c, auth.LoginRequest{Username: body.Username, Password: body.Password})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) me(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ProfileUC.Execute(c, ctx.GetString(userIDKey))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func pathID(ctx *app.RequestContext) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

var errMalformedID = errors.New("malformed id in path")

// requireUser is the bearer-token gate on everything but login and
// register.
func (h Handler) requireUser(c context.Context, ctx *app.RequestContext) {
	header := strings.TrimSpace(string(ctx.GetHeader("Authorization")))
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		writeErrorBody(ctx, consts.StatusUnauthorized, "unauthorized", "missing bearer token")
		ctx.Abort()
		return
	}
	claims, err := h.Tokens.Verify(strings.TrimSpace(token))
	if err != nil {
		writeErrorBody(ctx, consts.StatusUnauthorized, "unauthorized", "invalid or expired token")
		ctx.Abort()
		return
	}
	ctx.Set(userIDKey, claims.UserID)
	ctx.Next(c)
}
