package httpadapter

import (
	"context"

	"villagrove/internal/app/villager"
	"villagrove/internal/domain/village"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func (h Handler) listVillagers(c context.Context, ctx *app.RequestContext) {
	views, err := h.VillagerUC.List(c, ctx.GetString(userIDKey))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, views)
}

func (h Handler) getVillager(c context.Context, ctx *app.RequestContext) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	view, err := h.VillagerUC.Get(c, ctx.GetString(userIDKey), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, view)
}

func (h Handler) createVillager(c context.Context, ctx *app.RequestContext) {
	var body villager.CreateRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	view, err := h.VillagerUC.Create(c, ctx.GetString(userIDKey), body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, view)
}

func (h Handler) renameVillager(c context.Context, ctx *app.RequestContext) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	var body villager.RenameRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	view, err := h.VillagerUC.Rename(c, ctx.GetString(userIDKey), id, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, view)
}

func (h Handler) releaseVillager(c context.Context, ctx *app.RequestContext) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	if err := h.VillagerUC.Release(c, ctx.GetString(userIDKey), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"message": "villager released"})
}

func (h Handler) talk(c context.Context, ctx *app.RequestContext) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	result, err := h.VillagerUC.Talk(c, ctx.GetString(userIDKey), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, result)
}

// interaction builds the handler for one non-talk interaction route.
func (h Handler) interaction(kindRaw string) app.HandlerFunc {
	kind, _ := village.ParseInteractionType(kindRaw)
	return func(c context.Context, ctx *app.RequestContext) {
		id, err := pathID(ctx)
		if err != nil {
			writeError(ctx, errMalformedID)
			return
		}
		result, err := h.VillagerUC.PerformAction(c, ctx.GetString(userIDKey), id, kind)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, result)
	}
}
