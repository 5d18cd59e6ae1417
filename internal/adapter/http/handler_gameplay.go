package httpadapter

import (
	"context"

	"villagrove/internal/app/inventory"
	"villagrove/internal/app/shop"
	"villagrove/internal/domain/catalog"
	"villagrove/internal/domain/village"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func (h Handler) bugCatalog(c context.Context, ctx *app.RequestContext) {
	views, err := h.ActivityUC.Bugs(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, views)
}

func (h Handler) fishCatalog(c context.Context, ctx *app.RequestContext) {
	views, err := h.ActivityUC.Fish(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, views)
}

func (h Handler) catchBug(c context.Context, ctx *app.RequestContext) {
	h.attemptCatch(c, ctx, village.ActivityBug)
}

func (h Handler) catchFish(c context.Context, ctx *app.RequestContext) {
	h.attemptCatch(c, ctx, village.ActivityFish)
}

func (h Handler) attemptCatch(c context.Context, ctx *app.RequestContext, kind village.ActivityKind) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	habitat := string(ctx.Query("habitat"))
	result, err := h.ActivityUC.AttemptCatch(c, ctx.GetString(userIDKey), id, kind, habitat)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, result)
}

func (h Handler) caughtBugs(c context.Context, ctx *app.RequestContext) {
	h.caughtSpecies(c, ctx, catalog.KindBug)
}

func (h Handler) caughtFish(c context.Context, ctx *app.RequestContext) {
	h.caughtSpecies(c, ctx, catalog.KindFish)
}

func (h Handler) caughtSpecies(c context.Context, ctx *app.RequestContext, kind catalog.SpeciesKind) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	views, err := h.ActivityUC.CaughtSpecies(c, ctx.GetString(userIDKey), id, kind)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, views)
}

func (h Handler) museumBugs(c context.Context, ctx *app.RequestContext) {
	h.museumCollection(c, ctx, catalog.KindBug)
}

func (h Handler) museumFish(c context.Context, ctx *app.RequestContext) {
	h.museumCollection(c, ctx, catalog.KindFish)
}

func (h Handler) museumCollection(c context.Context, ctx *app.RequestContext, kind catalog.SpeciesKind) {
	id, err := pathID(ctx)
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	col, err := h.MuseumUC.Collection(c, ctx.GetString(userIDKey), id, kind)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, col)
}

func (h Handler) listInventory(c context.Context, ctx *app.RequestContext) {
	resp, err := h.InventoryUC.List(c, ctx.GetString(userIDKey))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listOwnedFurniture(c context.Context, ctx *app.RequestContext) {
	views, err := h.InventoryUC.ListFurniture(c, ctx.GetString(userIDKey))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, views)
}

// sellItem serves both DELETE /inventory/item/:id and
// DELETE /inventory/furniture/:id; the id may be the composed
// "BUG_123" handle the client uses.
func (h Handler) sellItem(c context.Context, ctx *app.RequestContext) {
	id, err := inventory.ParseItemID(ctx.Param("id"))
	if err != nil {
		writeError(ctx, errMalformedID)
		return
	}
	result, err := h.InventoryUC.Sell(c, ctx.GetString(userIDKey), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, result)
}

func (h Handler) shopFurniture(c context.Context, ctx *app.RequestContext) {
	views, err := h.ShopUC.Furniture(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, views)
}

func (h Handler) purchase(c context.Context, ctx *app.RequestContext) {
	var body shop.PurchaseRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	result, err := h.ShopUC.Purchase(c, ctx.GetString(userIDKey), body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, result)
}
