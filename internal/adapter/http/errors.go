package httpadapter

import (
	"errors"

	"villagrove/internal/app/activity"
	"villagrove/internal/app/auth"
	"villagrove/internal/app/inventory"
	"villagrove/internal/app/ports"
	"villagrove/internal/app/shop"
	"villagrove/internal/app/villager"
	"villagrove/internal/domain/village"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// writeError is the single mapping from application errors to HTTP
// responses. Precondition failures are 409s; anything unmapped is a
// 500 with the detail kept out of the body.
func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, errMalformedID):
		writeErrorBody(ctx, consts.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, errValidationFailed):
		writeErrorBody(ctx, consts.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, auth.ErrUsernameTaken):
		writeErrorBody(ctx, consts.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, village.ErrInsufficientEnergy):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_energy", err.Error())
	case errors.Is(err, village.ErrNoSpeciesAvailable):
		writeErrorBody(ctx, consts.StatusConflict, "no_species_available", err.Error())
	case errors.Is(err, village.ErrPlayWhileSick),
		errors.Is(err, village.ErrAlreadyHealthy):
		writeErrorBody(ctx, consts.StatusConflict, "action_blocked", err.Error())
	case errors.Is(err, shop.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, villager.ErrInvalidRequest),
		errors.Is(err, villager.ErrInvalidAnimal),
		errors.Is(err, villager.ErrInvalidTrait),
		errors.Is(err, activity.ErrInvalidRequest),
		errors.Is(err, activity.ErrInvalidHabitat),
		errors.Is(err, inventory.ErrInvalidRequest),
		errors.Is(err, shop.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
