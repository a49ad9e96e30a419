package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"heavenearth/internal/adapter/metrics/inmemory"
	"heavenearth/internal/app/ports"
	"heavenearth/internal/app/profile"
	"heavenearth/internal/app/register"
)

// metricsSnapshotProvider decouples the handler from the concrete recorder.
type metricsSnapshotProvider interface {
	Snapshot() inmemory.Snapshot
}

// Handler exposes the core to external UI layers over JSON. All reads
// return committed snapshots; the tick scheduler remains the sole writer.
type Handler struct {
	RegisterUC register.UseCase
	ProfileUC  profile.UseCase
	Metrics    metricsSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api/player")
	api.POST("/register", h.register)
	api.GET("/:id/profile", h.profile)

	s.GET("/ops/metrics", h.metrics)
}

type registerRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	var body registerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.RegisterUC.Execute(c, register.Request{
		PlayerID: body.PlayerID,
		Name:     body.Name,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp.Player)
}

func (h Handler) profile(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ProfileUC.Execute(c, profile.Request{PlayerID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) metrics(_ context.Context, ctx *app.RequestContext) {
	if h.Metrics == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "metrics_disabled", "metrics recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.Metrics.Snapshot())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, register.ErrInvalidRequest),
		errors.Is(err, profile.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotRegistered):
		writeErrorBody(ctx, consts.StatusNotFound, "not_registered", err.Error())
	case errors.Is(err, ports.ErrAlreadyRegistered):
		writeErrorBody(ctx, consts.StatusConflict, "already_registered", err.Error())
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
