package profile

import (
	"context"
	"errors"
	"strings"

	"heavenearth/internal/app/ports"
	"heavenearth/internal/domain/cultivation"
)

var ErrInvalidRequest = errors.New("invalid profile request")

// UseCase reads one committed player snapshot and computes the derived
// values (age, remaining lifespan, distance to the next stage, in-game
// date). It never writes.
type UseCase struct {
	Players  ports.PlayerRepository
	Engine   cultivation.Engine
	Calendar cultivation.Calendar
	Clock    ports.Clock
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	id := strings.TrimSpace(req.PlayerID)
	if id == "" {
		return Response{}, ErrInvalidRequest
	}
	player, err := u.Players.GetByID(ctx, id)
	if err != nil {
		return Response{}, err
	}

	now := u.Clock.Now()
	ticks, hasNext := u.Engine.TicksUntilNextStage(player)
	return Response{
		Player:                 player,
		HoursCultivated:        player.HoursCultivated(),
		AgeYears:               cultivation.AgeYears(player, now),
		RemainingLifespanYears: u.Engine.Table.RemainingLifespanYears(player, now),
		RequiredExp:            u.Engine.Table.RequiredExp(player.Realm, player.Stage),
		TicksUntilNextStage:    ticks,
		HoursUntilNextStage:    ticks / cultivation.TicksPerHour,
		AtFinalStage:           !hasNext,
		WorldDate:              u.Calendar.FormatDate(now),
	}, nil
}
