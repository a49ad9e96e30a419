package register

import (
	"context"
	"errors"
	"strings"

	"heavenearth/internal/app/ports"
	"heavenearth/internal/domain/cultivation"
)

var ErrInvalidRequest = errors.New("invalid register request")

type Request struct {
	PlayerID string
	Name     string
}

type Response struct {
	Player cultivation.Player
}

// UseCase registers a new cultivator exactly once. A duplicate id is
// rejected with ports.ErrAlreadyRegistered and the original record is left
// untouched.
type UseCase struct {
	Players ports.PlayerRepository
	Clock   ports.Clock
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	id := strings.TrimSpace(req.PlayerID)
	if id == "" {
		return Response{}, ErrInvalidRequest
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = id
	}

	player := cultivation.NewPlayer(id, name, u.Clock.Now().UTC())
	if err := u.Players.Create(ctx, player); err != nil {
		return Response{}, err
	}
	return Response{Player: player}, nil
}
