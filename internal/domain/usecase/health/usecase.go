package health

import (
	"context"

	"github.com/Ukiyograin/YourWeather/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}
