package health

import (
	"context"

	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/event"
	"github.com/Ukiyograin/YourWeather/internal/domain/model"
)

type healthUseCase struct {
	eventGateway event.HealthGateway
}

func NewHealthUseCase(eventGateway event.HealthGateway) UseCase {
	return &healthUseCase{
		eventGateway: eventGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	eventsHealth := useCase.eventGateway.Health(ctx)

	overallStatus := model.StatusUp
	if eventsHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Events: eventsHealth,
	}
}
