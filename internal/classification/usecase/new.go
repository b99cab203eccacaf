package usecase

import (
	"insight-srv/internal/classification"
)

type implUseCase struct{}

func New() classification.UseCase {
	return &implUseCase{}
}
