package usecase

import (
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l log.Logger
}

// New returns the lexical sentiment scorer. It holds no mutable state.
func New(l log.Logger) sentiment.UseCase {
	return &implUseCase{l: l}
}
