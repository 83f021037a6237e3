package usecase

import (
	"portfolio-chatbot/internal/chatbot/store"
	"portfolio-chatbot/pkg/groq"
	pkgLog "portfolio-chatbot/pkg/log"
)

// implUseCase is the private implementation of chatbot.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	store *store.Store
	llm   groq.IGroq // nil when no credential is configured
}

// New creates a new chatbot UseCase implementation.
func New(l pkgLog.Logger, st *store.Store, llm groq.IGroq) *implUseCase {
	return &implUseCase{
		l:     l,
		store: st,
		llm:   llm,
	}
}

// Configured reports whether a model client is available.
func (uc *implUseCase) Configured() bool {
	return uc.llm != nil
}
