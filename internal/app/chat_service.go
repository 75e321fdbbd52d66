package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"resume-analyzer/internal/ai"
	"resume-analyzer/internal/model"
	"resume-analyzer/internal/session"
)

// LLMClient is the slice of the provider client the chat flow needs.
type LLMClient interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage) (string, error)
}

// ExchangePublisher hands finished exchanges to the audit pipeline.
type ExchangePublisher interface {
	Publish(ctx context.Context, exchange model.ChatExchange) error
}

type ChatService struct {
	store      session.Store
	classifier *Classifier
	builder    *ContextBuilder
	llm        LLMClient
	llmCfg     ai.ChatConfig
	publisher  ExchangePublisher
	logger     *zap.Logger
}

type ChatInput struct {
	SessionID string
	Message   string
}

type ChatResult struct {
	Response string   `json:"response"`
	Category Category `json:"category"`
}

func NewChatService(
	store session.Store,
	classifier *Classifier,
	builder *ContextBuilder,
	llm LLMClient,
	llmCfg ai.ChatConfig,
	publisher ExchangePublisher,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		store:      store,
		classifier: classifier,
		builder:    builder,
		llm:        llm,
		llmCfg:     llmCfg,
		publisher:  publisher,
		logger:     logger,
	}
}

// Ask classifies the question, assembles the document context, and forwards
// both to the provider. It never calls the provider without a Ready session.
func (s *ChatService) Ask(ctx context.Context, input ChatInput) (*ChatResult, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if input.SessionID == "" {
		return nil, ErrNoResumes
	}

	sess, err := s.store.Get(ctx, input.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrNoResumes
	}
	if err != nil {
		return nil, err
	}
	if !sess.Ready() {
		return nil, ErrNoResumes
	}

	category := s.classifier.Classify(message)
	docContext := s.builder.Build(sess.Documents)
	if docContext == "" {
		return nil, ErrNoResumes
	}

	messages := []ai.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(category, message, docContext)},
	}
	answer, err := s.llm.Complete(ctx, s.llmCfg, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = "The model returned an empty response."
	}

	if s.publisher != nil {
		exchange := model.ChatExchange{
			SessionID:    sess.ID,
			Question:     message,
			Category:     string(category),
			ContextChars: len([]rune(docContext)),
			Response:     answer,
			CreatedAt:    time.Now(),
		}
		if err := s.publisher.Publish(ctx, exchange); err != nil {
			s.logger.Warn("publish chat exchange failed", zap.String("session_id", sess.ID), zap.Error(err))
		}
	}

	s.logger.Info("chat answered",
		zap.String("session_id", sess.ID),
		zap.String("category", string(category)),
		zap.Int("context_chars", len([]rune(docContext))),
	)
	return &ChatResult{Response: answer, Category: category}, nil
}
