package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
)

// NewOpenAIClient returns nil when no API key is configured; the assistant
// services treat a nil client as "service not configured".
func NewOpenAIClient(cfg config.AssistantConfig) *openai.Client {
	if cfg.APIKey == "" {
		return nil
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// withCallTimeout bounds one model call. A zero timeout leaves the caller's
// context untouched.
func withCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

const healthScorePrompt = `You are an AI assistant that determines the health score of a piece of equipment.

Consider the breakdown frequency (number of breakdowns) and the number of overdue maintenance tasks.

- If the breakdown frequency is low (0-1) and there are no overdue tasks, the health score is 'Good'.
- If the breakdown frequency is moderate (2-3) or there are some overdue tasks (1-2), the health score is 'Warning'.
- If the breakdown frequency is high (4+) or there are many overdue tasks (3+), the health score is 'Critical'.

Answer with exactly one word: Good, Warning, or Critical.

Breakdown Frequency: %d
Overdue Tasks: %d

Health Score:`

// LLMHealthScorer asks the model for a score and falls back to the
// deterministic rules whenever the model is unavailable or answers outside
// the allowed domain.
type LLMHealthScorer struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	fallback HealthScorer
	logger   *zap.Logger
}

func NewLLMHealthScorer(client *openai.Client, model string, timeout time.Duration, fallback HealthScorer, logger *zap.Logger) *LLMHealthScorer {
	return &LLMHealthScorer{client: client, model: model, timeout: timeout, fallback: fallback, logger: logger}
}

func (s *LLMHealthScorer) Score(ctx context.Context, breakdownFrequency, overdueTasks int) (entities.HealthScore, error) {
	if s.client == nil {
		return s.fallback.Score(ctx, breakdownFrequency, overdueTasks)
	}

	callCtx, cancel := withCallTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(healthScorePrompt, breakdownFrequency, overdueTasks),
			},
		},
		Temperature: 0,
		MaxTokens:   8,
	})
	if err != nil {
		s.logger.Warn("health scorer: model call failed, using rule-based fallback", zap.Error(err))
		return s.fallback.Score(ctx, breakdownFrequency, overdueTasks)
	}
	if len(resp.Choices) == 0 {
		return s.fallback.Score(ctx, breakdownFrequency, overdueTasks)
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	for _, score := range []entities.HealthScore{entities.HealthGood, entities.HealthWarning, entities.HealthCritical} {
		if strings.EqualFold(answer, string(score)) {
			return score, nil
		}
	}

	s.logger.Warn("health scorer: model answered outside the allowed domain", zap.String("answer", answer))
	return s.fallback.Score(ctx, breakdownFrequency, overdueTasks)
}

const supportSystemPrompt = `You are an expert AI assistant for an application called "GearGuard", a smart maintenance and asset management system. Your role is to provide helpful, concise, and friendly support to users.

Application Features:
- Dashboard: Overview of open requests, overdue tasks, teams, and equipment health.
- Equipment: A list of all equipment, with details on location, status, and maintenance history. Managers can add new equipment.
- Requests: A Kanban board showing maintenance requests (new, in progress, repaired, scrap).
- Calendar: A monthly view of scheduled preventive maintenance tasks. Managers can schedule new tasks.
- Roles: The app has three user roles: Manager, Technician, and Employee, each with different permissions.

Your Task:
- Answer user questions clearly and accurately based on the features above.
- If a user asks something you don't know, politely say you don't have that information.
- Keep your answers brief and to the point.`

type SupportServiceInterface interface {
	Answer(ctx context.Context, query string) (string, error)
}

// SupportService answers free-text questions about the application. It holds
// no state and has no side effects; any backend failure surfaces as
// ErrServiceUnavailable.
type SupportService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewSupportService(client *openai.Client, model string, timeout time.Duration, logger *zap.Logger) SupportServiceInterface {
	return &SupportService{client: client, model: model, timeout: timeout, logger: logger}
}

func (s *SupportService) Answer(ctx context.Context, query string) (string, error) {
	if s.client == nil {
		return "", apperrors.ErrServiceUnavailable
	}

	callCtx, cancel := withCallTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: supportSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Temperature: 0.5,
	})
	if err != nil {
		s.logger.Error("support assistant: model call failed", zap.Error(err))
		return "", apperrors.ErrServiceUnavailable
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.ErrServiceUnavailable
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
