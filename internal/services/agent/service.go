package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	openaiinfra "github.com/coastline-labs/shorecast/internal/infrastructure/openai"
	"github.com/coastline-labs/shorecast/internal/services/agent/models"
	"github.com/coastline-labs/shorecast/internal/services/memory"
	"github.com/coastline-labs/shorecast/internal/services/tools"
	toolmodels "github.com/coastline-labs/shorecast/internal/services/tools/models"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

var (
	// ErrEmptyQuery is returned when the caller supplies no query text
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrInvalidSession is returned when the caller supplies no session id
	ErrInvalidSession = errors.New("session id must not be empty")
)

const (
	// maxToolRounds bounds the model/tool loop for a single turn
	maxToolRounds = 8
	// streamBufferSize is the channel buffer for streaming envelopes
	streamBufferSize = 16
)

// Service is the conversational agent. It drives an OpenAI
// function-calling loop over the registered tools, keeps per-session
// history in the memory service, and reports every turn as an envelope.
type Service struct {
	mu            sync.RWMutex
	openAIService *openaiinfra.Service
	toolService   *tools.Service
	toolExecutor  *tools.ToolExecutor
	memoryService *memory.Service
}

func NewService(
	openAIService *openaiinfra.Service,
	toolService *tools.Service,
	toolExecutor *tools.ToolExecutor,
	memoryService *memory.Service,
) (*Service, error) {
	if openAIService == nil {
		return nil, fmt.Errorf("OpenAI service is required")
	}
	if toolService == nil || toolExecutor == nil {
		return nil, fmt.Errorf("tool service and executor are required")
	}
	if memoryService == nil {
		return nil, fmt.Errorf("memory service is required")
	}

	return &Service{
		openAIService: openAIService,
		toolService:   toolService,
		toolExecutor:  toolExecutor,
		memoryService: memoryService,
	}, nil
}

// Invoke runs one turn to completion and returns its terminal envelope.
// Failures from the model or a tool are carried inside an error-status
// envelope, not as a Go error.
func (s *Service) Invoke(ctx context.Context, query, sessionID string) (*models.Envelope, error) {
	if err := validateInput(query, sessionID); err != nil {
		return nil, err
	}

	env := s.run(ctx, query, sessionID, nil)
	return &env, nil
}

// Stream runs one turn and yields envelopes on the returned channel:
// zero or more working envelopes in generation order, then exactly one
// terminal envelope. The channel is closed after the terminal envelope.
func (s *Service) Stream(ctx context.Context, query, sessionID string) (<-chan models.Envelope, error) {
	if err := validateInput(query, sessionID); err != nil {
		return nil, err
	}

	ch := make(chan models.Envelope, streamBufferSize)

	go func() {
		defer close(ch)

		emit := func(env models.Envelope) {
			// Prefer delivery over cancellation: a consumer still
			// draining a cancelled stream must see the terminal envelope.
			select {
			case ch <- env:
				return
			default:
			}
			select {
			case ch <- env:
			case <-ctx.Done():
			}
		}

		env := s.run(ctx, query, sessionID, emit)
		emit(env)
	}()

	return ch, nil
}

func validateInput(query, sessionID string) error {
	if query == "" {
		return ErrEmptyQuery
	}
	if sessionID == "" {
		return ErrInvalidSession
	}
	return nil
}

// run executes the model/tool loop for one turn and returns the terminal
// envelope. progress, when non-nil, receives working envelopes as the
// turn advances.
func (s *Service) run(ctx context.Context, query, sessionID string, progress func(models.Envelope)) models.Envelope {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notify := func(message string) {
		if progress != nil {
			progress(models.Working(message))
		}
	}

	history, err := s.memoryService.History(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to load session history")
		history = nil
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query,
	})

	notify("Processing the request...")

	client := s.openAIService.GetClient()
	model := s.openAIService.Model()

	var content string
	for round := 0; ; round++ {
		if round >= maxToolRounds {
			log.Error().Str("session_id", sessionID).Msg("Tool loop exceeded round limit")
			return models.Errored("The request could not be completed; too many lookup rounds.")
		}

		if err := ctx.Err(); err != nil {
			return models.Errored("The request was cancelled.")
		}

		req := openai.ChatCompletionRequest{
			Model:    model,
			Messages: messages,
		}
		if defs := s.toolService.GetTools(); len(defs) > 0 {
			req.Tools = defs
		}

		resp, err := client.CreateChatCompletion(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("Chat completion failed")
			return models.Errored("The language model request failed. Please try again.")
		}

		if len(resp.Choices) == 0 {
			return models.Errored("The language model returned no response.")
		}

		message := resp.Choices[0].Message

		if len(message.ToolCalls) > 0 {
			messages = append(messages, message)

			for _, toolCall := range message.ToolCalls {
				notify(progressMessage(toolCall.Function.Name))

				call := toolmodels.ToolCall{
					ID:   toolCall.ID,
					Type: string(toolCall.Type),
				}
				call.Function.Name = toolCall.Function.Name
				call.Function.Arguments = toolCall.Function.Arguments

				result, err := s.toolExecutor.ExecuteToolCall(ctx, call)
				if err != nil {
					log.Error().Err(err).Str("tool", toolCall.Function.Name).Msg("Tool call failed")
					return models.Errored(fmt.Sprintf("A lookup failed while handling the request: %v", err))
				}

				messages = append(messages, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					Content:    result,
					ToolCallID: toolCall.ID,
				})
			}
			continue
		}

		if message.Content != "" {
			content = message.Content
			break
		}

		return models.Errored("The language model returned an unexpected reply.")
	}

	env := s.classify(ctx, client, model, content)

	if env.Status != models.StatusError {
		if err := s.memoryService.Append(ctx, sessionID,
			memory.Message{Role: openai.ChatMessageRoleUser, Content: query},
			memory.Message{Role: openai.ChatMessageRoleAssistant, Content: env.Message},
		); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to persist session history")
		}
	}

	return env
}

// classify maps the final assistant reply onto a terminal envelope using
// a structured-output turn. Classifier failures degrade to a completed
// envelope carrying the raw reply.
func (s *Service) classify(ctx context.Context, client *openai.Client, model, content string) models.Envelope {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "turn_status",
				Schema: json.RawMessage(classifierSchema),
				Strict: true,
			},
		},
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil || len(resp.Choices) == 0 {
		log.Warn().Err(err).Msg("Status classification failed, assuming completed")
		return models.Completed(content)
	}

	var parsed struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		log.Warn().Err(err).Msg("Unparseable classification reply, assuming completed")
		return models.Completed(content)
	}

	message := parsed.Message
	if message == "" {
		message = content
	}

	switch models.Status(parsed.Status) {
	case models.StatusInputRequired:
		return models.InputRequired(message)
	case models.StatusError:
		return models.Errored(message)
	default:
		return models.Completed(message)
	}
}

func progressMessage(toolName string) string {
	switch toolName {
	case "search_beaches":
		return "Searching the beach directory..."
	case "get_forecast":
		return "Checking the forecast..."
	default:
		return "Looking up additional information..."
	}
}
