package ai

import (
	"context"
	"log"

	"github.com/nirbhik/walletgpt/backend/internal/config"
	"github.com/nirbhik/walletgpt/backend/internal/model/chat"
	walletmodel "github.com/nirbhik/walletgpt/backend/internal/model/wallet"
)

// Service generates wallet explanations through the completion provider. It
// is stateless and reentrant: every request carries its own wallet facts and
// history, so concurrent sessions share nothing.
type Service struct {
	client *CompletionClient
}

// NewService builds the explain service from the resolved LLM configuration.
func NewService(cfg config.LLMConfig) *Service {
	return &Service{
		client: NewCompletionClient(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Temperature),
	}
}

// Explain runs one completion for the supplied wallet snapshot and history.
// When the provider answers without extractable content the fixed fallback
// reply is substituted rather than an error.
func (s *Service) Explain(ctx context.Context, snapshot walletmodel.Snapshot, history []chat.Turn) (string, error) {
	reply, err := s.client.Complete(ctx, composeMessages(snapshot, history))
	if err != nil {
		return "", err
	}
	if reply == "" {
		return FallbackReply, nil
	}

	log.Printf("[ai] generated reply for address=%s length=%d", snapshot.Address, len(reply))
	return reply, nil
}

// composeMessages orders the conversation for the model: the persona
// preamble, the wallet facts, then the caller-supplied history mapped
// role-for-role with no transformation.
func composeMessages(snapshot walletmodel.Snapshot, history []chat.Turn) []chatMessage {
	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages,
		chatMessage{Role: "system", Content: systemPrompt},
		chatMessage{Role: "system", Content: walletContext(snapshot.Address, snapshot.BalanceEth)},
	)
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: string(turn.Role), Content: turn.Content})
	}
	return messages
}
