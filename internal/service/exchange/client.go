package exchange

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nirbhik/walletgpt/backend/internal/model/chat"
	walletmodel "github.com/nirbhik/walletgpt/backend/internal/model/wallet"
)

// historyWindow bounds how many transcript turns accompany each request so
// token usage stays flat regardless of conversation length.
const historyWindow = 6

var (
	ErrNotConnected = errors.New("wallet not connected")
	ErrEmptyInput   = errors.New("empty user input")
)

// Request carries one explanation exchange to the endpoint.
type Request struct {
	Wallet   walletmodel.Snapshot `json:"wallet"`
	Messages []chat.Turn          `json:"messages"`
}

// Endpoint is the explanation endpoint as seen by the client. Implementations
// must treat every request as independent and stateless.
type Endpoint interface {
	Explain(ctx context.Context, req Request) (string, error)
}

// Client owns the transcript for one wallet session and exchanges turns with
// the explanation endpoint. Transcript updates are two-phase: the user turn is
// appended before the network call resolves, and the assistant turn is
// appended only on success. A failed send leaves the user turn in place.
type Client struct {
	endpoint Endpoint

	mu         sync.RWMutex
	sessionID  string
	wallet     *walletmodel.Snapshot
	transcript chat.Transcript
}

// NewClient builds an exchange client bound to the given endpoint.
func NewClient(endpoint Endpoint) *Client {
	return &Client{
		endpoint:  endpoint,
		sessionID: uuid.NewString(),
	}
}

// Connect installs a fresh wallet snapshot and discards the transcript.
// Wallet facts embedded in earlier turns would be stale for the new account.
func (c *Client) Connect(snapshot walletmodel.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wallet = &snapshot
	c.transcript = nil
}

// Send appends the trimmed user turn, posts the wallet facts plus the most
// recent history window to the endpoint, and appends the returned assistant
// turn. Exactly one request is issued per call; the client does not retry.
func (c *Client) Send(ctx context.Context, userText string) (chat.Turn, error) {
	text := strings.TrimSpace(userText)
	if text == "" {
		return chat.Turn{}, ErrEmptyInput
	}

	c.mu.Lock()
	if c.wallet == nil {
		c.mu.Unlock()
		return chat.Turn{}, ErrNotConnected
	}
	snapshot := *c.wallet
	c.transcript = append(c.transcript, chat.UserTurn(text))
	window := c.transcript.Tail(historyWindow).Clone()
	c.mu.Unlock()

	reply, err := c.endpoint.Explain(ctx, Request{Wallet: snapshot, Messages: window})
	if err != nil {
		return chat.Turn{}, err
	}

	turn := chat.AssistantTurn(reply)
	c.mu.Lock()
	c.transcript = append(c.transcript, turn)
	turns := len(c.transcript)
	c.mu.Unlock()

	log.Printf("[exchange] session=%s exchanged turn, transcript=%d", c.sessionID, turns)
	return turn, nil
}

// SessionID identifies this exchange session in logs.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Wallet returns the current snapshot, if connected.
func (c *Client) Wallet() (walletmodel.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.wallet == nil {
		return walletmodel.Snapshot{}, false
	}
	return *c.wallet, true
}

// Transcript returns a copy of the full turn history.
func (c *Client) Transcript() chat.Transcript {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transcript.Clone()
}
