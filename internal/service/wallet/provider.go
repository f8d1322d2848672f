package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	// ErrNoProvider means no wallet provider capability is reachable.
	ErrNoProvider = errors.New("wallet provider not found")
	// ErrUserRejected means the user declined the account-access prompt.
	ErrUserRejected = errors.New("wallet connection rejected by user")
	// ErrNoAccounts means the provider approved access but exposed no account.
	ErrNoAccounts = errors.New("wallet provider returned no accounts")
)

// Provider is the wallet capability handed to the session adapter. It is
// always injected explicitly so tests can substitute a fake; the adapter
// never reaches for an ambient provider itself.
//
// RequestAccounts may block indefinitely while the provider waits for the
// user to approve or reject access in its own UI.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}
