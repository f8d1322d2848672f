package wallet

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	walletmodel "github.com/nirbhik/walletgpt/backend/internal/model/wallet"
)

// weiExponent converts wei to ETH: 1 ETH = 10^18 wei.
const weiExponent = -18

// Adapter wraps a wallet provider and resolves the active account into a
// read-only snapshot. It only ever reads; it never requests a signature or
// submits a transaction.
type Adapter struct {
	provider Provider
}

// NewAdapter builds a session adapter over the injected provider.
func NewAdapter(provider Provider) *Adapter {
	return &Adapter{provider: provider}
}

// Connect requests account access, resolves the first approved account, and
// reads its balance. Failures are terminal for this attempt; the caller
// re-invokes Connect to retry. Callers must discard any existing transcript
// after a successful reconnect, since wallet facts embedded in earlier turns
// no longer hold.
func (a *Adapter) Connect(ctx context.Context) (walletmodel.Snapshot, error) {
	if a.provider == nil {
		return walletmodel.Snapshot{}, ErrNoProvider
	}

	accounts, err := a.provider.RequestAccounts(ctx)
	if err != nil {
		return walletmodel.Snapshot{}, err
	}
	if len(accounts) == 0 {
		return walletmodel.Snapshot{}, ErrNoAccounts
	}

	account := accounts[0]
	wei, err := a.provider.BalanceAt(ctx, account)
	if err != nil {
		return walletmodel.Snapshot{}, errors.Wrapf(err, "read balance for %s", account.Hex())
	}

	snapshot := walletmodel.Snapshot{
		Address:    account.Hex(),
		BalanceEth: decimal.NewFromBigInt(wei, weiExponent).String(),
	}
	log.Printf("[wallet] connected address=%s balance=%s ETH", snapshot.Address, snapshot.BalanceEth)
	return snapshot, nil
}
