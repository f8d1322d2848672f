package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// userRejectedCode is the EIP-1193 error code providers return when the user
// denies the account-access prompt.
const userRejectedCode = 4001

// RPCProvider implements Provider over an Ethereum JSON-RPC connection, for
// providers that expose the account-permission flow over RPC (MetaMask-style
// bridges, local signing nodes).
type RPCProvider struct {
	rpc *rpc.Client
	eth *ethclient.Client
}

// DialProvider connects to the wallet provider at rawurl. An empty URL or an
// unreachable endpoint both count as the provider being absent.
func DialProvider(ctx context.Context, rawurl string) (*RPCProvider, error) {
	if rawurl == "" {
		return nil, ErrNoProvider
	}

	client, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, errors.Wrapf(ErrNoProvider, "dial %s: %v", rawurl, err)
	}

	return &RPCProvider{rpc: client, eth: ethclient.NewClient(client)}, nil
}

// RequestAccounts asks the provider for account access. The call suspends
// until the provider's own UI resolves the permission prompt.
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedCode {
			return nil, errors.Wrap(ErrUserRejected, rpcErr.Error())
		}
		return nil, errors.Wrap(err, "request accounts")
	}
	return accounts, nil
}

// BalanceAt reads the latest native-currency balance for account, in wei, on
// whatever network the provider is currently configured for.
func (p *RPCProvider) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return p.eth.BalanceAt(ctx, account, nil)
}

// Close releases the underlying RPC connection.
func (p *RPCProvider) Close() {
	p.rpc.Close()
}
