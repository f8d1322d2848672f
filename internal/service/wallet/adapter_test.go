package wallet

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	accounts    []common.Address
	accountsErr error
	balance     *big.Int
	balanceErr  error
	balanceFor  common.Address
}

func (f *fakeProvider) RequestAccounts(context.Context) ([]common.Address, error) {
	if f.accountsErr != nil {
		return nil, f.accountsErr
	}
	return f.accounts, nil
}

func (f *fakeProvider) BalanceAt(_ context.Context, account common.Address) (*big.Int, error) {
	f.balanceFor = account
	if f.balanceErr != nil {
		return nil, f.balanceErr
	}
	return f.balance, nil
}

func TestConnectBuildsSnapshot(t *testing.T) {
	account := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)

	provider := &fakeProvider{accounts: []common.Address{account}, balance: wei}
	snapshot, err := NewAdapter(provider).Connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, account.Hex(), snapshot.Address)
	assert.Equal(t, "1.5", snapshot.BalanceEth)
	assert.True(t, snapshot.Valid())
	assert.Equal(t, account, provider.balanceFor)
}

func TestConnectUsesFirstAccount(t *testing.T) {
	first := common.HexToAddress("0x0000000000000000000000000000000000000001")
	second := common.HexToAddress("0x0000000000000000000000000000000000000002")

	provider := &fakeProvider{accounts: []common.Address{first, second}, balance: big.NewInt(0)}
	snapshot, err := NewAdapter(provider).Connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Hex(), snapshot.Address)
	assert.Equal(t, "0", snapshot.BalanceEth)
}

func TestConnectSmallestUnitConversion(t *testing.T) {
	account := common.HexToAddress("0x0000000000000000000000000000000000000003")
	provider := &fakeProvider{accounts: []common.Address{account}, balance: big.NewInt(1)}

	snapshot, err := NewAdapter(provider).Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.000000000000000001", snapshot.BalanceEth)
}

func TestConnectNoAccounts(t *testing.T) {
	provider := &fakeProvider{}
	_, err := NewAdapter(provider).Connect(context.Background())
	require.ErrorIs(t, err, ErrNoAccounts)
}

func TestConnectUserRejected(t *testing.T) {
	provider := &fakeProvider{
		accountsErr: errors.Wrap(ErrUserRejected, "user denied the request"),
	}
	_, err := NewAdapter(provider).Connect(context.Background())
	require.ErrorIs(t, err, ErrUserRejected)
}

func TestConnectBalanceReadFails(t *testing.T) {
	account := common.HexToAddress("0x0000000000000000000000000000000000000004")
	provider := &fakeProvider{
		accounts:   []common.Address{account},
		balanceErr: errors.New("provider unavailable"),
	}
	_, err := NewAdapter(provider).Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestConnectNilProvider(t *testing.T) {
	_, err := NewAdapter(nil).Connect(context.Background())
	require.ErrorIs(t, err, ErrNoProvider)
}
