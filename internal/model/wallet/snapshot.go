package wallet

// Snapshot is the read-only view of a connected wallet: the active account
// address and its native-currency balance as a decimal string in ETH.
// A snapshot is captured once on connect and replaced wholesale on reconnect.
type Snapshot struct {
	Address    string `json:"address"`
	BalanceEth string `json:"balanceEth"`
}

// Valid reports whether both wallet facts are present.
func (s Snapshot) Valid() bool {
	return s.Address != "" && s.BalanceEth != ""
}
