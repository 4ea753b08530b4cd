// Package dto defines the JSON wire shapes of the HTTP API. Amounts travel
// as decimal strings so uint64 token quantities survive JSON number
// handling in any client.
package dto

// CreatePoolRequest is the body of POST /v1/pools.
type CreatePoolRequest struct {
	AssetA string `json:"asset_a"`
	AssetB string `json:"asset_b"`
	FeeBps uint64 `json:"fee_bps"`
}

// CreatePoolResponse reports the canonical key of the new pool.
type CreatePoolResponse struct {
	PoolKey string `json:"pool_key"`
	AssetA  string `json:"asset_a"`
	AssetB  string `json:"asset_b"`
	FeeBps  uint64 `json:"fee_bps"`
}

// DepositRequest is the body of POST /v1/deposit.
type DepositRequest struct {
	PoolKey    string `json:"pool_key"`
	Depositor  string `json:"depositor"`
	RequestedA string `json:"requested_a"`
	RequestedB string `json:"requested_b"`
}

// DepositResponse reports the accepted amounts and minted claims.
type DepositResponse struct {
	AmountA      string `json:"amount_a"`
	AmountB      string `json:"amount_b"`
	MintedClaims string `json:"minted_claims"`
	ReserveA     string `json:"reserve_a"`
	ReserveB     string `json:"reserve_b"`
	Supply       string `json:"liquidity_supply"`
}

// WithdrawRequest is the body of POST /v1/withdraw.
type WithdrawRequest struct {
	PoolKey    string `json:"pool_key"`
	Withdrawer string `json:"withdrawer"`
	ClaimUnits string `json:"claim_units"`
}

// WithdrawResponse reports the redeemed amounts.
type WithdrawResponse struct {
	AmountA     string `json:"amount_a"`
	AmountB     string `json:"amount_b"`
	ClaimsBurnt string `json:"claims_burnt"`
	ReserveA    string `json:"reserve_a"`
	ReserveB    string `json:"reserve_b"`
	Supply      string `json:"liquidity_supply"`
}

// SwapRequest is the body of POST /v1/swap.
type SwapRequest struct {
	PoolKey         string `json:"pool_key"`
	Trader          string `json:"trader"`
	InputIsA        bool   `json:"input_is_a"`
	InputAmount     string `json:"input_amount"`
	MinOutputAmount string `json:"min_output_amount"`
}

// SwapResponse reports an executed swap or a quote.
type SwapResponse struct {
	InputAmount  string `json:"input_amount"`
	OutputAmount string `json:"output_amount"`
	FeeAmount    string `json:"fee_amount"`
}

// FaucetRequest is the body of POST /v1/faucet (dev servers only).
type FaucetRequest struct {
	Asset   string `json:"asset"`
	Account string `json:"account"`
	Amount  string `json:"amount"`
}
