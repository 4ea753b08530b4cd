// Package validate parses and validates HTTP requests into service-layer
// records. Every rejection happens here, before any business logic runs.
package validate

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	servicedto "github.com/dmarenin/amm-pool-service/internal/service/dto"
	"github.com/dmarenin/amm-pool-service/internal/transport/http/dto"
)

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrap(err, "bad request body")
	}
	return nil
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("bad %s address", field)
	}
	a := common.HexToAddress(s)
	if a == (common.Address{}) {
		return common.Address{}, errors.Errorf("zero %s address", field)
	}
	return a, nil
}

func parsePoolKey(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, errors.New("bad pool_key")
	}
	return common.BytesToHash(b), nil
}

func parseAmount(field, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("bad %s", field)
	}
	return v, nil
}

// CreatePoolRequest parses POST /v1/pools.
func CreatePoolRequest(r *http.Request) (*servicedto.CreatePoolRequest, error) {
	var body dto.CreatePoolRequest
	if err := decodeBody(r, &body); err != nil {
		return nil, err
	}
	assetA, err := parseAddress("asset_a", body.AssetA)
	if err != nil {
		return nil, err
	}
	assetB, err := parseAddress("asset_b", body.AssetB)
	if err != nil {
		return nil, err
	}
	return &servicedto.CreatePoolRequest{AssetA: assetA, AssetB: assetB, FeeBps: body.FeeBps}, nil
}

// DepositRequest parses POST /v1/deposit.
func DepositRequest(r *http.Request) (*servicedto.DepositRequest, error) {
	var body dto.DepositRequest
	if err := decodeBody(r, &body); err != nil {
		return nil, err
	}
	key, err := parsePoolKey(body.PoolKey)
	if err != nil {
		return nil, err
	}
	depositor, err := parseAddress("depositor", body.Depositor)
	if err != nil {
		return nil, err
	}
	requestedA, err := parseAmount("requested_a", body.RequestedA)
	if err != nil {
		return nil, err
	}
	requestedB, err := parseAmount("requested_b", body.RequestedB)
	if err != nil {
		return nil, err
	}
	return &servicedto.DepositRequest{
		PoolKey:    key,
		Depositor:  depositor,
		RequestedA: requestedA,
		RequestedB: requestedB,
	}, nil
}

// WithdrawRequest parses POST /v1/withdraw.
func WithdrawRequest(r *http.Request) (*servicedto.WithdrawRequest, error) {
	var body dto.WithdrawRequest
	if err := decodeBody(r, &body); err != nil {
		return nil, err
	}
	key, err := parsePoolKey(body.PoolKey)
	if err != nil {
		return nil, err
	}
	withdrawer, err := parseAddress("withdrawer", body.Withdrawer)
	if err != nil {
		return nil, err
	}
	claimUnits, err := parseAmount("claim_units", body.ClaimUnits)
	if err != nil {
		return nil, err
	}
	return &servicedto.WithdrawRequest{PoolKey: key, Withdrawer: withdrawer, ClaimUnits: claimUnits}, nil
}

// SwapRequest parses POST /v1/swap.
func SwapRequest(r *http.Request) (*servicedto.SwapRequest, error) {
	var body dto.SwapRequest
	if err := decodeBody(r, &body); err != nil {
		return nil, err
	}
	key, err := parsePoolKey(body.PoolKey)
	if err != nil {
		return nil, err
	}
	trader, err := parseAddress("trader", body.Trader)
	if err != nil {
		return nil, err
	}
	inputAmount, err := parseAmount("input_amount", body.InputAmount)
	if err != nil {
		return nil, err
	}
	minOutput := uint64(0)
	if body.MinOutputAmount != "" {
		if minOutput, err = parseAmount("min_output_amount", body.MinOutputAmount); err != nil {
			return nil, err
		}
	}
	return &servicedto.SwapRequest{
		PoolKey:         key,
		Trader:          trader,
		InputIsA:        body.InputIsA,
		InputAmount:     inputAmount,
		MinOutputAmount: minOutput,
	}, nil
}

// QuoteRequest parses GET /v1/quote query parameters.
func QuoteRequest(r *http.Request) (*servicedto.QuoteRequest, error) {
	q := r.URL.Query()
	key, err := parsePoolKey(q.Get("pool_key"))
	if err != nil {
		return nil, err
	}
	inputAmount, err := parseAmount("input_amount", q.Get("input_amount"))
	if err != nil {
		return nil, err
	}
	inputIsA := true
	if s := q.Get("input_is_a"); s != "" {
		if inputIsA, err = strconv.ParseBool(s); err != nil {
			return nil, errors.New("bad input_is_a")
		}
	}
	return &servicedto.QuoteRequest{PoolKey: key, InputIsA: inputIsA, InputAmount: inputAmount}, nil
}

// FaucetRequest parses POST /v1/faucet.
func FaucetRequest(r *http.Request) (asset, account common.Address, amount uint64, err error) {
	var body dto.FaucetRequest
	if err = decodeBody(r, &body); err != nil {
		return
	}
	if asset, err = parseAddress("asset", body.Asset); err != nil {
		return
	}
	if account, err = parseAddress("account", body.Account); err != nil {
		return
	}
	amount, err = parseAmount("amount", body.Amount)
	return
}
