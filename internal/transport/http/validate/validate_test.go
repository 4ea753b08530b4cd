package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	goodKey  = "0x1111111111111111111111111111111111111111111111111111111111111111"
	goodAddr = "0x00000000000000000000000000000000000000aa"
)

func TestCreatePoolRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/pools", strings.NewReader(
			`{"asset_a":"0x00000000000000000000000000000000000000aa","asset_b":"0x00000000000000000000000000000000000000bb","fee_bps":30}`))
		req, err := CreatePoolRequest(r)
		require.NoError(t, err)
		require.Equal(t, uint64(30), req.FeeBps)
		require.NotEqual(t, req.AssetA, req.AssetB)
	})

	t.Run("bad address", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/pools", strings.NewReader(
			`{"asset_a":"nope","asset_b":"0x00000000000000000000000000000000000000bb","fee_bps":30}`))
		_, err := CreatePoolRequest(r)
		require.Error(t, err)
	})

	t.Run("zero address", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/pools", strings.NewReader(
			`{"asset_a":"0x0000000000000000000000000000000000000000","asset_b":"0x00000000000000000000000000000000000000bb","fee_bps":30}`))
		_, err := CreatePoolRequest(r)
		require.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/pools", strings.NewReader(
			`{"asset_a":"0x00000000000000000000000000000000000000aa","asset_b":"0x00000000000000000000000000000000000000bb","fee":30}`))
		_, err := CreatePoolRequest(r)
		require.Error(t, err)
	})
}

func TestDepositRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/deposit", strings.NewReader(
			`{"pool_key":"`+goodKey+`","depositor":"`+goodAddr+`","requested_a":"1000000","requested_b":"4000000"}`))
		req, err := DepositRequest(r)
		require.NoError(t, err)
		require.Equal(t, uint64(1_000_000), req.RequestedA)
		require.Equal(t, uint64(4_000_000), req.RequestedB)
	})

	t.Run("short pool key", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/deposit", strings.NewReader(
			`{"pool_key":"0x1234","depositor":"`+goodAddr+`","requested_a":"1","requested_b":"1"}`))
		_, err := DepositRequest(r)
		require.Error(t, err)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/deposit", strings.NewReader(
			`{"pool_key":"`+goodKey+`","depositor":"`+goodAddr+`","requested_a":"-5","requested_b":"1"}`))
		_, err := DepositRequest(r)
		require.Error(t, err)
	})

	t.Run("non-numeric amount rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/deposit", strings.NewReader(
			`{"pool_key":"`+goodKey+`","depositor":"`+goodAddr+`","requested_a":"1e6","requested_b":"1"}`))
		_, err := DepositRequest(r)
		require.Error(t, err)
	})
}

func TestSwapRequest(t *testing.T) {
	t.Parallel()

	t.Run("min output optional", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/swap", strings.NewReader(
			`{"pool_key":"`+goodKey+`","trader":"`+goodAddr+`","input_is_a":true,"input_amount":"100000"}`))
		req, err := SwapRequest(r)
		require.NoError(t, err)
		require.Equal(t, uint64(0), req.MinOutputAmount)
		require.True(t, req.InputIsA)
	})

	t.Run("with min output", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/swap", strings.NewReader(
			`{"pool_key":"`+goodKey+`","trader":"`+goodAddr+`","input_is_a":false,"input_amount":"100000","min_output_amount":"90000"}`))
		req, err := SwapRequest(r)
		require.NoError(t, err)
		require.Equal(t, uint64(90_000), req.MinOutputAmount)
		require.False(t, req.InputIsA)
	})
}

func TestQuoteRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/quote?pool_key="+goodKey+"&input_amount=5000&input_is_a=false", nil)
		req, err := QuoteRequest(r)
		require.NoError(t, err)
		require.Equal(t, uint64(5_000), req.InputAmount)
		require.False(t, req.InputIsA)
	})

	t.Run("input side defaults to A", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/quote?pool_key="+goodKey+"&input_amount=5000", nil)
		req, err := QuoteRequest(r)
		require.NoError(t, err)
		require.True(t, req.InputIsA)
	})

	t.Run("missing amount", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/quote?pool_key="+goodKey, nil)
		_, err := QuoteRequest(r)
		require.Error(t, err)
	})
}

func TestWithdrawRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/v1/withdraw", strings.NewReader(
		`{"pool_key":"`+goodKey+`","withdrawer":"`+goodAddr+`","claim_units":"2000000"}`))
	req, err := WithdrawRequest(r)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000), req.ClaimUnits)
}
