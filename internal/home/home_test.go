package home

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/tokenstore"
)

type stubResponse struct {
	body string
	err  error
}

// stubAPI отвечает заранее заданными телами и запоминает вызовы.
type stubAPI struct {
	responses map[string]stubResponse
	calls     []string
	tokens    []string
}

func (s *stubAPI) Do(_ context.Context, path string, opts gateway.Options, out any) error {
	s.calls = append(s.calls, path)
	s.tokens = append(s.tokens, opts.Token)
	resp, ok := s.responses[path]
	if !ok {
		return &gateway.HTTPError{Status: http.StatusNotFound}
	}
	if resp.err != nil {
		return resp.err
	}
	if err := json.Unmarshal([]byte(resp.body), out); err != nil {
		return &gateway.ParseError{Err: err}
	}
	return nil
}

const (
	profileBody      = `{"email":"jane@example.com","user_name":"jane","date_of_birth":"1990-05-17","gender":"female","nationality":"Canadian"}`
	transactionsBody = `{"transactions":[{"tid":"t-1","shop_name":"Coffee Corner","performed_at":"2024-03-05T14:30:00Z","total_cost":250,"points_allocated":100},{"tid":"t-2","shop_name":null,"performed_at":"2024-03-06 09:00:00","total_cost":1999,"points_allocated":20}]}`
	balancesBody     = `{"shops":[["Coffee Corner",500],[null,null]]}`
)

func happyResponses() map[string]stubResponse {
	return map[string]stubResponse{
		PathProfile:      {body: profileBody},
		PathTransactions: {body: transactionsBody},
		PathBalance:      {body: balancesBody},
	}
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newBuilder(api API, token string) *Builder {
	store := tokenstore.NewMemory()
	if token != "" {
		store.Save(token)
	}
	return NewBuilder(newNoopLogger(), api, store)
}

func TestBuilder_Load_Success(t *testing.T) {
	api := &stubAPI{responses: happyResponses()}
	b := newBuilder(api, "tok")

	assert.Equal(t, StateIdle, b.State())
	assert.True(t, b.Snapshot().Loading)

	vm := b.Load(context.Background())

	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, []string{PathProfile, PathTransactions, PathBalance}, api.calls)
	assert.Equal(t, []string{"tok", "tok", "tok"}, api.tokens)

	assert.False(t, vm.Loading)
	assert.Nil(t, vm.Error)
	require.NotNil(t, vm.Profile)
	assert.Equal(t, "jane", vm.Profile.UserName)

	require.Len(t, vm.Transactions, 2)
	assert.Equal(t, "2.50", vm.Transactions[0].TotalCost.String())
	assert.Equal(t, "1.00", vm.Transactions[0].PointsAllocated.String())
	assert.Equal(t, "19.99", vm.Transactions[1].TotalCost.String())
	assert.Nil(t, vm.Transactions[1].ShopName)
	assert.True(t, time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC).Equal(vm.Transactions[1].PerformedAt.Time))

	require.Len(t, vm.Shops, 2)
	assert.Equal(t, "Coffee Corner", *vm.Shops[0].ShopName)
	assert.Equal(t, "5.00", vm.Shops[0].Balance.String())
	assert.Nil(t, vm.Shops[1].ShopName)
	assert.Equal(t, "0.00", vm.Shops[1].Balance.String())
}

func TestBuilder_Load_ShortCircuits(t *testing.T) {
	tests := []struct {
		name      string
		failPath  string
		err       error
		body      string
		wantCalls []string
		wantMsg   string
	}{
		{
			name:      "profile body is null",
			failPath:  PathProfile,
			body:      `null`,
			wantCalls: []string{PathProfile},
			wantMsg:   MsgProfileFailed,
		},
		{
			name:      "profile fails",
			failPath:  PathProfile,
			err:       &gateway.HTTPError{Status: http.StatusUnauthorized},
			wantCalls: []string{PathProfile},
			wantMsg:   MsgProfileFailed,
		},
		{
			name:      "transactions fail after profile succeeds",
			failPath:  PathTransactions,
			err:       &gateway.HTTPError{Status: http.StatusInternalServerError},
			wantCalls: []string{PathProfile, PathTransactions},
			wantMsg:   MsgTransactionsFailed,
		},
		{
			name:      "balances body is malformed",
			failPath:  PathBalance,
			err:       &gateway.ParseError{Err: io.ErrUnexpectedEOF},
			wantCalls: []string{PathProfile, PathTransactions, PathBalance},
			wantMsg:   MsgBalancesFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := happyResponses()
			responses[tt.failPath] = stubResponse{body: tt.body, err: tt.err}
			api := &stubAPI{responses: responses}
			b := newBuilder(api, "tok")

			vm := b.Load(context.Background())

			assert.Equal(t, StateFailed, b.State())
			assert.Equal(t, tt.wantCalls, api.calls)
			assert.True(t, vm.Failed())
			assert.Nil(t, vm.Profile)
			assert.False(t, vm.Loading)
			require.NotNil(t, vm.Error)
			assert.Equal(t, tt.wantMsg, *vm.Error)
			assert.Empty(t, vm.Transactions)
			assert.Empty(t, vm.Shops)
		})
	}
}

func TestBuilder_Load_LenientTransactionTimes(t *testing.T) {
	responses := happyResponses()
	responses[PathTransactions] = stubResponse{body: `{"transactions":[
		{"tid":"t-1","shop_name":"A","performed_at":null,"total_cost":100,"points_allocated":10},
		{"tid":"t-2","shop_name":"A","performed_at":"Tue, 05 Mar 2024 14:30:00 GMT","total_cost":100,"points_allocated":10},
		{"tid":"t-3","shop_name":"A","performed_at":"2024-03-05T14:30:00+0000","total_cost":100,"points_allocated":10},
		{"tid":"t-4","shop_name":"A","performed_at":1709649000,"total_cost":100,"points_allocated":10},
		{"tid":"t-5","shop_name":"A","performed_at":"last tuesday","total_cost":100,"points_allocated":10}
	]}`}
	api := &stubAPI{responses: responses}
	b := newBuilder(api, "tok")

	vm := b.Load(context.Background())

	assert.Equal(t, StateReady, b.State())
	require.NotNil(t, vm.Profile)
	assert.Nil(t, vm.Error)
	require.Len(t, vm.Transactions, 5)

	want := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.True(t, vm.Transactions[0].PerformedAt.IsZero())
	for _, tx := range vm.Transactions[1:4] {
		assert.True(t, want.Equal(tx.PerformedAt.Time), tx.TID)
	}
	assert.Equal(t, "last tuesday", vm.Transactions[4].PerformedAt.Raw)
}

func TestBuilder_Load_EmptyListsAreNotFailure(t *testing.T) {
	api := &stubAPI{responses: map[string]stubResponse{
		PathProfile:      {body: profileBody},
		PathTransactions: {body: `{"transactions":[]}`},
		PathBalance:      {body: `{}`},
	}}

	vm := newBuilder(api, "tok").Load(context.Background())

	assert.False(t, vm.Failed())
	assert.Nil(t, vm.Error)
	require.NotNil(t, vm.Profile)
	assert.NotNil(t, vm.Transactions)
	assert.Empty(t, vm.Transactions)
	assert.NotNil(t, vm.Shops)
	assert.Empty(t, vm.Shops)

	data, err := json.Marshal(vm)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"shops":[]`)
}

func TestBuilder_Load_RunsOnce(t *testing.T) {
	api := &stubAPI{responses: happyResponses()}
	b := newBuilder(api, "tok")

	first := b.Load(context.Background())
	second := b.Load(context.Background())

	assert.Len(t, api.calls, 3)
	assert.Equal(t, first, second)
}

func TestBuilder_Load_WithoutToken(t *testing.T) {
	api := &stubAPI{responses: map[string]stubResponse{
		PathProfile: {err: &gateway.HTTPError{Status: http.StatusUnauthorized}},
	}}

	vm := newBuilder(api, "").Load(context.Background())

	assert.Equal(t, []string{""}, api.tokens)
	require.NotNil(t, vm.Error)
	assert.Equal(t, MsgProfileFailed, *vm.Error)
}

func TestNormalize_IsPure(t *testing.T) {
	shop := "Coffee Corner"
	raw := Raw{
		Profile: models.UserProfile{Email: "jane@example.com"},
		Transactions: []models.RawTransaction{
			{TID: "t-1", ShopName: &shop, TotalCost: 250, PointsAllocated: 100},
		},
		Shops: []models.RawShopBalance{{ShopName: &shop, Balance: 500}},
	}

	first := Normalize(raw)
	second := Normalize(raw)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(250), raw.Transactions[0].TotalCost)
	assert.Equal(t, int64(500), raw.Shops[0].Balance)
	assert.Equal(t, "2.50", first.Transactions[0].TotalCost.String())
	assert.Equal(t, "1.00", first.Transactions[0].PointsAllocated.String())
	assert.Equal(t, "5.00", first.Shops[0].Balance.String())

	first.Profile.Email = "changed"
	assert.Equal(t, "jane@example.com", raw.Profile.Email)
}

func TestNormalize_NilLists(t *testing.T) {
	vm := Normalize(Raw{})

	assert.NotNil(t, vm.Transactions)
	assert.NotNil(t, vm.Shops)
	assert.NotNil(t, vm.Profile)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "state(9)", State(9).String())
}
