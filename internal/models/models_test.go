package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{minor: 250, want: "2.50"},
		{minor: 100, want: "1.00"},
		{minor: 500, want: "5.00"},
		{minor: 0, want: "0.00"},
		{minor: 1999, want: "19.99"},
		{minor: -75, want: "-0.75"},
		{minor: -5, want: "-0.05"},
		{minor: 9007199254740993, want: "90071992547409.93"},
		{minor: math.MaxInt64, want: "92233720368547758.07"},
		{minor: math.MinInt64, want: "-92233720368547758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			amount := FromMinorUnits(tt.minor)
			assert.Equal(t, tt.want, amount.String())

			data, err := json.Marshal(amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			if tt.minor != math.MinInt64 {
				var decoded Amount
				require.NoError(t, json.Unmarshal(data, &decoded))
				assert.Equal(t, amount, decoded)
			}
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    Amount
		wantErr bool
	}{
		{input: `12.5`, want: FromMinorUnits(1250)},
		{input: `0.05`, want: FromMinorUnits(5)},
		{input: `7`, want: FromMinorUnits(700)},
		{input: `-1.20`, want: FromMinorUnits(-120)},
		{input: `null`, want: Amount{}},
		{input: `1.005`, wantErr: true},
		{input: `"1.00"`, wantErr: true},
		{input: `92233720368547758.08`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Amount
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawShopBalance_UnmarshalJSON(t *testing.T) {
	shop := "Coffee Corner"

	tests := []struct {
		name    string
		input   string
		want    RawShopBalance
		wantErr bool
	}{
		{name: "name and balance", input: `["Coffee Corner", 500]`, want: RawShopBalance{ShopName: &shop, Balance: 500}},
		{name: "null balance", input: `["Coffee Corner", null]`, want: RawShopBalance{ShopName: &shop}},
		{name: "missing balance", input: `["Coffee Corner"]`, want: RawShopBalance{ShopName: &shop}},
		{name: "null name", input: `[null, 120]`, want: RawShopBalance{Balance: 120}},
		{name: "empty pair", input: `[]`, want: RawShopBalance{}},
		{name: "object instead of pair", input: `{"name": "x"}`, wantErr: true},
		{name: "too many elements", input: `["a", 1, 2]`, wantErr: true},
		{name: "string balance", input: `["a", "10"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got RawShopBalance
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBalancesResponse_RoundTrip(t *testing.T) {
	var resp BalancesResponse
	require.NoError(t, json.Unmarshal([]byte(`{"shops": [["A", 500], [null, null]]}`), &resp))
	require.Len(t, resp.Shops, 2)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shops": [["A", 500], [null, 0]]}`, string(data))
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	for _, input := range []string{
		`"2024-03-05T14:30:00Z"`,
		`"2024-03-05T14:30:00"`,
		`"2024-03-05 14:30:00"`,
		`"2024-03-05T14:30:00+0000"`,
		`"2024-03-05T17:30:00+03:00"`,
		`"2024-03-05T14:30:00.000000+00:00"`,
		`"Tue, 05 Mar 2024 14:30:00 GMT"`,
		`"Tue, 05 Mar 2024 15:30:00 +0100"`,
		`1709649000`,
		`1709649000000`,
		`"1709649000"`,
	} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(input), &ts), input)
		assert.True(t, want.Equal(ts.Time), input)
		assert.Empty(t, ts.Raw, input)
	}

	var day Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &day))
	assert.Equal(t, 5, day.Day())
}

func TestTimestamp_LenientInputs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRaw  string
		wantJSON string
	}{
		{name: "null", input: `null`, wantJSON: `null`},
		{name: "unknown format", input: `"yesterday"`, wantRaw: "yesterday", wantJSON: `"yesterday"`},
		{name: "object", input: `{"at": 1}`, wantRaw: `{"at": 1}`, wantJSON: `"{\"at\": 1}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := Timestamp{Time: time.Now()}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, ts.IsZero())
			assert.Equal(t, tt.wantRaw, ts.Raw)
			assert.Equal(t, tt.wantRaw, ts.String())

			data, err := json.Marshal(ts)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
		})
	}
}

func TestRegistrationProfile_UIDOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(RegistrationProfile{Email: "a@b.c"})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	_, ok := payload["uid"]
	assert.False(t, ok)

	data, err = json.Marshal(RegistrationProfile{Email: "a@b.c", UID: "ref-42"})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "ref-42", payload["uid"])
}

func TestHomeViewModel_Failed(t *testing.T) {
	assert.False(t, HomeViewModel{Loading: true}.Failed())
	assert.True(t, HomeViewModel{}.Failed())
	assert.False(t, HomeViewModel{Profile: &UserProfile{}}.Failed())
}
