package models

import (
	"encoding/json"
	"fmt"
)

// RawShopBalance пара [название магазина, баланс] из ответа сервера.
// Оба элемента могут быть null, отсутствующий или null баланс считается нулевым.
type RawShopBalance struct {
	ShopName *string
	Balance  int64
}

func (b *RawShopBalance) UnmarshalJSON(data []byte) error {
	const op = "models.RawShopBalance.UnmarshalJSON"
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(pair) > 2 {
		return fmt.Errorf("%s: expected [name, balance], got %d elements", op, len(pair))
	}

	*b = RawShopBalance{}
	if len(pair) > 0 {
		if err := json.Unmarshal(pair[0], &b.ShopName); err != nil {
			return fmt.Errorf("%s: shop name: %w", op, err)
		}
	}
	if len(pair) > 1 {
		var balance *int64
		if err := json.Unmarshal(pair[1], &balance); err != nil {
			return fmt.Errorf("%s: balance: %w", op, err)
		}
		if balance != nil {
			b.Balance = *balance
		}
	}
	return nil
}

func (b RawShopBalance) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{b.ShopName, b.Balance})
}

// BalancesResponse тело ответа GET /user/balance.
type BalancesResponse struct {
	Shops []RawShopBalance `json:"shops"`
}

// ShopBalance баланс магазина после нормализации.
type ShopBalance struct {
	ShopName *string `json:"shop_name"`
	Balance  Amount  `json:"balance"`
}
