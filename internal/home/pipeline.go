package home

import (
	"context"
	"errors"
	"net/http"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
)

var errNoProfile = errors.New("response does not contain a profile")

// Failure ошибка шага сборки с сообщением для пользователя.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Raw ответы сервера до нормализации.
type Raw struct {
	Profile      models.UserProfile
	Transactions []models.RawTransaction
	Shops        []models.RawShopBalance
}

// fetch один шаг конвейера: запрос с токеном и разбор ответа в T.
func fetch[T any](ctx context.Context, api API, token, path, failure string) (T, error) {
	var out T
	err := api.Do(ctx, path, gateway.Options{Method: http.MethodGet, Token: token}, &out)
	if err != nil {
		var zero T
		return zero, &Failure{Message: failure, Err: err}
	}
	return out, nil
}

// Collect последовательно выполняет запросы профиля, транзакций и балансов.
// Первая ошибка прерывает оставшиеся шаги.
func Collect(ctx context.Context, api API, token string) (Raw, error) {
	profile, err := fetch[*models.UserProfile](ctx, api, token, PathProfile, MsgProfileFailed)
	if err != nil {
		return Raw{}, err
	}
	if profile == nil {
		return Raw{}, &Failure{Message: MsgProfileFailed, Err: &gateway.ParseError{Err: errNoProfile}}
	}
	txs, err := fetch[models.TransactionsResponse](ctx, api, token, PathTransactions, MsgTransactionsFailed)
	if err != nil {
		return Raw{}, err
	}
	balances, err := fetch[models.BalancesResponse](ctx, api, token, PathBalance, MsgBalancesFailed)
	if err != nil {
		return Raw{}, err
	}
	return Raw{
		Profile:      *profile,
		Transactions: txs.Transactions,
		Shops:        balances.Shops,
	}, nil
}

// Normalize строит готовую модель из ответов сервера. Чистая функция: вход не изменяется,
// повторный вызов на тех же данных дает тот же результат.
func Normalize(raw Raw) models.HomeViewModel {
	transactions := make([]models.Transaction, 0, len(raw.Transactions))
	for _, tx := range raw.Transactions {
		transactions = append(transactions, models.Transaction{
			TID:             tx.TID,
			ShopName:        tx.ShopName,
			PerformedAt:     tx.PerformedAt,
			TotalCost:       models.FromMinorUnits(tx.TotalCost),
			PointsAllocated: models.FromMinorUnits(tx.PointsAllocated),
		})
	}

	shops := make([]models.ShopBalance, 0, len(raw.Shops))
	for _, shop := range raw.Shops {
		shops = append(shops, models.ShopBalance{
			ShopName: shop.ShopName,
			Balance:  models.FromMinorUnits(shop.Balance),
		})
	}

	profile := raw.Profile
	return models.HomeViewModel{
		Profile:      &profile,
		Transactions: transactions,
		Shops:        shops,
		Loading:      false,
	}
}

// FailedModel модель неуспешной сборки.
func FailedModel(err error) models.HomeViewModel {
	msg := err.Error()
	var failure *Failure
	if errors.As(err, &failure) {
		msg = failure.Message
	}
	return models.HomeViewModel{
		Transactions: []models.Transaction{},
		Shops:        []models.ShopBalance{},
		Loading:      false,
		Error:        &msg,
	}
}
