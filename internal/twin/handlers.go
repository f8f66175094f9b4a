package twin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/loyalty-userapp/internal/http/middlewarectx"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/response"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
)

// LoginRequest тело POST /user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest тело POST /user/.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
	Nationality string `json:"nationality" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	UID         string `json:"uid"`
}

// FailRequest тело POST /admin/fail. Нулевой статус снимает отказ.
type FailRequest struct {
	Path   string `json:"path" validate:"required"`
	Status int    `json:"status" validate:"omitempty,min=100,max=599"`
}

// Handler обработчики маршрутов двойника.
type Handler struct {
	log      *slog.Logger
	service  *Service
	faults   *Faults
	validate *validator.Validate
}

// NewHandler создает Handler.
func NewHandler(log *slog.Logger, service *Service, faults *Faults) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		faults:   faults,
		validate: validator.New(),
	}
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// decode читает и проверяет тело запроса. При ошибке ответ уже записан.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return false
	}
	return true
}

// Login POST /user/login → {token}.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.Login")

	var req LoginRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	token, err := h.service.Login(r.Context(), models.Credentials{Email: req.Email, Password: req.Password})
	if errors.Is(err, ErrInvalidCredentials) {
		log.Info("invalid credentials", slog.String("email", req.Email))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}
	render.JSON(w, r, models.TokenResponse{Token: token})
}

// Register POST /user/ → {token}.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.Register")

	var req RegisterRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	token, err := h.service.Register(r.Context(), models.RegistrationProfile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		UserName:    req.UserName,
		Nationality: req.Nationality,
		Gender:      req.Gender,
		Password:    req.Password,
		UID:         req.UID,
	})
	if errors.Is(err, ErrUserExists) {
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("user already exists"))
		return
	}
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}
	log.Info("user registered", slog.String("email", req.Email), slog.String("uid", req.UID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, models.TokenResponse{Token: token})
}

// Profile GET /user/ → UserProfile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.Profile")
	userID, _ := middlewarectx.UserIDFromContext(r.Context())

	profile, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, log, err)
		return
	}
	render.JSON(w, r, profile)
}

// Transactions GET /user/transactions → {transactions}.
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.Transactions")
	userID, _ := middlewarectx.UserIDFromContext(r.Context())

	txs, err := h.service.Transactions(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, log, err)
		return
	}
	render.JSON(w, r, models.TransactionsResponse{Transactions: txs})
}

// Balance GET /user/balance → {shops: [[name, balance], ...]}.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.Balance")
	userID, _ := middlewarectx.UserIDFromContext(r.Context())

	shops, err := h.service.Balances(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, log, err)
		return
	}
	render.JSON(w, r, models.BalancesResponse{Shops: shops})
}

// SeedTransaction POST /admin/transactions добавляет транзакцию пользователю.
func (h *Handler) SeedTransaction(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.SeedTransaction")

	var seed Seed
	if !h.decode(w, r, log, &seed) {
		return
	}

	tx, err := h.service.AddTransaction(r.Context(), seed)
	if errors.Is(err, ErrUserNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		h.internalError(w, r, log, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, tx)
}

// Fail POST /admin/fail заставляет путь отвечать заданным статусом.
func (h *Handler) Fail(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "twin.handlers.Fail")

	var req FailRequest
	if !h.decode(w, r, log, &req) {
		return
	}
	h.faults.Set(req.Path, req.Status)
	log.Info("fault updated", slog.String("path", req.Path), slog.Int("status", req.Status))
	w.WriteHeader(http.StatusNoContent)
}

// ResetFaults DELETE /admin/fail снимает все отказы.
func (h *Handler) ResetFaults(w http.ResponseWriter, _ *http.Request) {
	h.faults.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.Error("request failed", sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error("internal error"))
}
