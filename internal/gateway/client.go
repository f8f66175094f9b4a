// Package gateway реализует HTTP-клиент сервиса баллов.
//
// Клиент склеивает базовый адрес с путем, передает токен сессии в заголовке
// с буквальным именем "token" (не Authorization: Bearer, так ожидает сервер),
// и классифицирует ответ: статус вне 2xx дает HTTPError, нечитаемое тело дает ParseError,
// сетевой сбой дает TransportError. Повторов нет, каждый вызов выполняется один раз.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
)

const (
	// TokenHeader имя заголовка с токеном сессии.
	TokenHeader = "token"
	// RequestIDHeader заголовок для сквозного идентификатора запроса.
	RequestIDHeader = "X-Request-Id"
)

// Options параметры одного запроса.
type Options struct {
	Method  string
	Token   string
	Headers map[string]string
	Body    any
}

// Client клиент сервиса баллов.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New создает клиент. Нулевой timeout означает отсутствие таймаута.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Do выполняет запрос и декодирует успешный ответ в out. Если out равен nil, тело ответа не читается.
func (c *Client) Do(ctx context.Context, path string, opts Options, out any) error {
	const op = "gateway.Do"

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	log := c.log.With(sl.Op(op), slog.String("method", method), slog.String("path", path))

	req, err := c.newRequest(ctx, method, path, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, path, outcomeTransport).Inc()
		log.Error("request failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, &TransportError{Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(method, path, outcomeTransport).Inc()
		log.Error("failed to read response body", sl.Err(err))
		return fmt.Errorf("%s: %w", op, &TransportError{Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		requestsTotal.WithLabelValues(method, path, outcomeStatus).Inc()
		log.Warn("unexpected status", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%s: %w", op, &HTTPError{Status: resp.StatusCode, Body: body})
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			requestsTotal.WithLabelValues(method, path, outcomeParse).Inc()
			log.Error("failed to decode response body", sl.Err(err))
			return fmt.Errorf("%s: %w", op, &ParseError{Err: err})
		}
	}

	requestsTotal.WithLabelValues(method, path, outcomeOK).Inc()
	log.Debug("request completed", slog.Int("status", resp.StatusCode))
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, opts Options) (*http.Request, error) {
	url := c.baseURL + path

	var body io.Reader
	if opts.Body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(opts.Body); err != nil {
			return nil, err
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, reqID)

	for name, value := range opts.Headers {
		req.Header.Set(name, value)
	}
	if opts.Token != "" {
		// Значение передается как есть, без схемы и префиксов.
		req.Header[TokenHeader] = []string{opts.Token}
	}
	return req, nil
}
