// Package unisport клиент REST API платформы бронирования. Шлюз ничего не
// хранит сам: платформа - единственный источник истины по объектам,
// доступности и заказам.
package unisport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

// Client клиент для работы с платформой бронирования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платформы
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFacility получает карточку спортивного объекта
func (c *Client) GetFacility(ctx context.Context, facilityID int64) (*domain.Facility, error) {
	u := fmt.Sprintf("%s/catalog/facilities/%d/", c.baseURL, facilityID)

	var out FacilityResponse
	if err := c.doJSON(ctx, http.MethodGet, u, "", nil, &out); err != nil {
		return nil, err
	}
	return out.ToDomain()
}

// GetDailyAvailability получает дневную доступность объекта на дату
func (c *Client) GetDailyAvailability(ctx context.Context, facilityID int64, date time.Time) (*domain.DailyAvailability, error) {
	u := fmt.Sprintf("%s/catalog/facilities/%d/availability/?date=%s",
		c.baseURL, facilityID, url.QueryEscape(date.Format(domain.DateFormat)))

	var out DailyAvailabilityResponse
	if err := c.doJSON(ctx, http.MethodGet, u, "", nil, &out); err != nil {
		return nil, err
	}
	return out.ToDomain()
}

// GetSubscriptionMatrix получает матрицу доступности абонемента
func (c *Client) GetSubscriptionMatrix(ctx context.Context, facilityID int64) (*domain.SubscriptionMatrix, error) {
	u := fmt.Sprintf("%s/catalog/facilities/%d/comprehensive-subscription-availability/", c.baseURL, facilityID)

	var out SubscriptionMatrixResponse
	if err := c.doJSON(ctx, http.MethodGet, u, "", nil, &out); err != nil {
		return nil, err
	}
	return out.ToDomain()
}

// PrepareOrder создает заказ на платформе и возвращает его идентификатор.
// Конфликт конкурентного бронирования (409) возвращается как ConflictError
// с дословным сообщением платформы.
func (c *Client) PrepareOrder(ctx context.Context, token string, req PrepareOrderRequest) (string, error) {
	u := fmt.Sprintf("%s/bookings/prepare-paycom-payment/", c.baseURL)

	var out PrepareOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, u, token, req, &out); err != nil {
		return "", err
	}
	if out.OrderIdentifier == "" {
		return "", fmt.Errorf("%w: empty order_identifier", ErrInvalidResponse)
	}
	return out.OrderIdentifier, nil
}

// GetCheckoutURL получает платежную ссылку Payme для заказа
func (c *Client) GetCheckoutURL(ctx context.Context, token string, orderIdentifier string) (string, error) {
	u := fmt.Sprintf("%s/bookings/orders/%s/get-paycom-checkout-url/", c.baseURL, url.PathEscape(orderIdentifier))

	var out CheckoutURLResponse
	if err := c.doJSON(ctx, http.MethodPost, u, token, nil, &out); err != nil {
		return "", err
	}
	if out.PaymeCheckoutURL == "" {
		return "", fmt.Errorf("%w: empty payme_checkout_url", ErrInvalidResponse)
	}
	return out.PaymeCheckoutURL, nil
}

// GetOrderStatus получает текущий статус оплаты заказа
func (c *Client) GetOrderStatus(ctx context.Context, token string, orderIdentifier string) (domain.OrderStatus, error) {
	u := fmt.Sprintf("%s/bookings/orders/%s/payment-status/", c.baseURL, url.PathEscape(orderIdentifier))

	var out PaymentStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, u, token, nil, &out); err != nil {
		return "", err
	}
	if out.Status == "" {
		return "", fmt.Errorf("%w: empty status", ErrInvalidResponse)
	}
	return domain.OrderStatus(out.Status), nil
}

// GetOrderByCode получает детали заказа по короткому коду (QR на проходной)
func (c *Client) GetOrderByCode(ctx context.Context, staffToken string, orderCode string) (*domain.Order, error) {
	u := fmt.Sprintf("%s/checkin/order-details/%s/", c.baseURL, url.PathEscape(orderCode))

	var out OrderDetailsResponse
	if err := c.doJSON(ctx, http.MethodGet, u, staffToken, nil, &out); err != nil {
		return nil, err
	}
	return out.ToDomain()
}

// CompleteOrder отмечает заказ завершенным на проходной
func (c *Client) CompleteOrder(ctx context.Context, staffToken string, orderCode string) (*CompleteOrderResponse, error) {
	u := fmt.Sprintf("%s/checkin/complete-order/%s/", c.baseURL, url.PathEscape(orderCode))

	var out CompleteOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, u, staffToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON выполняет запрос и декодирует успешный ответ в out.
// Ошибочные статус-коды маппятся на типизированные ошибки клиента.
func (c *Client) doJSON(ctx context.Context, method, url, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusAccepted:
		return ErrPending
	case http.StatusBadRequest:
		return &ValidationError{Detail: c.readErrorMessage(resp.Body)}
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return &ConflictError{Detail: c.readErrorMessage(resp.Body)}
	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		}
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readErrorMessage извлекает сообщение платформы из тела ошибки.
// Сообщения о конфликте бронирования показываются пользователю дословно.
func (c *Client) readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return "booking platform rejected the request"
	}
	var parsed ErrorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message() != "" {
		return parsed.Message()
	}
	return string(raw)
}
