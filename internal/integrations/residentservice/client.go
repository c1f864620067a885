package residentservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ResidentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ResidentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetResident получает резидента по ID
func (c *Client) GetResident(ctx context.Context, residentID int64) (*Resident, error) {
	url := fmt.Sprintf("%s/internal/residents/%d", c.baseURL, residentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid resident ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrResidentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var resident Resident
	if err := json.NewDecoder(resp.Body).Decode(&resident); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &resident, nil
}

// GetActiveResident получает резидента и проверяет, что его учетная запись активна.
// Используется перед созданием брони: деактивированный резидент бронировать не может.
func (c *Client) GetActiveResident(ctx context.Context, residentID int64) (*Resident, error) {
	resident, err := c.GetResident(ctx, residentID)
	if err != nil {
		return nil, err
	}

	if !resident.Active {
		c.log.Warn("Resident id=%d is inactive", residentID)
		return nil, ErrResidentInactive
	}

	return resident, nil
}
