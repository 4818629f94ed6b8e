package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// Shiprocket tokens are valid for 10 days; refresh a day early.
const shiprocketTokenTTL = 9 * 24 * time.Hour

type ShiprocketConfig struct {
	BaseURL        string
	Email          string
	Password       string
	PickupPostcode string
	Timeout        time.Duration
}

// ShiprocketService quotes couriers for a delivery.
type ShiprocketService struct {
	cfg        ShiprocketConfig
	httpClient *http.Client
	now        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewShiprocketService(cfg ShiprocketConfig) *ShiprocketService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &ShiprocketService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
	}
}

// UpstreamError is a non-2xx answer from the carrier API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("shiprocket: status %d: %s", e.Status, e.Body)
}

// Serviceability lists couriers able to carry the parcel.
func (s *ShiprocketService) Serviceability(ctx context.Context, req models.ServiceabilityRequest) ([]models.CourierOption, error) {
	token, err := s.authToken(ctx)
	if err != nil {
		return nil, err
	}

	pickup := req.PickupPostcode
	if pickup == "" {
		pickup = s.cfg.PickupPostcode
	}
	cod := "0"
	if req.COD {
		cod = "1"
	}
	q := url.Values{}
	q.Set("pickup_postcode", pickup)
	q.Set("delivery_postcode", req.DeliveryPostcode)
	q.Set("weight", strconv.FormatFloat(req.Weight, 'f', -1, 64))
	q.Set("cod", cod)

	body, status, err := s.do(ctx, http.MethodGet, "/courier/serviceability/?"+q.Encode(), token, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		s.forgetToken()
	}
	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Status: status, Body: string(body)}
	}

	var resp struct {
		Data struct {
			AvailableCourierCompanies []models.CourierOption `json:"available_courier_companies"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("shiprocket: decode serviceability: %w", err)
	}
	options := resp.Data.AvailableCourierCompanies
	if options == nil {
		options = []models.CourierOption{}
	}
	return options, nil
}

func (s *ShiprocketService) authToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && s.now().Before(s.expiresAt) {
		return s.token, nil
	}

	payload, err := json.Marshal(map[string]string{"email": s.cfg.Email, "password": s.cfg.Password})
	if err != nil {
		return "", err
	}
	body, status, err := s.do(ctx, http.MethodPost, "/auth/login", "", payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &UpstreamError{Status: status, Body: string(body)}
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("shiprocket: decode login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("shiprocket: login returned no token")
	}
	s.token = resp.Token
	s.expiresAt = s.now().Add(shiprocketTokenTTL)
	return s.token, nil
}

func (s *ShiprocketService) forgetToken() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

func (s *ShiprocketService) do(ctx context.Context, method, path, token string, payload []byte) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.cfg.BaseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("shiprocket: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("shiprocket: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("shiprocket: read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}
