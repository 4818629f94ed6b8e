package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

type shiprocketStub struct {
	logins         atomic.Int32
	serviceability int
	lastQuery      string
	lastAuth       string
}

func (s *shiprocketStub) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		s.logins.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid email and password combination"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1"}`))
	})
	mux.HandleFunc("/courier/serviceability/", func(w http.ResponseWriter, r *http.Request) {
		s.lastQuery = r.URL.RawQuery
		s.lastAuth = r.Header.Get("Authorization")
		if s.serviceability != 0 {
			w.WriteHeader(s.serviceability)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"available_courier_companies":[
			{"courier_company_id":10,"courier_name":"Delhivery","rate":72.5,"estimated_delivery_days":"3","etd":"Oct 21, 2026","cod":1}
		]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestShiprocketService_Serviceability(t *testing.T) {
	stub := &shiprocketStub{}
	srv := stub.server(t)
	svc := NewShiprocketService(ShiprocketConfig{
		BaseURL: srv.URL, Email: "ops@example.com", Password: "secret", PickupPostcode: "110001",
	})
	req := models.ServiceabilityRequest{DeliveryPostcode: "560001", Weight: 1.5, COD: true}

	options, err := svc.Serviceability(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Serviceability(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, "Delhivery", options[0].CourierName)
	assert.Equal(t, 72.5, options[0].Rate)
	assert.Equal(t, int32(1), stub.logins.Load(), "token is reused")
	assert.Equal(t, "Bearer tok-1", stub.lastAuth)
	assert.Contains(t, stub.lastQuery, "pickup_postcode=110001")
	assert.Contains(t, stub.lastQuery, "delivery_postcode=560001")
	assert.Contains(t, stub.lastQuery, "cod=1")
}

func TestShiprocketService_LoginRejected(t *testing.T) {
	stub := &shiprocketStub{}
	srv := stub.server(t)
	svc := NewShiprocketService(ShiprocketConfig{BaseURL: srv.URL, Email: "ops@example.com", Password: "wrong"})

	_, err := svc.Serviceability(context.Background(), models.ServiceabilityRequest{DeliveryPostcode: "1", Weight: 1})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
}

func TestShiprocketService_UnauthorizedDropsToken(t *testing.T) {
	stub := &shiprocketStub{serviceability: http.StatusUnauthorized}
	srv := stub.server(t)
	svc := NewShiprocketService(ShiprocketConfig{BaseURL: srv.URL, Password: "secret"})
	req := models.ServiceabilityRequest{DeliveryPostcode: "1", Weight: 1}

	_, err := svc.Serviceability(context.Background(), req)
	require.Error(t, err)
	_, err = svc.Serviceability(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, int32(2), stub.logins.Load())
}
