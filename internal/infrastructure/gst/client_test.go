package gst

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name      string
		gstNumber string
		want      bool
	}{
		{"valid", "27ABCDE1234F1Z5", true},
		{"valid other state", "09FGHIJ5678K2Z9", true},
		{"too short", "27ABCDE1234F1Z", false},
		{"lowercase", "27abcde1234f1z5", false},
		{"missing Z", "27ABCDE1234F1Y5", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateFormat(tt.gstNumber))
		})
	}
}

func TestVerifyRejectsBadFormatWithoutNetworkCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	result, err := client.Verify(context.Background(), "bad-format")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid GST format", result.Message)
	assert.False(t, called)
}

func TestVerifyOfflineMode(t *testing.T) {
	client := NewClient("", "")

	result, err := client.Verify(context.Background(), "27ABCDE1234F1Z5")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestVerifyAgainstRegistry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true,"message":"GST number verified","company_name":"Acme Alloys Pvt Ltd","status":"Active"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	result, err := client.Verify(context.Background(), "27ABCDE1234F1Z5")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "Acme Alloys Pvt Ltd", result.CompanyName)
}

func TestVerifyDegradesOnServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	// A broken verifier degrades to "not verified"; it never errors.
	result, err := client.Verify(context.Background(), "27ABCDE1234F1Z5")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Verification service unavailable", result.Message)
}

func TestVerifyDegradesWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "test-key")

	result, err := client.Verify(context.Background(), "27ABCDE1234F1Z5")
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
