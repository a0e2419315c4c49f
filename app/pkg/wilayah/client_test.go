package wilayah_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/school-platform/app/internal/config"
	httpClientUtil "backend/school-platform/app/pkg/util/httpclient"
	"backend/school-platform/app/pkg/wilayah"
)

func newTestClient(baseURL string) wilayah.Client {
	logger := zap.NewNop()
	return wilayah.NewClient(
		httpClientUtil.NewRestyClient(0, logger),
		config.WilayahConfig{BaseURL: baseURL},
		logger,
	)
}

func TestProvincesParsesDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/provinces.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"code":"11","name":"Aceh"},{"code":"12","name":"Sumatera Utara"}]}`))
	}))
	defer server.Close()

	regions, err := newTestClient(server.URL).Provinces(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "11", regions[0].Code)
	assert.Equal(t, "Aceh", regions[0].Name)
}

func TestRegenciesBuildsProvincePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/regencies/11.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"code":"11.01","name":"Aceh Selatan"}]}`))
	}))
	defer server.Close()

	regions, err := newTestClient(server.URL).Regencies(context.Background(), "11")
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "11.01", regions[0].Code)
}

func TestFetchRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Provinces(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Provinces(context.Background())
	require.Error(t, err)
}
