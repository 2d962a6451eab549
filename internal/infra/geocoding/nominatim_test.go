package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adreach/config"
	"adreach/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) service.Geocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Defaults()
	cfg.Geocoding.Endpoint = server.URL
	cfg.Geocoding.Timeout = time.Second

	return NewNominatimGeocoder(cfg)
}

func TestGeocode_FirstMatch(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MG Road, Pune, India", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[{"lat":"18.5204","lon":"73.8567","display_name":"Pune"}]`))
	})

	point, err := geocoder.Geocode(context.Background(), "MG Road, Pune, India")
	require.NoError(t, err)
	assert.InDelta(t, 18.5204, point.Lat, 1e-9)
	assert.InDelta(t, 73.8567, point.Lon, 1e-9)
}

func TestGeocode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "no result", status: http.StatusOK, body: `[]`, wantErr: service.ErrGeocodeNoResult},
		{name: "upstream error", status: http.StatusBadGateway, body: ``, wantErr: service.ErrGeocoderUnavailable},
		{name: "garbage body", status: http.StatusOK, body: `<html>`, wantErr: service.ErrGeocoderUnavailable},
		{name: "bad coordinates", status: http.StatusOK, body: `[{"lat":"north","lon":"1"}]`, wantErr: service.ErrGeocoderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := geocoder.Geocode(context.Background(), "nowhere")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
