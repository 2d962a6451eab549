package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://adreach.example.com/"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeService_TrimsBaseURL(t *testing.T) {
	svc, ok := NewQRCodeService(128, "M", testBaseURL).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, "https://adreach.example.com", svc.baseURL)
}

func TestQRCodeService_GenerateCampaignQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateCampaignQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateCampaignQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateCampaignQR(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_Content(t *testing.T) {
	campaignID := uuid.New()

	tests := []struct {
		name    string
		baseURL string
		wantURL string
	}{
		{name: "with share url", baseURL: testBaseURL, wantURL: "https://adreach.example.com/campaigns/" + campaignID.String()},
		{name: "without base url", baseURL: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(256, "M", tt.baseURL).(*qrcodeService)
			require.True(t, ok)

			content, err := svc.content(campaignID)
			require.NoError(t, err)

			var got QRCodeData
			require.NoError(t, json.Unmarshal([]byte(content), &got))
			assert.Equal(t, QRCodeData{CampaignID: campaignID.String(), Type: "campaign", URL: tt.wantURL}, got)
		})
	}
}
