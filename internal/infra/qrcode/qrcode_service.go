package qrcode

import (
	"encoding/json"
	"strings"

	"adreach/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	qrTypeCampaign = "campaign"
	defaultSize    = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CampaignID string `json:"campaign_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCampaignQR generates a share QR code for a campaign
func (s *qrcodeService) GenerateCampaignQR(campaignID uuid.UUID) ([]byte, error) {
	content, err := s.content(campaignID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// content is the JSON encoded in the QR image.
func (s *qrcodeService) content(campaignID uuid.UUID) (string, error) {
	data := QRCodeData{
		CampaignID: campaignID.String(),
		Type:       qrTypeCampaign,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/campaigns/" + campaignID.String()
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(raw), nil
}
