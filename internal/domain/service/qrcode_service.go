package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for campaign share QR codes
type QRCodeService interface {
	// GenerateCampaignQR renders a PNG QR code linking to the campaign
	GenerateCampaignQR(campaignID uuid.UUID) ([]byte, error)
}
