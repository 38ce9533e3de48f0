package qrcode

import (
	"encoding/json"
	"strings"

	"growguard/config"
	"growguard/internal/domain/service"
	"growguard/internal/errors"

	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const reportType = "report"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReportQRData is the payload encoded in a report share code
type ReportQRData struct {
	ReportID string `json:"report_id"`
	ImageURL string `json:"image_url,omitempty"`
	Type     string `json:"type"`
}

// Params are the dependencies of the QR code service.
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the QR code service from configuration
func New(p Params) service.QRCodeService {
	cfg := p.Config.QRCode
	if cfg == nil {
		cfg = &config.QRCodeConfig{}
	}

	return NewQRCodeService(cfg.Size, cfg.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReportQR generates a PNG QR code pointing at a saved report
func (s *qrcodeService) GenerateReportQR(reportID, imageURL string) ([]byte, error) {
	if strings.TrimSpace(reportID) == "" {
		return nil, errors.New("report id is required")
	}

	jsonData, err := json.Marshal(ReportQRData{
		ReportID: reportID,
		ImageURL: imageURL,
		Type:     reportType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseReportQR parses QR code data and returns the report ID
func (s *qrcodeService) ParseReportQR(qrData string) (string, error) {
	var data ReportQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != reportType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ReportID == "" {
		return "", errors.New("QR code carries no report id")
	}

	return data.ReportID, nil
}
