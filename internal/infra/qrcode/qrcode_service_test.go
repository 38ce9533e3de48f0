package qrcode

import (
	"encoding/json"
	"testing"

	"growguard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			qrBytes, err := service.GenerateReportQR("42", "")
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	service := New(Params{Config: &config.Config{}})

	qrBytes, err := service.GenerateReportQR("42", "http://localhost:5000/uploads/a.jpg")
	require.NoError(t, err)
	assertPNG(t, qrBytes)
}

func TestQRCodeService_GenerateReportQR_RequiresID(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GenerateReportQR(" ", "")

	assert.Error(t, err)
}

func TestQRCodeService_ParseReportQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(ReportQRData{ReportID: "42", ImageURL: "http://x/a.jpg", Type: "report"})
	require.NoError(t, err)

	reportID, err := service.ParseReportQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "42", reportID)
}

func TestQRCodeService_ParseReportQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"report_id":"1","type":"subscription"}`, "invalid QR code type"},
		{"missing id", `{"type":"report"}`, "no report id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseReportQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
