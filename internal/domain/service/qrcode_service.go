package service

// QRCodeService defines the interface for QR code operations
type QRCodeService interface {
	// GenerateReportQR encodes a share link for a saved report as a PNG image
	GenerateReportQR(reportID, imageURL string) ([]byte, error)

	// ParseReportQR extracts the report identifier from scanned QR data
	ParseReportQR(qrData string) (reportID string, err error)
}
