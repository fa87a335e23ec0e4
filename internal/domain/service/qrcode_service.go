package service

// QRCodeService defines the interface for menu QR code generation and parsing
type QRCodeService interface {
	// GenerateMenuQR renders a PNG QR code linking to the public menu, optionally for a table
	GenerateMenuQR(table string) ([]byte, error)

	// ParseMenuQR extracts the table from a scanned menu URL
	ParseMenuQR(qrData string) (string, error)
}
