package qrcode

import (
	"net/url"
	"strings"

	"menuboard/config"
	"menuboard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	tableParam  = "table"
	maxTableLen = 32
)

type qrcodeService struct {
	baseURL              *url.URL
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service for links to the public menu at baseURL.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) (service.QRCodeService, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Wrap(err, "invalid menu base url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return nil, errors.Errorf("menu base url must be an absolute http(s) url, got %q", baseURL)
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              parsed,
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}, nil
}

// NewFromConfig builds the service from the qrcode section of the configuration.
func NewFromConfig(cfg *config.Config) (service.QRCodeService, error) {
	if cfg.QRCode == nil {
		return nil, errors.New("qrcode configuration is required")
	}

	return NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateMenuQR renders the menu link as a PNG. A non-empty table is added as a query parameter.
func (s *qrcodeService) GenerateMenuQR(table string) ([]byte, error) {
	link, err := s.menuURL(table)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseMenuQR returns the table encoded in a scanned menu link, or "" when the link has none.
func (s *qrcodeService) ParseMenuQR(qrData string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}
	if parsed.Host != s.baseURL.Host || parsed.Path != s.baseURL.Path {
		return "", errors.Errorf("QR code does not point at this menu: %s", qrData)
	}

	return parsed.Query().Get(tableParam), nil
}

func (s *qrcodeService) menuURL(table string) (string, error) {
	table = strings.TrimSpace(table)
	if len(table) > maxTableLen {
		return "", errors.Errorf("table label exceeds %d characters", maxTableLen)
	}

	link := *s.baseURL
	if table != "" {
		query := link.Query()
		query.Set(tableParam, table)
		link.RawQuery = query.Encode()
	}

	return link.String(), nil
}
