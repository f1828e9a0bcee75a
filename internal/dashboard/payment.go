package dashboard

import "strings"

// PaymentConfig locates the static payment assets.
type PaymentConfig struct {
	// QRFile is the QRIS image on disk, served at QRUrl.
	QRFile         string `json:"qr_file"`
	QRUrl          string `json:"qr_url"`
	QRDownloadName string `json:"qr_download_name"`
	ContactUrl     string `json:"contact_url"`
}

func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		QRUrl:          "/qr.png",
		QRDownloadName: "QRIS_DIISTORE.png",
	}
}

type PaymentView struct {
	Instructions   string `json:"instructions"`
	QRUrl          string `json:"qr_url"`
	QRAlt          string `json:"qr_alt"`
	QRDownloadName string `json:"qr_download_name"`
	Confirmation   string `json:"confirmation"`
	ContactUrl     string `json:"contact_url,omitempty"`
	ContactLabel   string `json:"contact_label"`
}

// Normalize fills in defaults. A QRUrl that is not a plain absolute path or
// that falls under /api is replaced by the default.
func (cfg PaymentConfig) Normalize() PaymentConfig {
	defaults := DefaultPaymentConfig()
	if !validQRUrl(cfg.QRUrl) {
		cfg.QRUrl = defaults.QRUrl
	}
	if cfg.QRDownloadName == "" {
		cfg.QRDownloadName = defaults.QRDownloadName
	}
	return cfg
}

func validQRUrl(u string) bool {
	if len(u) < 2 || u[0] != '/' {
		return false
	}
	if u == "/api" || strings.HasPrefix(u, "/api/") {
		return false
	}
	return !strings.ContainsAny(u, "{}?# \t\n")
}

func BuildPaymentView(cfg PaymentConfig) PaymentView {
	cfg = cfg.Normalize()

	return PaymentView{
		Instructions:   "Silahkan transfer sesuai harga produk melalui QRIS berikut:",
		QRUrl:          cfg.QRUrl,
		QRAlt:          "QRIS Pembayaran",
		QRDownloadName: cfg.QRDownloadName,
		Confirmation:   "Setelah transfer, hubungi admin untuk konfirmasi pembayaran.",
		ContactUrl:     cfg.ContactUrl,
		ContactLabel:   "💬 Hubungi Admin",
	}
}
