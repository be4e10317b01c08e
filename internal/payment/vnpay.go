package payment

import (
	"fmt"
	"net/url"
)

// VNPay builds the redirect URL for online bookings. Purely a template
// expansion over the new appointment's id; no gateway call happens at
// booking time.
type VNPay struct {
	BaseURL   string
	ReturnURL string
}

func New(baseURL, returnURL string) VNPay {
	return VNPay{BaseURL: baseURL, ReturnURL: returnURL}
}

// PaymentURL is deterministic: the same appointment and fee always map
// to the same URL. Amount follows the gateway convention of minor units
// (fee x 100).
func (p VNPay) PaymentURL(appointmentID uint, fee float64) string {
	q := url.Values{}
	q.Set("vnp_Amount", fmt.Sprintf("%.0f", fee*100))
	q.Set("vnp_TxnRef", fmt.Sprintf("%d", appointmentID))
	q.Set("vnp_OrderInfo", "Thanh toan lich hen")
	q.Set("vnp_ReturnUrl", p.ReturnURL)

	return p.BaseURL + "?" + q.Encode()
}
