package service

import (
	"fmt"
	"net/url"
	"strings"

	"ds-burguer/models"
	"ds-burguer/utils"
)

// CheckoutService projects a cart plus contact data into the WhatsApp order
// message and its handoff URL. The handoff is best-effort: once the URL is
// handed to the client the service has no visibility into delivery.
type CheckoutService struct {
	whatsappNumber string
}

// NewCheckoutService creates a new CheckoutService.
// whatsappNumber is the recipient in international format without "+".
func NewCheckoutService(whatsappNumber string) *CheckoutService {
	return &CheckoutService{whatsappNumber: whatsappNumber}
}

// ValidateContact checks the required checkout fields. Notes are optional.
func (s *CheckoutService) ValidateContact(req *models.CheckoutRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("nome is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("telefone is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("endereco is required")
	}
	return nil
}

// BuildOrderMessage renders the order as the plain-text block sent to
// WhatsApp. The output is deterministic: the same cart and contact data
// always produce the same bytes.
func (s *CheckoutService) BuildOrderMessage(cart *models.Cart, req *models.CheckoutRequest) (string, error) {
	if cart.IsEmpty() {
		return "", fmt.Errorf("cart is empty")
	}
	if err := s.ValidateContact(req); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("*NOVO PEDIDO - DS BURGUER*\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", req.Name)
	fmt.Fprintf(&b, "*Telefone:* %s\n", req.Phone)
	fmt.Fprintf(&b, "*Endereço:* %s\n\n", req.Address)
	b.WriteString("*PEDIDO:*\n")

	for _, line := range cart.Lines {
		fmt.Fprintf(&b, "• %dx %s (%s)\n", line.Qty, line.Name, utils.FormatKz(line.Subtotal()))
	}

	fmt.Fprintf(&b, "\n*TOTAL: %s*", utils.FormatKz(cart.TotalPrice()))

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		fmt.Fprintf(&b, "\n\n*Obs:* %s", notes)
	}

	return b.String(), nil
}

// WhatsAppURL builds the wa.me handoff URI with the message percent-encoded
// as the text query parameter.
func (s *CheckoutService) WhatsAppURL(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, encoded)
}
