package models

// CheckoutRequest represents the contact form submitted with an order.
// Field names follow the storefront form: all fields except obs are required.
// Example: {"nome": "Ana", "telefone": "+244 9xx", "endereco": "Maianga", "obs": "sem cebola"}
type CheckoutRequest struct {
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	Notes   string `json:"obs,omitempty"`
}

// CheckoutResponse represents the projected order handed back to the client.
// The WhatsApp URL is a best-effort handoff: the server never learns whether
// the message was actually delivered.
// Example response:
//
//	{
//	  "message": "*NOVO PEDIDO - DS BURGUER*\n\n...",
//	  "whatsappUrl": "https://wa.me/244940723636?text=%2ANOVO%20PEDIDO...",
//	  "totalCount": 3,
//	  "totalPrice": 4400
//	}
type CheckoutResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
	TotalCount  int    `json:"totalCount"`
	TotalPrice  int64  `json:"totalPrice"`
}
