package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ds-burguer/models"
)

func exampleCart() models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{ProductID: 1, Name: "Hamburguer Simples", Price: 2000, Qty: 2},
		{ProductID: 5, Name: "Água Mineral", Price: 400, Qty: 1},
	}}
}

func exampleContact() models.CheckoutRequest {
	return models.CheckoutRequest{
		Name:    "Ana Domingos",
		Phone:   "+244 940 000 000",
		Address: "Maianga, Luanda",
	}
}

func TestBuildOrderMessage(t *testing.T) {
	svc := NewCheckoutService("244940723636")
	cart := exampleCart()
	contact := exampleContact()

	message, err := svc.BuildOrderMessage(&cart, &contact)
	require.NoError(t, err)

	want := "*NOVO PEDIDO - DS BURGUER*\n\n" +
		"*Cliente:* Ana Domingos\n" +
		"*Telefone:* +244 940 000 000\n" +
		"*Endereço:* Maianga, Luanda\n\n" +
		"*PEDIDO:*\n" +
		"• 2x Hamburguer Simples (4000 Kz)\n" +
		"• 1x Água Mineral (400 Kz)\n" +
		"\n*TOTAL: 4400 Kz*"
	assert.Equal(t, want, message)
}

func TestBuildOrderMessageAppendsNotes(t *testing.T) {
	svc := NewCheckoutService("244940723636")
	cart := exampleCart()
	contact := exampleContact()
	contact.Notes = "sem cebola, bem passado"

	message, err := svc.BuildOrderMessage(&cart, &contact)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(message, "\n\n*Obs:* sem cebola, bem passado"))
}

func TestBuildOrderMessageIsDeterministic(t *testing.T) {
	svc := NewCheckoutService("244940723636")
	cart := exampleCart()
	contact := exampleContact()

	first, err := svc.BuildOrderMessage(&cart, &contact)
	require.NoError(t, err)
	second, err := svc.BuildOrderMessage(&cart, &contact)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildOrderMessageRejectsEmptyCart(t *testing.T) {
	svc := NewCheckoutService("244940723636")
	contact := exampleContact()

	var empty models.Cart
	_, err := svc.BuildOrderMessage(&empty, &contact)
	assert.Error(t, err)
}

func TestBuildOrderMessageRequiresContactFields(t *testing.T) {
	svc := NewCheckoutService("244940723636")
	cart := exampleCart()

	tests := []struct {
		name    string
		mutate  func(*models.CheckoutRequest)
		wantErr bool
	}{
		{"missing name", func(c *models.CheckoutRequest) { c.Name = "  " }, true},
		{"missing phone", func(c *models.CheckoutRequest) { c.Phone = "" }, true},
		{"missing address", func(c *models.CheckoutRequest) { c.Address = "" }, true},
		{"missing notes is fine", func(c *models.CheckoutRequest) { c.Notes = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := exampleContact()
			tt.mutate(&contact)
			_, err := svc.BuildOrderMessage(&cart, &contact)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWhatsAppURL(t *testing.T) {
	svc := NewCheckoutService("244940723636")

	url := svc.WhatsAppURL("*NOVO PEDIDO - DS BURGUER*\n\nhello")
	assert.True(t, strings.HasPrefix(url, "https://wa.me/244940723636?text="))
	// Percent-encoded, never form-encoded: no "+" for spaces
	assert.NotContains(t, url, "+")
	assert.Contains(t, url, "%2ANOVO%20PEDIDO")
	assert.Contains(t, url, "%0A")
}
