package cmd

import (
	"testing"

	"github.com/bricar/minimarket"
)

func TestDescribeAmend(t *testing.T) {
	ana := "Ana"
	empty := ""
	tests := []struct {
		req  minimarket.AmendRequest
		want string
	}{
		{minimarket.AmendRequest{}, "sin cambios"},
		{minimarket.AmendRequest{Method: minimarket.PagoMovil}, "método Pago Móvil"},
		{minimarket.AmendRequest{Customer: &ana}, `cliente "Ana"`},
		{minimarket.AmendRequest{Reference: &empty}, `referencia ""`},
		{minimarket.AmendRequest{RemoveLines: []int{0}}, "quitar 1 línea"},
		{minimarket.AmendRequest{RemoveLines: []int{0, 2}}, "quitar 2 líneas"},
		{
			minimarket.AmendRequest{Method: minimarket.EfectivoUSD, Customer: &ana, RemoveLines: []int{1}},
			`método Efectivo USD (Divisa), cliente "Ana", quitar 1 línea`,
		},
	}
	for _, tt := range tests {
		if got := describeAmend(tt.req); got != tt.want {
			t.Errorf("describeAmend(%+v) = %q, want %q", tt.req, got, tt.want)
		}
	}
}
