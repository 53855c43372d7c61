package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mt5_bridge/internal/models"
)

func TestNegotiateFilling(t *testing.T) {
	cases := []struct {
		name  string
		modes int
		want  int
	}{
		{"fok only", models.SymbolFillingFOK, models.OrderFillingFOK},
		{"ioc only", models.SymbolFillingIOC, models.OrderFillingIOC},
		{"fok beats ioc", models.SymbolFillingFOK | models.SymbolFillingIOC, models.OrderFillingFOK},
		{"no bits means return mode", 0, models.OrderFillingReturn},
		{"unknown bits fall back to return", 8, models.OrderFillingReturn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, negotiateFilling(tc.modes))
		})
	}
}

func TestNegotiateFillingDeterministic(t *testing.T) {
	for modes := 0; modes < 8; modes++ {
		first := negotiateFilling(modes)
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, negotiateFilling(modes))
		}
	}
}
