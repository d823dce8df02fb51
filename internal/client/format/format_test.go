package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

func TestPriceValue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0 €"},
		{"two decimals with comma", 9.9, "9,90 €"},
		{"rounds to two decimals", 12.345, "12,35 €"},
		{"grouped thousands", 1234.5, "1.234,50 €"},
		{"nan", math.NaN(), PricePlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceValue(tt.in))
		})
	}
}

func TestPrice_NilYieldsPlaceholder(t *testing.T) {
	assert.Equal(t, PricePlaceholder, Price(nil))

	v := 49.0
	assert.Equal(t, "49,00 €", Price(&v))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "12.500", Count(12500))
	assert.Equal(t, "0", Count(0))
	assert.Equal(t, "1.234.567", Count(1234567))
}

func TestSegmentLabel(t *testing.T) {
	assert.Equal(t, `Casual · profilo "sport"`, SegmentLabel(models.SegmentCasual))
	assert.Equal(t, "Emergente · primi passi nel mondo brand", SegmentLabel(models.SegmentEmerging))
	assert.Equal(t, "Creator Pro · collaborazioni strutturate", SegmentLabel(models.SegmentPro))
	assert.Equal(t, "Top / Agenzia · gestione profili importanti", SegmentLabel(models.SegmentAgency))
	assert.Equal(t, "Profilo", SegmentLabel("unknown"))
	assert.Equal(t, "Profilo", SegmentLabel(""))
}

func TestSegmentLabel_Deterministic(t *testing.T) {
	first := SegmentLabel(models.SegmentPro)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SegmentLabel(models.SegmentPro))
	}
}
