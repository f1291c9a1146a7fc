package ratebudget

import (
	"testing"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDelay_FirstJobStartsImmediately(t *testing.T) {
	for _, p := range []domain.ProviderID{domain.ProviderXero, domain.ProviderQuickBooks, domain.ProviderFortnox, "unknown"} {
		assert.Equal(t, time.Duration(0), Delay(p, 0), "provider %s", p)
	}
}

func TestDelay_Xero(t *testing.T) {
	// 60000/60 * 1.1 = 1100ms
	assert.Equal(t, 1100*time.Millisecond, Delay(domain.ProviderXero, 1))
	assert.Equal(t, 5500*time.Millisecond, Delay(domain.ProviderXero, 5))
}

func TestDelay_RoundsUp(t *testing.T) {
	// 60000/500 * 1.1 = 132ms, 60000/300 * 1.1 = 220ms
	assert.Equal(t, 132*time.Millisecond, Spacing(domain.ProviderQuickBooks))
	assert.Equal(t, 220*time.Millisecond, Spacing(domain.ProviderFortnox))
	assert.Equal(t, 264*time.Millisecond, Delay(domain.ProviderQuickBooks, 2))
}

func TestDelay_UnknownProviderUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultCallsPerMinute, CallsPerMinute("freshbooks"))
	assert.Equal(t, Delay(domain.ProviderXero, 3), Delay("freshbooks", 3))
}

func TestDelay_StrictlyIncreasing(t *testing.T) {
	for _, p := range []domain.ProviderID{domain.ProviderXero, domain.ProviderQuickBooks, domain.ProviderFortnox} {
		for i := 0; i < 200; i++ {
			assert.Greater(t, Delay(p, i+1), Delay(p, i), "provider %s index %d", p, i)
		}
	}
}

func TestJobIndex_SharedAcrossPhases(t *testing.T) {
	var idx JobIndex

	assert.Equal(t, 0, idx.Next())
	assert.Equal(t, 1, idx.Next())

	// a second phase continues where the first one stopped
	phase := func(i *JobIndex) int { return i.Next() }
	assert.Equal(t, 2, phase(&idx))
	assert.Equal(t, 3, idx.Issued())
}
