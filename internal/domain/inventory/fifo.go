package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// BatchDeduction es un paso del plan de consumo: cuánto tomar de cada lote.
type BatchDeduction struct {
	Entry *entity.LedgerEntry
	Take  decimal.Decimal
}

// SortForConsumption ordena lotes por vencimiento ascendente (nulos al final)
// y, a igual vencimiento, por creación ascendente. Es el orden FIFO-por-vencimiento.
func SortForConsumption(entries []*entity.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.ExpiryDate == nil && b.ExpiryDate == nil:
			return a.CreatedAt.Before(b.CreatedAt)
		case a.ExpiryDate == nil:
			return false
		case b.ExpiryDate == nil:
			return true
		case a.ExpiryDate.Equal(*b.ExpiryDate):
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ExpiryDate.Before(*b.ExpiryDate)
		}
	})
}

// PlanFIFODeduction recorre los lotes en orden de consumo y arma el plan que
// satisface la cantidad requerida. Los lotes ya vencidos a `now` se saltan:
// no son consumibles, los castiga el barrido de vencimientos.
// Devuelve el plan y el total disponible entre lotes usables; ok es false si
// los lotes se agotan antes de cubrir lo requerido (en ese caso el plan queda vacío).
func PlanFIFODeduction(entries []*entity.LedgerEntry, required decimal.Decimal, now time.Time) (plan []BatchDeduction, available decimal.Decimal, ok bool) {
	SortForConsumption(entries)

	still := required
	for _, e := range entries {
		if e.RemainingQuantity.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if e.ExpiryDate != nil && e.ExpiryDate.Before(now) {
			continue
		}
		available = available.Add(e.RemainingQuantity)
		if still.GreaterThan(decimal.Zero) {
			take := decimal.Min(e.RemainingQuantity, still)
			plan = append(plan, BatchDeduction{Entry: e, Take: take})
			still = still.Sub(take)
		}
	}
	if still.GreaterThan(decimal.Zero) {
		return nil, available, false
	}
	return plan, available, true
}
