package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// EndDay
// ──────────────────────────────────────────────────────────────────────────────

func TestEndDay_CierraYRegistraQuien(t *testing.T) {
	f := newFixture()
	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)
	today := entity.DayOf(time.Now())

	resp, err := uc.EndDay(context.Background(), "admin-1", today)

	require.NoError(t, err)
	assert.True(t, resp.IsEnded)
	assert.Equal(t, "admin-1", resp.EndedBy)
	assert.NotEmpty(t, resp.EndedAt)
}

// El cierre es terminal: cerrar dos veces el mismo día falla.
func TestEndDay_RechazaDiaYaCerrado(t *testing.T) {
	f := newFixture()
	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)
	today := entity.DayOf(time.Now())

	_, err := uc.EndDay(context.Background(), "admin-1", today)
	require.NoError(t, err)

	_, err = uc.EndDay(context.Background(), "admin-1", today)
	assert.ErrorIs(t, err, domain.ErrDayAlreadyEnded)
}

// ──────────────────────────────────────────────────────────────────────────────
// StartNewDay
// ──────────────────────────────────────────────────────────────────────────────

func TestStartNewDay_RequiereCierrePrevio(t *testing.T) {
	f := newFixture()
	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)
	today := entity.DayOf(time.Now())

	_, err := uc.StartNewDay(context.Background(), "admin-1", today)
	assert.ErrorIs(t, err, domain.ErrPriorDayNotEnded, "sin cierre del día anterior no hay apertura")

	// Día anterior registrado pero aún abierto: igual de inválido.
	require.NoError(t, f.days.Save(&entity.DayStatus{Date: today.AddDate(0, 0, -1)}))
	_, err = uc.StartNewDay(context.Background(), "admin-1", today)
	assert.ErrorIs(t, err, domain.ErrPriorDayNotEnded)
}

// La apertura arrastra lo no consumido como lotes frescos del día nuevo,
// conservando costo y vencimiento, sin tocar el stock agregado.
func TestStartNewDay_ArrastraRestantes(t *testing.T) {
	f := newFixture()
	today := entity.DayOf(time.Now())
	yesterday := today.AddDate(0, 0, -1)
	require.NoError(t, f.days.Save(&entity.DayStatus{Date: yesterday, IsEnded: true}))

	item := seedItem(f, "tomate", 8)
	now := time.Now()
	exp := today.AddDate(0, 0, 3)
	conResto := seedEntry(f, "A", "tomate", yesterday, 8, &exp, now)
	costo := decimal.NewFromInt(2)
	conResto.Cost = &costo
	agotado := seedEntry(f, "B", "tomate", yesterday, 5, &exp, now)
	agotado.RemainingQuantity = decimal.Zero

	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)
	resp, err := uc.StartNewDay(context.Background(), "admin-1", today)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CarriedCount, "solo arrastra lotes con restante > 0")

	fresh, err := f.ledger.ListByDay(today)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	carried := fresh[0]
	assert.NotEqual(t, "A", carried.ID, "el lote arrastrado es un lote nuevo")
	assert.True(t, carried.Quantity.Equal(decimal.NewFromInt(8)), "nace con cantidad = restante de ayer")
	assert.True(t, carried.RemainingQuantity.Equal(decimal.NewFromInt(8)))
	require.NotNil(t, carried.Cost)
	assert.True(t, carried.Cost.Equal(costo))
	require.NotNil(t, carried.ExpiryDate)
	assert.True(t, carried.ExpiryDate.Equal(exp))

	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(8)), "la apertura no altera el agregado")

	ds, err := f.days.Get(today)
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.False(t, ds.IsEnded)
}

// Lo vencido no se arrastra: su stock lo concilia el barrido, no la apertura.
func TestStartNewDay_DescartaVencidosEnSilencio(t *testing.T) {
	f := newFixture()
	today := entity.DayOf(time.Now())
	yesterday := today.AddDate(0, 0, -1)
	require.NoError(t, f.days.Save(&entity.DayStatus{Date: yesterday, IsEnded: true}))

	seedItem(f, "leche", 4)
	now := time.Now()
	vencido := yesterday
	seedEntry(f, "V", "leche", yesterday, 4, &vencido, now)

	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)
	resp, err := uc.StartNewDay(context.Background(), "admin-1", today)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.CarriedCount)
	fresh, _ := f.ledger.ListByDay(today)
	assert.Empty(t, fresh)
}

func TestStartNewDay_RechazaDiaYaCerrado(t *testing.T) {
	f := newFixture()
	today := entity.DayOf(time.Now())
	require.NoError(t, f.days.Save(&entity.DayStatus{Date: today.AddDate(0, 0, -1), IsEnded: true}))
	require.NoError(t, f.days.Save(&entity.DayStatus{Date: today, IsEnded: true}))

	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)
	_, err := uc.StartNewDay(context.Background(), "admin-1", today)

	assert.ErrorIs(t, err, domain.ErrDayAlreadyEnded)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStatus_DiaSinRegistroSeReportaAbierto(t *testing.T) {
	f := newFixture()
	uc := appinventory.NewDayBoundaryUseCase(f.tx, f.days)

	resp, err := uc.GetStatus(context.Background(), time.Now())

	require.NoError(t, err)
	assert.False(t, resp.IsEnded)
}
