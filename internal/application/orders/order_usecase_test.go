package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
)

func orderRequest(lines ...dto.OrderLineRequest) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerName: "Lucía",
		OrderType:    entity.OrderTypeDineIn,
		Lines:        lines,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Pedido de 3 ensaladas (2 kg de tomate c/u): consume 6 del libro y del
// agregado, registra la venta y calcula los totales.
func TestCreate_ConsumeYRegistraVenta(t *testing.T) {
	f := newFixture()
	item := f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	in := orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(3)})
	in.Tax = decimal.NewFromInt(2)
	in.Discount = decimal.NewFromInt(1)

	resp, err := f.uc.Create(context.Background(), "chef-1", in)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(12)), "subtotal = 3 x precio de carta 4")
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(13)), "total = subtotal + impuesto - descuento")
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].UnitPrice.Equal(decimal.NewFromInt(4)), "precio en cero toma el de carta")

	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(4)), "el agregado baja 2 x 3 unidades")
	assert.True(t, f.ledger.entries[0].RemainingQuantity.Equal(decimal.NewFromInt(4)))
	require.Len(t, f.sales.records, 1)
	assert.Equal(t, resp.ID, f.sales.records[0].OrderID)
	require.Len(t, f.logs.logs, 1)
	assert.True(t, f.logs.logs[0].Change.Equal(decimal.NewFromInt(-6)))
}

// Todo o nada: un solo ingrediente faltante aborta el pedido completo y no
// persiste nada.
func TestCreate_FaltanteAbortaTodo(t *testing.T) {
	f := newFixture()
	queso := f.seedStock("queso", 10)
	f.seedStock("tomate", 1)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})
	f.seedMenu("tabla", 6, map[string]int64{"queso": 1})

	in := orderRequest(
		dto.OrderLineRequest{MenuItemID: "tabla", Quantity: decimal.NewFromInt(1)},
		dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)},
	)
	_, err := f.uc.Create(context.Background(), "chef-1", in)

	var unavailable *inventory.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Len(t, unavailable.Missing, 1)
	assert.Equal(t, "tomate", unavailable.Missing[0].StockItemID)

	assert.Empty(t, f.orders.orders, "nada persistido: ni siquiera las líneas cubiertas")
	assert.Empty(t, f.sales.records)
	assert.True(t, queso.CurrentStock.Equal(decimal.NewFromInt(10)), "el queso no se toca")
}

func TestCreate_ProductoInexistente(t *testing.T) {
	f := newFixture()
	in := orderRequest(dto.OrderLineRequest{MenuItemID: "fantasma", Quantity: decimal.NewFromInt(1)})

	_, err := f.uc.Create(context.Background(), "chef-1", in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	f := newFixture()
	f.seedMenu("ensalada", 4, nil)

	_, err := f.uc.Create(context.Background(), "chef-1", dto.CreateOrderRequest{
		OrderType: entity.OrderTypeDineIn,
		Lines:     []dto.OrderLineRequest{{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nombre de cliente")

	_, err = f.uc.Create(context.Background(), "chef-1", dto.CreateOrderRequest{
		CustomerName: "Lucía",
		OrderType:    "drive_thru",
		Lines:        []dto.OrderLineRequest{{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de pedido desconocido")

	_, err = f.uc.Create(context.Background(), "chef-1", orderRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas no hay pedido")
}

// El consumo posterior a la creación es de mejor esfuerzo: con stock agregado
// pero sin lotes en el libro del día, la deducción falla, se registra y el
// pedido ya creado se mantiene en pending sin registro de venta.
func TestCreate_ConsumoFallidoNoRevierteElPedido(t *testing.T) {
	f := newFixture()
	item := f.seedStock("tomate", 5)
	f.ledger.entries = nil
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}))

	require.NoError(t, err, "la falla del paso secundario no revierte el pedido")
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Contains(t, f.orders.orders, resp.ID, "el pedido queda persistido")
	require.Len(t, f.orders.lines[resp.ID], 1)
	assert.Empty(t, f.sales.records, "sin consumo no hay registro de venta")
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(5)), "el agregado no se toca si la deducción falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// TransitionStatus
// ──────────────────────────────────────────────────────────────────────────────

// La cancelación repone exactamente cantidad-por-unidad x cantidad de línea.
func TestTransitionStatus_CancelarRestauraStock(t *testing.T) {
	f := newFixture()
	item := f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(3)}))
	require.NoError(t, err)
	require.True(t, item.CurrentStock.Equal(decimal.NewFromInt(4)))

	out, err := f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(10)), "repone los 6 consumidos")

	var restore *entity.InventoryLog
	for _, l := range f.logs.logs {
		if l.Change.GreaterThan(decimal.Zero) {
			restore = l
		}
	}
	require.NotNil(t, restore, "la restauración deja rastro positivo")
	assert.Equal(t, resp.ID, restore.ReferenceID)
}

// Un pedido cancelado es terminal: la segunda cancelación no repone dos veces.
func TestTransitionStatus_DobleCancelacion(t *testing.T) {
	f := newFixture()
	item := f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}))
	require.NoError(t, err)

	_, err = f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)

	_, err = f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(10)), "sin doble restauración")
}

func TestTransitionStatus_CaminoCompletoHastaEntrega(t *testing.T) {
	f := newFixture()
	f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}))
	require.NoError(t, err)

	for _, status := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
	} {
		_, err = f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, status)
		require.NoError(t, err, "transición a %s", status)
	}

	out, err := f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.NotEmpty(t, out.DeliveredAt, "la entrega estampa la hora real")
}

func TestTransitionStatus_SaltoInvalido(t *testing.T) {
	f := newFixture()
	f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}))
	require.NoError(t, err)

	_, err = f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, entity.OrderStatusReady)
	assert.ErrorIs(t, err, domain.ErrConflict, "pending no salta directo a ready")

	_, err = f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.TransitionStatus(context.Background(), "chef-1", "no-existe", entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReplaceLines
// ──────────────────────────────────────────────────────────────────────────────

// La edición restaura lo consumido y vuelve a consumir según las líneas nuevas.
func TestReplaceLines_RestauraYReconsume(t *testing.T) {
	f := newFixture()
	item := f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(3)}))
	require.NoError(t, err)
	require.True(t, item.CurrentStock.Equal(decimal.NewFromInt(4)))

	out, err := f.uc.ReplaceLines(context.Background(), "chef-1", resp.ID, dto.ReplaceLinesRequest{
		Lines: []dto.OrderLineRequest{{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}},
	})

	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(4)), "los totales se recalculan")
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(8)), "10 - 2 tras restaurar 6 y consumir 2")
}

// Si la verificación de las líneas nuevas falla tras la reversión de la fase 1,
// la operación falla con el detalle de faltantes, el pedido conserva sus líneas
// originales y el stock queda restaurado (ventana no atómica conocida).
func TestReplaceLines_FallaTrasRestaurarConservaLineas(t *testing.T) {
	f := newFixture()
	item := f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(3)}))
	require.NoError(t, err)
	require.True(t, item.CurrentStock.Equal(decimal.NewFromInt(4)))

	_, err = f.uc.ReplaceLines(context.Background(), "chef-1", resp.ID, dto.ReplaceLinesRequest{
		Lines: []dto.OrderLineRequest{{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(100)}},
	})

	var unavailable *inventory.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(10)), "la restauración de la fase 1 persiste")

	lines, lerr := f.orders.GetLines(resp.ID)
	require.NoError(t, lerr)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Quantity.Equal(decimal.NewFromInt(3)), "las líneas originales se conservan")
	assert.True(t, f.orders.orders[resp.ID].Subtotal.Equal(decimal.NewFromInt(12)), "los totales no se recalculan")
}

func TestReplaceLines_PedidoTerminalNoSeEdita(t *testing.T) {
	f := newFixture()
	f.seedStock("tomate", 10)
	f.seedMenu("ensalada", 4, map[string]int64{"tomate": 2})

	resp, err := f.uc.Create(context.Background(), "chef-1",
		orderRequest(dto.OrderLineRequest{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(1)}))
	require.NoError(t, err)
	_, err = f.uc.TransitionStatus(context.Background(), "chef-1", resp.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)

	_, err = f.uc.ReplaceLines(context.Background(), "chef-1", resp.ID, dto.ReplaceLinesRequest{
		Lines: []dto.OrderLineRequest{{MenuItemID: "ensalada", Quantity: decimal.NewFromInt(2)}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
