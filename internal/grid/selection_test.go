package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelection_SetRangeInversaoDeDirecao(t *testing.T) {
	slots := NewSlots(6, 24)
	sel := NewSelection()

	sel = sel.SetRange(slots, nil, "ana", "10:00", "11:00")
	assert.Equal(t, slots.Between("10:00", "11:00"), sel.Labels(slots, "ana"))

	sel = sel.SetRange(slots, nil, "ana", "10:00", "09:00")
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45", "10:00"}, sel.Labels(slots, "ana"))
	assert.False(t, sel.Has("ana", "10:15"))
	assert.False(t, sel.Has("ana", "11:00"))
}

func TestSelection_SetRangeIgnoraCelulasOcupadas(t *testing.T) {
	slots := NewSlots(6, 24)
	occ := NewOccupancy(slots, []ShiftSpan{{EmployeeID: "ana", Start: "09:30", End: "10:00"}})

	sel := NewSelection().SetRange(slots, occ, "ana", "09:00", "10:00")

	assert.Equal(t, []string{"09:00", "09:15", "10:00"}, sel.Labels(slots, "ana"))
}

func TestSelection_ToggleEmCelulaOcupadaNaoAltera(t *testing.T) {
	slots := NewSlots(6, 24)
	occ := NewOccupancy(slots, []ShiftSpan{{EmployeeID: "ana", Start: "09:00", End: "12:00"}})

	sel := NewSelection().Toggle(slots, occ, "ana", "08:00")
	after := sel.Toggle(slots, occ, "ana", "10:00")

	assert.Equal(t, sel, after)
	assert.Equal(t, []string{"08:00"}, after.Labels(slots, "ana"))
}

func TestSelection_ToggleAdicionaERemove(t *testing.T) {
	slots := NewSlots(6, 24)

	sel := NewSelection().Toggle(slots, nil, "ana", "08:00")
	assert.True(t, sel.Has("ana", "08:00"))

	sel = sel.Toggle(slots, nil, "ana", "08:00")
	assert.False(t, sel.Has("ana", "08:00"))
	assert.True(t, sel.IsEmpty())

	sel = sel.Toggle(slots, nil, "ana", "05:00")
	assert.True(t, sel.IsEmpty())
}

func TestSelection_Imutavel(t *testing.T) {
	slots := NewSlots(6, 24)
	original := NewSelection().Toggle(slots, nil, "ana", "08:00")

	_ = original.Toggle(slots, nil, "ana", "09:00")
	_ = original.AddRange(slots, nil, "ana", "12:00", "13:00")
	_ = original.Clear("ana")

	assert.Equal(t, []string{"08:00"}, original.Labels(slots, "ana"))
}

func TestSelection_Clear(t *testing.T) {
	slots := NewSlots(6, 24)
	sel := NewSelection().
		Toggle(slots, nil, "ana", "08:00").
		Toggle(slots, nil, "bruno", "08:00")

	sel = sel.Clear("ana")
	assert.Equal(t, []string{"bruno"}, sel.Employees())
	assert.Equal(t, 1, sel.Count("bruno"))

	assert.True(t, sel.ClearAll().IsEmpty())
}

func TestOccupancy_TurnoQueAtravessaMeiaNoite(t *testing.T) {
	slots := NewSlots(20, 26)
	occ := NewOccupancy(slots, []ShiftSpan{{EmployeeID: "ana", Start: "23:00", End: "01:00"}})

	assert.True(t, occ.Has("ana", "23:00"))
	assert.True(t, occ.Has("ana", "00:45"))
	assert.False(t, occ.Has("ana", "01:00"))
	assert.False(t, occ.Has("ana", "22:45"))
	assert.False(t, occ.Has("bruno", "23:00"))
}

func TestGesture_ToqueAlternaCelula(t *testing.T) {
	slots := NewSlots(6, 24)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	g := BeginGesture(DefaultGestureConfig, slots, nil, NewSelection(), "ana", "09:00", start)
	sel := g.End()
	assert.Equal(t, []string{"09:00"}, sel.Labels(slots, "ana"))

	g = BeginGesture(DefaultGestureConfig, slots, nil, sel, "ana", "09:00", start)
	g, _ = g.Move("09:00", start.Add(300*time.Millisecond))
	assert.True(t, g.End().IsEmpty())
}

func TestGesture_ArrasteAdicionaIntervalo(t *testing.T) {
	slots := NewSlots(6, 24)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	base := NewSelection().Toggle(slots, nil, "ana", "09:15")

	g := BeginGesture(DefaultGestureConfig, slots, nil, base, "ana", "09:00", start)

	g, preview := g.Move("09:30", start.Add(50*time.Millisecond))
	assert.True(t, g.Dragging(), "sair da célula inicial entra em arraste antes do debounce")
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, preview.Labels(slots, "ana"))

	g, preview = g.Move("09:45", start.Add(200*time.Millisecond))
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, preview.Labels(slots, "ana"))

	// dentro do throttle: a pré-visualização não muda, mas a posição fica pendente
	g, preview = g.Move("10:00", start.Add(210*time.Millisecond))
	assert.False(t, preview.Has("ana", "10:00"))

	sel := g.End()
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45", "10:00"}, sel.Labels(slots, "ana"))
}

func TestGesture_DebounceNaCelulaInicialEntraEmArraste(t *testing.T) {
	slots := NewSlots(6, 24)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	g := BeginGesture(DefaultGestureConfig, slots, nil, NewSelection(), "ana", "09:00", start)

	g, preview := g.Move("09:00", start.Add(50*time.Millisecond))
	assert.False(t, g.Dragging())
	assert.True(t, preview.IsEmpty())

	g, preview = g.Move("09:00", start.Add(150*time.Millisecond))
	assert.True(t, g.Dragging())
	assert.Equal(t, []string{"09:00"}, preview.Labels(slots, "ana"))
	assert.Equal(t, preview, g.End())
}

func TestGesture_ArrasteRapidoSemDebounceAindaAdiciona(t *testing.T) {
	slots := NewSlots(6, 24)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	g := BeginGesture(DefaultGestureConfig, slots, nil, NewSelection(), "ana", "09:00", start)
	g, _ = g.Move("09:30", start.Add(10*time.Millisecond))

	sel := g.End()
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, sel.Labels(slots, "ana"))
}

func TestGesture_ArrasteNaoRemoveSelecaoExistente(t *testing.T) {
	slots := NewSlots(6, 24)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	base := NewSelection().AddRange(slots, nil, "ana", "09:00", "09:30")

	g := BeginGesture(DefaultGestureConfig, slots, nil, base, "ana", "09:15", start)
	g, _ = g.Move("09:45", start.Add(time.Second))

	sel := g.End()
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, sel.Labels(slots, "ana"))
	assert.Equal(t, base, g.Cancel())
}

func TestHitTable(t *testing.T) {
	slots := NewSlots(9, 10)
	table := NewHitTable(Layout{
		OriginX:    100,
		OriginY:    50,
		CellWidth:  20,
		CellHeight: 30,
		Employees:  []string{"ana", "bruno"},
		Slots:      slots,
	})

	cell, ok := table.Lookup(125, 85)
	assert.True(t, ok)
	assert.Equal(t, Cell{EmployeeID: "bruno", Label: "09:15"}, cell)

	_, ok = table.Lookup(99, 60)
	assert.False(t, ok)
	_, ok = table.Lookup(100+20*5, 60)
	assert.False(t, ok)
	_, ok = table.Lookup(110, 50+30*2)
	assert.False(t, ok)

	x, y, w, h, ok := table.Rect(Cell{EmployeeID: "bruno", Label: "09:15"})
	assert.True(t, ok)
	assert.Equal(t, []float64{120, 80, 20, 30}, []float64{x, y, w, h})

	back, ok := table.Lookup(x+1, y+1)
	assert.True(t, ok)
	assert.Equal(t, Cell{EmployeeID: "bruno", Label: "09:15"}, back)
}
