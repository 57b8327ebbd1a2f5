package grid

import "time"

// GestureConfig controla a distinção entre toque e arraste.
type GestureConfig struct {
	// DragDelay é o tempo parado na célula inicial após o qual o gesto entra
	// em modo de arraste. Sair da célula inicial antes disso também entra.
	DragDelay time.Duration
	// MoveThrottle limita a frequência de atualização da pré-visualização.
	MoveThrottle time.Duration
}

var DefaultGestureConfig = GestureConfig{
	DragDelay:    120 * time.Millisecond,
	MoveThrottle: 32 * time.Millisecond,
}

// Gesture acompanha um toque/arraste sobre a linha de um funcionário.
//
// Regra única para mouse e toque: um toque alterna uma célula; um arraste
// que cobre mais de uma célula adiciona o intervalo coberto à seleção
// (nunca remove).
type Gesture struct {
	cfg        GestureConfig
	slots      Slots
	occ        Occupancy
	base       Selection
	employeeID string
	anchor     string
	startedAt  time.Time

	dragging    bool
	pending     string
	lastApplied time.Time
	preview     Selection
}

// BeginGesture inicia um gesto na célula (employeeID, label).
func BeginGesture(cfg GestureConfig, slots Slots, occ Occupancy, base Selection, employeeID, label string, at time.Time) Gesture {
	return Gesture{
		cfg:        cfg,
		slots:      slots,
		occ:        occ,
		base:       base,
		employeeID: employeeID,
		anchor:     label,
		startedAt:  at,
		pending:    label,
		preview:    base,
	}
}

func (g Gesture) EmployeeID() string { return g.employeeID }
func (g Gesture) Anchor() string     { return g.anchor }
func (g Gesture) Dragging() bool     { return g.dragging }

// Move registra a nova posição do ponteiro e retorna a pré-visualização.
// Movimentos dentro do intervalo de throttle ficam pendentes e são
// aplicados no próximo movimento ou em End.
func (g Gesture) Move(label string, at time.Time) (Gesture, Selection) {
	if !g.slots.Contains(label) {
		return g, g.preview
	}
	g.pending = label

	if !g.dragging {
		if label == g.anchor && at.Sub(g.startedAt) < g.cfg.DragDelay {
			return g, g.preview
		}
		g.dragging = true
	} else if at.Sub(g.lastApplied) < g.cfg.MoveThrottle {
		return g, g.preview
	}

	g.lastApplied = at
	g.preview = g.resolve(label)
	return g, g.preview
}

// End finaliza o gesto aplicando sempre a última posição conhecida.
func (g Gesture) End() Selection {
	return g.resolve(g.pending)
}

// resolve aplica a regra única: mais de uma célula adiciona o intervalo,
// uma célula só alterna a âncora.
func (g Gesture) resolve(label string) Selection {
	if len(g.slots.Between(g.anchor, label)) > 1 {
		return g.base.AddRange(g.slots, g.occ, g.employeeID, g.anchor, label)
	}
	return g.base.Toggle(g.slots, g.occ, g.employeeID, g.anchor)
}

// Cancel descarta o gesto.
func (g Gesture) Cancel() Selection {
	return g.base
}
