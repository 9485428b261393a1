package orders

import "github.com/SebastianPortocarrero/TFVitanza/models"

// Steps is the linear status chain rendered as the progress bar, in order.
// Cancelled is deliberately absent: it is a distinct terminal banner, not a
// position on the bar.
var Steps = []models.OrderStatus{
	models.OrderStatusReceived,
	models.OrderStatusPreparing,
	models.OrderStatusReady,
	models.OrderStatusEnRoute,
	models.OrderStatusDelivered,
}

// StepLabels maps each chain status to its display label.
var StepLabels = map[models.OrderStatus]string{
	models.OrderStatusReceived:  "Recibido",
	models.OrderStatusPreparing: "Preparando",
	models.OrderStatusReady:     "Listo",
	models.OrderStatusEnRoute:   "En Camino",
	models.OrderStatusDelivered: "Entregado",
}

// StepIndex returns the ordinal position of a status on the linear chain.
// ok is false for cancelled and unknown statuses.
func StepIndex(status models.OrderStatus) (int, bool) {
	for i, s := range Steps {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

// Step is one position of the rendered progress indicator.
type Step struct {
	Status    models.OrderStatus `json:"status"`
	Label     string             `json:"label"`
	Completed bool               `json:"completed"`
	Current   bool               `json:"current"`
}

// Progress is the display projection of an order's status.
type Progress struct {
	Steps     []Step `json:"steps"`
	Current   int    `json:"current"`
	Cancelled bool   `json:"cancelled"`
	Terminal  bool   `json:"terminal"`
}

// blankSteps renders the chain with no step completed or current.
func blankSteps() []Step {
	steps := make([]Step, len(Steps))
	for i, s := range Steps {
		steps[i] = Step{Status: s, Label: StepLabels[s]}
	}
	return steps
}

// Project maps a status to its progress display. A cancelled order gets
// Cancelled=true with no current step rather than a bogus index. A status
// outside the chain renders the same blank bar so a bad stored value is
// visibly wrong instead of masquerading as a fresh order.
func Project(status models.OrderStatus) Progress {
	if status == models.OrderStatusCancelled {
		return Progress{Steps: blankSteps(), Cancelled: true, Terminal: true}
	}

	idx, ok := StepIndex(status)
	if !ok {
		return Progress{Steps: blankSteps()}
	}

	steps := make([]Step, len(Steps))
	for i, s := range Steps {
		steps[i] = Step{
			Status:    s,
			Label:     StepLabels[s],
			Completed: i <= idx,
			Current:   i == idx,
		}
	}
	return Progress{
		Steps:    steps,
		Current:  idx,
		Terminal: status == models.OrderStatusDelivered,
	}
}

// IsTerminal reports whether no further transitions are allowed.
func IsTerminal(status models.OrderStatus) bool {
	return status == models.OrderStatusDelivered || status == models.OrderStatusCancelled
}

// CanTransition validates an operator status change: forward moves along the
// chain, or cancellation from any non-terminal state. Backward moves are
// rejected.
func CanTransition(from, to models.OrderStatus) bool {
	if IsTerminal(from) {
		return false
	}
	if to == models.OrderStatusCancelled {
		return true
	}

	fromIdx, fromOK := StepIndex(from)
	toIdx, toOK := StepIndex(to)
	if !fromOK || !toOK {
		return false
	}
	return toIdx > fromIdx
}
