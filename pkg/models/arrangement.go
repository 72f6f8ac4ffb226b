package models

// ArrangementKind selects the composition variant.
type ArrangementKind string

const (
	ArrangementSequential ArrangementKind = "sequential"
	ArrangementParallel   ArrangementKind = "parallel"
	ArrangementCrossRoom  ArrangementKind = "cross_room"
)

// InstrumentOverrides are per-step tuning knobs applied for the duration of
// one composition step only.
type InstrumentOverrides struct {
	MaxIterations       *int     `json:"max_iterations,omitempty"`
	ConfidenceThreshold *float64 `json:"confidence_threshold,omitempty"`
}

// ArrangementStep is one element of a composition. Sequential steps use
// Instrument (+Config); parallel branches use Instrument; cross-room
// branches use RoomID and SubQuery.
type ArrangementStep struct {
	Instrument string               `json:"instrument,omitempty"`
	Config     *InstrumentOverrides `json:"config,omitempty"`
	RoomID     string               `json:"room_id,omitempty"`
	SubQuery   string               `json:"sub_query,omitempty"`
}

// ArrangementSpec is a composition specification, inline or saved.
type ArrangementSpec struct {
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Kind        ArrangementKind   `json:"kind"`
	Steps       []ArrangementStep `json:"steps"`
	// Merge names the fan-in instrument for parallel and cross-room
	// arrangements. Defaults to synthesis.
	Merge string `json:"merge,omitempty"`
}
