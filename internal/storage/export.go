package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/isingsim/internal/metrics"
)

// ExportData bundles a run in one JSON document. Frames, Energies and
// AverageSpin are parallel arrays in capture order.
type ExportData struct {
	Run         RunMetadata           `json:"run"`
	Observables []metrics.Observation `json:"observables"`
	Energies    []float64             `json:"energies"`
	AverageSpin []float64             `json:"average_spin"`
	Frames      []SnapshotRecord      `json:"frames,omitempty"`
}

func NewExportData(meta RunMetadata, obs []metrics.Observation, frames []SnapshotRecord) ExportData {
	data := ExportData{
		Run:         meta,
		Observables: obs,
		Energies:    make([]float64, len(obs)),
		AverageSpin: make([]float64, len(obs)),
		Frames:      frames,
	}
	for i, o := range obs {
		data.Energies[i] = o.Energy
		data.AverageSpin[i] = o.Magnetization
	}
	return data
}

func ExportJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Export loads a stored run and writes it as one JSON document.
func (s *Store) Export(w io.Writer, runID string, withFrames bool) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	obs, err := s.LoadObservables(runID)
	if err != nil {
		return err
	}
	var frames []SnapshotRecord
	if withFrames {
		if frames, err = s.LoadSnapshots(runID); err != nil {
			return err
		}
	}
	return ExportJSON(w, NewExportData(*meta, obs, frames))
}
