package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
	"github.com/san-kum/isingsim/internal/sim"
)

const (
	metadataFile    = "metadata.json"
	observablesFile = "observables.csv"
	snapshotsFile   = "snapshots.json"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Model          string             `json:"model"`
	Hamiltonian    string             `json:"hamiltonian"`
	Timestamp      time.Time          `json:"timestamp"`
	Seed           int64              `json:"seed"`
	Size           int                `json:"size"`
	Dim            int                `json:"dim"`
	Radius         int                `json:"radius,omitempty"`
	Sites          int                `json:"sites"`
	Temperature    float64            `json:"temperature"`
	Coupling       float64            `json:"coupling"`
	Field          float64            `json:"field"`
	Steps          int                `json:"steps"`
	CaptureRate    int                `json:"capture_rate"`
	BurnIn         int                `json:"burn_in"`
	SweepsDone     int                `json:"sweeps_done"`
	AcceptanceRate float64            `json:"acceptance_rate"`
	State          string             `json:"state"`
	Metrics        map[string]float64 `json:"metrics"`

	HamiltonianParams map[string]float64 `json:"hamiltonian_params,omitempty"`
}

// SnapshotRecord is the stored form of an ising.Snapshot: all N^D cells in
// row-major order.
type SnapshotRecord struct {
	Step  int    `json:"step"`
	Size  int    `json:"size"`
	Dim   int    `json:"dim"`
	Spins []int8 `json:"spins"`
}

// Rows returns a 2D record as N rows, or nil for 3D records.
func (r SnapshotRecord) Rows() [][]int8 {
	if r.Dim != 2 || len(r.Spins) != r.Size*r.Size {
		return nil
	}
	rows := make([][]int8, r.Size)
	for i := range rows {
		rows[i] = r.Spins[i*r.Size : (i+1)*r.Size]
	}
	return rows
}

// Plane returns the i-th N x N slab along the first axis of a 3D record.
// For 2D records it returns Rows and ignores i.
func (r SnapshotRecord) Plane(i int) [][]int8 {
	if r.Dim == 2 {
		return r.Rows()
	}
	n := r.Size
	if i < 0 || i >= n || len(r.Spins) != n*n*n {
		return nil
	}
	slab := r.Spins[i*n*n : (i+1)*n*n]
	rows := make([][]int8, n)
	for j := range rows {
		rows[j] = slab[j*n : (j+1)*n]
	}
	return rows
}

func NewSnapshotRecord(s ising.Snapshot) SnapshotRecord {
	return SnapshotRecord{Step: s.Step(), Size: s.Size(), Dim: s.Dim(), Spins: s.Spins()}
}

func (s *Store) Save(cfg config.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", cfg.Model, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Model:          cfg.Model,
		Hamiltonian:    cfg.HamiltonianName(),
		Timestamp:      time.Now(),
		Seed:           cfg.Seed,
		Size:           cfg.Size,
		Dim:            cfg.Dim,
		Radius:         cfg.Radius,
		Temperature:    cfg.Temperature,
		Coupling:       cfg.Coupling,
		Field:          cfg.Field,
		Steps:          cfg.Steps,
		CaptureRate:    cfg.CaptureRate,
		BurnIn:         cfg.BurnIn,
		SweepsDone:     result.SweepsDone,
		AcceptanceRate: result.AcceptanceRate(),
		State:          result.State.String(),
		Metrics:        result.Metrics,

		HamiltonianParams: result.EnergyParams,
	}
	if result.Lattice != nil {
		meta.Sites = result.Lattice.Len()
		meta.Dim = result.Lattice.Dim()
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeObservables(filepath.Join(runDir, observablesFile), result.Observables); err != nil {
		return "", err
	}

	if len(result.Snapshots) > 0 {
		records := make([]SnapshotRecord, len(result.Snapshots))
		for i, snap := range result.Snapshots {
			records[i] = NewSnapshotRecord(snap)
		}
		if err := writeJSON(filepath.Join(runDir, snapshotsFile), records); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SaveReplicas stores the results of an ensemble, replica i under seed
// cfg.Seed+i. Nil entries, left by replicas that never produced a result,
// are skipped and get an empty ID.
func (s *Store) SaveReplicas(cfg config.Config, results []*sim.Result) ([]string, error) {
	ids := make([]string, len(results))
	for i, result := range results {
		if result == nil {
			continue
		}
		rcfg := cfg
		rcfg.Seed = cfg.Seed + int64(i)
		id, err := s.Save(rcfg, result)
		if err != nil {
			return ids, fmt.Errorf("replica %d: %w", i, err)
		}
		ids[i] = id
	}
	return ids, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeObservables(path string, obs []metrics.Observation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteObservablesCSV(f, obs); err != nil {
		return err
	}
	return f.Close()
}

// WriteObservablesCSV writes a step,energy,magnetization table.
func WriteObservablesCSV(w io.Writer, obs []metrics.Observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "energy", "magnetization"}); err != nil {
		return err
	}
	for _, o := range obs {
		row := []string{
			strconv.Itoa(o.Step),
			strconv.FormatFloat(o.Energy, 'f', 6, 64),
			strconv.FormatFloat(o.Magnetization, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadObservables(runID string) ([]metrics.Observation, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, observablesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	obs := make([]metrics.Observation, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", observablesFile, i+1, err)
		}
		energy, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", observablesFile, i+1, err)
		}
		mag, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", observablesFile, i+1, err)
		}
		obs = append(obs, metrics.Observation{Step: step, Energy: energy, Magnetization: mag})
	}

	return obs, nil
}

// LoadSnapshots returns the stored snapshots, or none if the run kept none.
func (s *Store) LoadSnapshots(runID string) ([]SnapshotRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, snapshotsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotRecord{}, nil
		}
		return nil, err
	}

	var records []SnapshotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
