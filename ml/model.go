package ml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"mealforecast/logger"
)

// Format is the serialization of a model artifact.
type Format string

const (
	FormatXGBoost  Format = "xgboost"
	FormatLightGBM Format = "lightgbm"
)

// ErrModelNotLoaded is returned by GetModel before InitModel succeeded.
var ErrModelNotLoaded = errors.New("ml: model not loaded")

// Manifest describes a model artifact and the feature columns it consumes.
type Manifest struct {
	Name           string   `yaml:"name"`
	Path           string   `yaml:"path"`
	Format         Format   `yaml:"format"`
	Transformation bool     `yaml:"transformation"`
	Features       []string `yaml:"features"`
}

// ReadManifest loads a YAML manifest. A relative artifact path is resolved
// against the manifest's directory.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ml: reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ml: parsing manifest %s: %w", path, err)
	}
	if m.Path == "" {
		return nil, fmt.Errorf("ml: manifest %s has no model path", path)
	}
	if len(m.Features) == 0 {
		return nil, fmt.Errorf("ml: manifest %s lists no features", path)
	}
	seen := make(map[string]bool, len(m.Features))
	for _, f := range m.Features {
		if seen[f] {
			return nil, fmt.Errorf("ml: manifest %s repeats feature %s", path, f)
		}
		seen[f] = true
	}
	if m.Format == "" {
		m.Format = FormatXGBoost
	}
	if m.Name == "" {
		m.Name = filepath.Base(m.Path)
	}
	if !filepath.IsAbs(m.Path) {
		m.Path = filepath.Join(filepath.Dir(path), m.Path)
	}
	return &m, nil
}

// Model pairs a non-negative estimator with its feature column order.
// Engine names the library format the artifact came from, when known.
type Model struct {
	Name      string
	Engine    string
	Features  []string
	estimator Regressor
}

// NewModel wraps estimator so its predictions are never negative.
func NewModel(name string, features []string, estimator Regressor) *Model {
	return &Model{
		Name:      name,
		Features:  features,
		estimator: NewNonNegative(estimator),
	}
}

// LoadModel reads the manifest at path and the artifact it points to.
func LoadModel(path string) (*Model, error) {
	m, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}

	gb, err := LoadGradientBoosted(m.Path, m.Format, m.Transformation)
	if err != nil {
		return nil, err
	}
	if gb.NFeatures() != len(m.Features) {
		return nil, fmt.Errorf("%w: manifest lists %d features, model expects %d", ErrShapeMismatch, len(m.Features), gb.NFeatures())
	}
	model := NewModel(m.Name, m.Features, gb)
	model.Engine = gb.Name()
	return model, nil
}

// Estimator returns the non-negative estimator behind the model.
func (m *Model) Estimator() Regressor {
	return m.estimator
}

// PredictFrame predicts one value per frame row.
func (m *Model) PredictFrame(frame Frame) ([]float64, error) {
	matrix, err := frame.Matrix(m.Features)
	if err != nil {
		return nil, err
	}
	return m.estimator.Predict(matrix)
}

var (
	modelMu sync.RWMutex
	model   *Model
)

// InitModel loads the process-wide model. It is called once at startup.
func InitModel(manifestPath string) error {
	m, err := LoadModel(manifestPath)
	if err != nil {
		return err
	}
	SetModel(m)
	logger.Component("ml").Info().
		Str("model", m.Name).
		Str("engine", m.Engine).
		Int("features", len(m.Features)).
		Msg("Model loaded")
	return nil
}

// SetModel replaces the process-wide model.
func SetModel(m *Model) {
	modelMu.Lock()
	defer modelMu.Unlock()
	model = m
}

// GetModel returns the process-wide model.
func GetModel() (*Model, error) {
	modelMu.RLock()
	defer modelMu.RUnlock()
	if model == nil {
		return nil, ErrModelNotLoaded
	}
	return model, nil
}
