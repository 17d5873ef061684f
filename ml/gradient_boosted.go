package ml

import (
	"fmt"

	"github.com/dmitryikh/leaves"
)

// Parameter names understood by GradientBoosted.
const (
	ParamEstimators = "n_estimators"
	ParamThreads    = "n_threads"
)

// GradientBoosted serves predictions from a pre-trained tree ensemble.
type GradientBoosted struct {
	ensemble    *leaves.Ensemble
	nEstimators int
	nThreads    int
}

var _ Regressor = (*GradientBoosted)(nil)

// NewGradientBoosted uses every tree of ensemble on a single thread.
func NewGradientBoosted(ensemble *leaves.Ensemble) *GradientBoosted {
	return &GradientBoosted{ensemble: ensemble, nThreads: 1}
}

// LoadGradientBoosted reads an XGBoost binary or LightGBM text model.
func LoadGradientBoosted(path string, format Format, transformation bool) (*GradientBoosted, error) {
	var (
		ensemble *leaves.Ensemble
		err      error
	)
	switch format {
	case FormatXGBoost:
		ensemble, err = leaves.XGEnsembleFromFile(path, transformation)
	case FormatLightGBM:
		ensemble, err = leaves.LGEnsembleFromFile(path, transformation)
	default:
		return nil, fmt.Errorf("ml: unsupported model format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("ml: loading %s model %s: %w", format, path, err)
	}
	return NewGradientBoosted(ensemble), nil
}

// NFeatures is the width of the rows the ensemble expects.
func (g *GradientBoosted) NFeatures() int {
	return g.ensemble.NFeatures()
}

// Name identifies the ensemble's origin (xgboost or lightgbm).
func (g *GradientBoosted) Name() string {
	return g.ensemble.Name()
}

func (g *GradientBoosted) Fit(features [][]float64, targets []float64) error {
	return ErrTrainingUnsupported
}

func (g *GradientBoosted) Predict(features [][]float64) ([]float64, error) {
	ncols := g.ensemble.NFeatures()
	nrows := len(features)
	if nrows == 0 {
		return []float64{}, nil
	}

	vals := make([]float64, 0, nrows*ncols)
	for i, row := range features {
		if len(row) != ncols {
			return nil, fmt.Errorf("%w: row %d has %d columns, model expects %d", ErrShapeMismatch, i, len(row), ncols)
		}
		vals = append(vals, row...)
	}

	out := make([]float64, nrows*g.ensemble.NOutputGroups())
	if err := g.ensemble.PredictDense(vals, nrows, ncols, out, g.nEstimators, g.nThreads); err != nil {
		return nil, fmt.Errorf("ml: predict: %w", err)
	}
	if g.ensemble.NOutputGroups() == 1 {
		return out, nil
	}

	// Multi-output ensembles: keep the first output per row.
	preds := make([]float64, nrows)
	for i := range preds {
		preds[i] = out[i*g.ensemble.NOutputGroups()]
	}
	return preds, nil
}

func (g *GradientBoosted) Params() Params {
	return Params{
		ParamEstimators: g.nEstimators,
		ParamThreads:    g.nThreads,
	}
}

// SetParams accepts n_estimators (0 means all trees) and n_threads (>= 1).
func (g *GradientBoosted) SetParams(params Params) error {
	for key, value := range params {
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("ml: parameter %s must be an int, got %T", key, value)
		}
		switch key {
		case ParamEstimators:
			if n < 0 || n > g.ensemble.NEstimators() {
				return fmt.Errorf("ml: %s out of range: %d", key, n)
			}
			g.nEstimators = n
		case ParamThreads:
			if n < 1 {
				return fmt.Errorf("ml: %s must be positive: %d", key, n)
			}
			g.nThreads = n
		default:
			return fmt.Errorf("ml: unknown parameter %s", key)
		}
	}
	return nil
}
