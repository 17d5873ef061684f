package ml

import "errors"

// ErrTrainingUnsupported is returned by estimators that can only load a
// pre-trained artifact.
var ErrTrainingUnsupported = errors.New("ml: estimator does not support training")

// ErrShapeMismatch is returned when a feature matrix does not match the
// estimator's expected width.
var ErrShapeMismatch = errors.New("ml: feature matrix shape mismatch")

// ErrNaNPrediction is returned when an estimator produces NaN, which has no
// non-negative counterpart.
var ErrNaNPrediction = errors.New("ml: estimator returned NaN")

// Params is an estimator's tunable parameter set.
type Params map[string]any

// Regressor is the capability set shared by every estimator, wrapped or not.
type Regressor interface {
	Fit(features [][]float64, targets []float64) error
	Predict(features [][]float64) ([]float64, error)
	Params() Params
	SetParams(params Params) error
}
