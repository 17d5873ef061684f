package ml

import (
	"fmt"
	"math"
)

// NonNegative decorates a Regressor so every prediction is floored at zero.
// Training and parameters pass straight through to the wrapped estimator.
// A NaN prediction is an error.
type NonNegative struct {
	estimator Regressor
}

var _ Regressor = (*NonNegative)(nil)

// NewNonNegative wraps estimator.
func NewNonNegative(estimator Regressor) *NonNegative {
	return &NonNegative{estimator: estimator}
}

// Unwrap returns the decorated estimator.
func (n *NonNegative) Unwrap() Regressor {
	return n.estimator
}

func (n *NonNegative) Fit(features [][]float64, targets []float64) error {
	return n.estimator.Fit(features, targets)
}

// FitChain fits the wrapped estimator and returns the wrapper for chaining.
func (n *NonNegative) FitChain(features [][]float64, targets []float64) (*NonNegative, error) {
	if err := n.Fit(features, targets); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *NonNegative) Predict(features [][]float64) ([]float64, error) {
	preds, err := n.estimator.Predict(features)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(preds))
	for i, p := range preds {
		if math.IsNaN(p) {
			return nil, fmt.Errorf("%w: row %d", ErrNaNPrediction, i)
		}
		out[i] = max(p, 0)
	}
	return out, nil
}

func (n *NonNegative) Params() Params {
	return n.estimator.Params()
}

func (n *NonNegative) SetParams(params Params) error {
	return n.estimator.SetParams(params)
}
