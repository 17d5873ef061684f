package ml

import "errors"

var errBoom = errors.New("boom")

type fakeRegressor struct {
	preds     []float64
	err       error
	params    Params
	fitCalls  int
	predicted [][]float64
}

func (f *fakeRegressor) Fit(features [][]float64, targets []float64) error {
	f.fitCalls++
	return f.err
}

func (f *fakeRegressor) Predict(features [][]float64) ([]float64, error) {
	f.predicted = features
	if f.err != nil {
		return nil, f.err
	}
	if f.preds != nil {
		return f.preds, nil
	}
	out := make([]float64, len(features))
	for i, row := range features {
		for _, v := range row {
			out[i] += v
		}
	}
	return out, nil
}

func (f *fakeRegressor) Params() Params {
	return f.params
}

func (f *fakeRegressor) SetParams(params Params) error {
	if f.params == nil {
		f.params = Params{}
	}
	for k, v := range params {
		f.params[k] = v
	}
	return nil
}
