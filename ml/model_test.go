package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReadManifest(t *testing.T) {
	path := writeManifest(t, `
path: modelo_xgboost.bin
transformation: true
features:
  - FERIADO
  - MES_SIN
`)

	m, err := ReadManifest(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "modelo_xgboost.bin"), m.Path)
	assert.Equal(t, FormatXGBoost, m.Format)
	assert.Equal(t, "modelo_xgboost.bin", m.Name)
	assert.True(t, m.Transformation)
	assert.Equal(t, []string{"FERIADO", "MES_SIN"}, m.Features)
}

func TestReadManifestRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no path":          "features: [a]\n",
		"no features":      "path: m.bin\n",
		"repeated feature": "path: m.bin\nfeatures: [a, a]\n",
		"bad yaml":         "path: [unterminated\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadManifest(writeManifest(t, body))
			assert.Error(t, err)
		})
	}
}

func TestReadManifestMissingFile(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGradientBoostedUnsupportedFormat(t *testing.T) {
	_, err := LoadGradientBoosted("model.onnx", Format("onnx"), false)
	assert.ErrorContains(t, err, "unsupported model format")
}

func TestLoadModelMissingArtifact(t *testing.T) {
	path := writeManifest(t, "path: missing.bin\nformat: lightgbm\nfeatures: [a]\n")

	_, err := LoadModel(path)

	assert.ErrorContains(t, err, "loading lightgbm model")
}

func TestModelPredictFrameClamps(t *testing.T) {
	inner := &fakeRegressor{}
	m := NewModel("test", []string{"x", "y"}, inner)

	got, err := m.PredictFrame(Frame{{"y": -10, "x": 3}, {"x": 1, "y": 2}})

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3}, got)
	assert.Equal(t, [][]float64{{3, -10}, {1, 2}}, inner.predicted)
}

func TestModelPredictFrameMissingFeature(t *testing.T) {
	inner := &fakeRegressor{}
	m := NewModel("test", []string{"x", "y"}, inner)

	_, err := m.PredictFrame(Frame{{"x": 1}})

	assert.ErrorIs(t, err, ErrMissingFeature)
	assert.Nil(t, inner.predicted)
}

func TestGetModelLifecycle(t *testing.T) {
	SetModel(nil)
	_, err := GetModel()
	assert.ErrorIs(t, err, ErrModelNotLoaded)

	m := NewModel("test", []string{"x"}, &fakeRegressor{})
	SetModel(m)
	defer SetModel(nil)

	got, err := GetModel()
	require.NoError(t, err)
	assert.Same(t, m, got)
}
