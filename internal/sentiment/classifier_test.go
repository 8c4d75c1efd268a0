package sentiment

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, a map[string]interface{}) string {
	t.Helper()

	data, err := json.Marshal(a)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func testArtifact() map[string]interface{} {
	return map[string]interface{}{
		"model_type": "Pipeline",
		"vocabulary": map[string]int{"love": 0, "terrible": 1, "okay": 2},
		"idf":        []float64{1.2, 1.3, 1.1},
		"classes":    []string{"negative", "neutral", "positive"},
		"class_log_prior": []float64{
			math.Log(1.0 / 3.0), math.Log(1.0 / 3.0), math.Log(1.0 / 3.0),
		},
		"feature_log_prob": [][]float64{
			{-5.0, -0.1, -3.0}, // negative: dominated by "terrible"
			{-4.0, -4.0, -0.1}, // neutral: dominated by "okay"
			{-0.1, -5.0, -3.0}, // positive: dominated by "love"
		},
	}
}

func loadTestClassifier(t *testing.T) *Classifier {
	t.Helper()

	clf, err := Load(writeArtifact(t, testArtifact()))
	require.NoError(t, err)

	return clf
}

func TestLoad(t *testing.T) {
	t.Parallel()

	clf := loadTestClassifier(t)

	assert.Equal(t, "Pipeline", clf.ModelType())
	assert.Equal(t, []string{"negative", "neutral", "positive"}, clf.Classes())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}

func TestLoad_InvalidArtifact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(a map[string]interface{})
	}{
		{
			name:   "empty vocabulary",
			mutate: func(a map[string]interface{}) { a["vocabulary"] = map[string]int{} },
		},
		{
			name:   "idf length mismatch",
			mutate: func(a map[string]interface{}) { a["idf"] = []float64{1.0} },
		},
		{
			name:   "no classes",
			mutate: func(a map[string]interface{}) { a["classes"] = []string{} },
		},
		{
			name:   "prior length mismatch",
			mutate: func(a map[string]interface{}) { a["class_log_prior"] = []float64{-1.0} },
		},
		{
			name: "feature matrix shape mismatch",
			mutate: func(a map[string]interface{}) {
				a["feature_log_prob"] = [][]float64{{-1.0, -1.0}}
			},
		},
		{
			name: "vocabulary index out of range",
			mutate: func(a map[string]interface{}) {
				a["vocabulary"] = map[string]int{"love": 0, "terrible": 1, "okay": 7}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testArtifact()
			tt.mutate(a)

			_, err := Load(writeArtifact(t, a))
			require.Error(t, err)
		})
	}
}

func TestLoad_CorruptJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestPredict(t *testing.T) {
	t.Parallel()

	clf := loadTestClassifier(t)

	labels, err := clf.Predict([]string{
		"I love this product",
		"This is terrible",
		"It's okay I guess",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"positive", "negative", "neutral"}, labels)
}

func TestPredict_NoTexts(t *testing.T) {
	t.Parallel()

	clf := loadTestClassifier(t)

	_, err := clf.Predict(nil)
	require.Error(t, err)

	_, err = clf.PredictProba([]string{})
	require.Error(t, err)
}

func TestPredictProba(t *testing.T) {
	t.Parallel()

	clf := loadTestClassifier(t)

	probas, err := clf.PredictProba([]string{"I love this", "unseen words only"})
	require.NoError(t, err)
	require.Len(t, probas, 2)

	for _, proba := range probas {
		require.Len(t, proba, 3)
		var sum float64
		for _, p := range proba {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	// "love" dominates the positive class
	assert.Greater(t, probas[0][2], probas[0][0])
	assert.Greater(t, probas[0][2], probas[0][1])

	// A text with no known terms falls back to the class priors (uniform here)
	assert.InDelta(t, probas[1][0], probas[1][1], 1e-9)
	assert.InDelta(t, probas[1][1], probas[1][2], 1e-9)
}

func TestPredict_AgreesWithProba(t *testing.T) {
	t.Parallel()

	clf := loadTestClassifier(t)
	texts := []string{"love love terrible", "terrible okay", ""}

	labels, err := clf.Predict(texts)
	require.NoError(t, err)
	probas, err := clf.PredictProba(texts)
	require.NoError(t, err)

	classes := clf.Classes()
	for i := range texts {
		best := 0
		for j := 1; j < len(probas[i]); j++ {
			if probas[i][j] > probas[i][best] {
				best = j
			}
		}
		assert.Equal(t, classes[best], labels[i])
	}
}
