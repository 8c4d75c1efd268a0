// Package sentiment loads and evaluates a pre-trained text classification
// pipeline. The artifact is produced offline by the training utility and is
// treated as opaque by everything above the prediction service: a TF-IDF
// vectorizer followed by a multinomial naive Bayes classifier, serialized as
// JSON.
package sentiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

type artifact struct {
	ModelType      string         `json:"model_type"`
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	Classes        []string       `json:"classes"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
}

// Classifier is a read-only handle over a loaded pipeline. It is safe for
// concurrent use after Load returns.
type Classifier struct {
	modelType      string
	vocabulary     map[string]int
	idf            []float64
	classes        []string
	classLogPrior  []float64
	featureLogProb [][]float64
}

// Load reads and validates a serialized pipeline from path.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode model file: %w", err)
	}

	if len(a.Vocabulary) == 0 {
		return nil, errors.New("model artifact has an empty vocabulary")
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return nil, fmt.Errorf("idf length %d does not match vocabulary size %d", len(a.IDF), len(a.Vocabulary))
	}
	if len(a.Classes) == 0 {
		return nil, errors.New("model artifact has no classes")
	}
	if len(a.ClassLogPrior) != len(a.Classes) {
		return nil, fmt.Errorf("class_log_prior length %d does not match class count %d", len(a.ClassLogPrior), len(a.Classes))
	}
	if len(a.FeatureLogProb) != len(a.Classes) {
		return nil, fmt.Errorf("feature_log_prob has %d rows, expected %d", len(a.FeatureLogProb), len(a.Classes))
	}
	for i, row := range a.FeatureLogProb {
		if len(row) != len(a.Vocabulary) {
			return nil, fmt.Errorf("feature_log_prob row %d has %d columns, expected %d", i, len(row), len(a.Vocabulary))
		}
	}
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.IDF) {
			return nil, fmt.Errorf("vocabulary term %q maps to out-of-range index %d", term, idx)
		}
	}

	modelType := a.ModelType
	if modelType == "" {
		modelType = "Pipeline"
	}

	return &Classifier{
		modelType:      modelType,
		vocabulary:     a.Vocabulary,
		idf:            a.IDF,
		classes:        a.Classes,
		classLogPrior:  a.ClassLogPrior,
		featureLogProb: a.FeatureLogProb,
	}, nil
}

// ModelType reports the serialized pipeline's type name.
func (c *Classifier) ModelType() string {
	return c.modelType
}

// Classes returns the class labels in probability-vector order.
func (c *Classifier) Classes() []string {
	out := make([]string, len(c.classes))
	copy(out, c.classes)
	return out
}

// Predict returns the most probable class label for each text.
func (c *Classifier) Predict(texts []string) ([]string, error) {
	probas, err := c.PredictProba(texts)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(probas))
	for i, proba := range probas {
		best := 0
		for j := 1; j < len(proba); j++ {
			if proba[j] > proba[best] {
				best = j
			}
		}
		labels[i] = c.classes[best]
	}

	return labels, nil
}

// PredictProba returns, for each text, the class probability vector in the
// order reported by Classes.
func (c *Classifier) PredictProba(texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, errors.New("no texts to classify")
	}

	probas := make([][]float64, len(texts))
	for i, text := range texts {
		probas[i] = c.classProbabilities(c.vectorize(text))
	}

	return probas, nil
}

// vectorize builds the l2-normalized tf-idf vector for a single text.
// Terms outside the training vocabulary are ignored.
func (c *Classifier) vectorize(text string) map[int]float64 {
	counts := make(map[int]int)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if idx, ok := c.vocabulary[token]; ok {
			counts[idx]++
		}
	}

	vec := make(map[int]float64, len(counts))
	var norm float64
	for idx, count := range counts {
		w := float64(count) * c.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}

	return vec
}

// classProbabilities evaluates the naive Bayes joint log likelihood for each
// class and normalizes with a numerically stable softmax.
func (c *Classifier) classProbabilities(vec map[int]float64) []float64 {
	scores := make([]float64, len(c.classes))
	for k := range c.classes {
		score := c.classLogPrior[k]
		for idx, w := range vec {
			score += w * c.featureLogProb[k][idx]
		}
		scores[k] = score
	}

	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	probas := make([]float64, len(scores))
	for k, s := range scores {
		probas[k] = math.Exp(s - maxScore)
		sum += probas[k]
	}
	for k := range probas {
		probas[k] /= sum
	}

	return probas
}
