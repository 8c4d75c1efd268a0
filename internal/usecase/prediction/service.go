package prediction

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"sentiment-analysis-api/internal/config"
	"sentiment-analysis-api/internal/logger"
	appErrors "sentiment-analysis-api/pkg/errors"
	"sentiment-analysis-api/pkg/utils"
)

// Classifier is the opaque model surface the facade depends on.
type Classifier interface {
	Predict(texts []string) ([]string, error)
	PredictProba(texts []string) ([][]float64, error)
	Classes() []string
	ModelType() string
}

// Service forwards text to the classifier and reshapes its output. The
// classifier handle is constructed once at startup and injected here; a nil
// handle means the model artifact could not be loaded and every prediction
// reports the service as unavailable.
type Service struct {
	classifier Classifier
	instanceID string
	modelPath  string
}

// NewService creates a new prediction service. classifier may be nil.
func NewService(classifier Classifier, cfg *config.Config) *Service {
	return &Service{
		classifier: classifier,
		instanceID: cfg.App.InstanceID,
		modelPath:  cfg.Model.Path,
	}
}

// ModelLoaded reports whether a classifier is available.
func (s *Service) ModelLoaded() bool {
	return s.classifier != nil
}

// Predict classifies a single text for the named user.
func (s *Service) Predict(ctx context.Context, username string, req *PredictRequest) (*PredictResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if s.classifier == nil {
		logger.Error("Prediction requested but no model is loaded")
		return nil, appErrors.ErrModelUnavailable
	}

	sentiment, confidence, err := s.classify(req.Text)
	if err != nil {
		logger.Error("Prediction error",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrPredictionFailed, err)
	}

	logger.Info("Prediction completed",
		zap.String("username", username),
		zap.String("sentiment", sentiment),
		zap.Float64("confidence", confidence),
		zap.String("instance_id", s.instanceID),
	)

	return &PredictResponse{
		Text:        req.Text,
		Sentiment:   sentiment,
		Confidence:  confidence,
		PredictedBy: s.instanceID,
		User:        username,
	}, nil
}

// PredictBatch classifies multiple texts at once.
func (s *Service) PredictBatch(ctx context.Context, username string, req *BatchPredictRequest) (*BatchPredictResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if s.classifier == nil {
		logger.Error("Batch prediction requested but no model is loaded")
		return nil, appErrors.ErrModelUnavailable
	}

	labels, err := s.classifier.Predict(req.Texts)
	if err != nil {
		logger.Error("Batch prediction error",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrPredictionFailed, err)
	}

	probas, err := s.classifier.PredictProba(req.Texts)
	if err != nil {
		logger.Error("Batch prediction error",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrPredictionFailed, err)
	}
	if len(labels) != len(req.Texts) || len(probas) != len(req.Texts) {
		return nil, fmt.Errorf("%w: classifier returned %d labels for %d texts",
			appErrors.ErrPredictionFailed, len(labels), len(req.Texts))
	}

	predictions := make([]BatchPrediction, len(req.Texts))
	for i, text := range req.Texts {
		predictions[i] = BatchPrediction{
			Text:       text,
			Sentiment:  labels[i],
			Confidence: maxProbability(probas[i]),
		}
	}

	logger.Info("Batch prediction completed",
		zap.String("username", username),
		zap.Int("count", len(predictions)),
		zap.String("instance_id", s.instanceID),
	)

	return &BatchPredictResponse{
		Predictions: predictions,
		PredictedBy: s.instanceID,
		User:        username,
		TotalCount:  len(predictions),
	}, nil
}

// ModelInfo describes the loaded model, or reports that none is loaded.
func (s *Service) ModelInfo() *ModelInfoResponse {
	hostname, _ := os.Hostname()

	if s.classifier == nil {
		return &ModelInfoResponse{
			Status:     "not_loaded",
			InstanceID: s.instanceID,
			Hostname:   hostname,
		}
	}

	return &ModelInfoResponse{
		Status:     "loaded",
		ModelType:  s.classifier.ModelType(),
		Classes:    s.classifier.Classes(),
		InstanceID: s.instanceID,
		Hostname:   hostname,
		ModelPath:  s.modelPath,
	}
}

func (s *Service) classify(text string) (string, float64, error) {
	labels, err := s.classifier.Predict([]string{text})
	if err != nil {
		return "", 0, err
	}

	probas, err := s.classifier.PredictProba([]string{text})
	if err != nil {
		return "", 0, err
	}
	if len(labels) != 1 || len(probas) != 1 {
		return "", 0, fmt.Errorf("classifier returned %d labels and %d probability rows for one text",
			len(labels), len(probas))
	}

	return labels[0], maxProbability(probas[0]), nil
}

// maxProbability is the confidence score: the maximum class probability.
func maxProbability(proba []float64) float64 {
	var max float64
	for _, p := range proba {
		if p > max {
			max = p
		}
	}
	return max
}
