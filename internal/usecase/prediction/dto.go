package prediction

type PredictRequest struct {
	Text string `json:"text" validate:"required"`
}

type PredictResponse struct {
	Text        string  `json:"text"`
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
	PredictedBy string  `json:"predicted_by"`
	User        string  `json:"user"`
}

type BatchPredictRequest struct {
	Texts []string `json:"texts" validate:"required,min=1"`
}

type BatchPrediction struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

type BatchPredictResponse struct {
	Predictions []BatchPrediction `json:"predictions"`
	PredictedBy string            `json:"predicted_by"`
	User        string            `json:"user"`
	TotalCount  int               `json:"total_count"`
}

type ModelInfoResponse struct {
	Status     string   `json:"status"`
	ModelType  string   `json:"model_type,omitempty"`
	Classes    []string `json:"classes,omitempty"`
	InstanceID string   `json:"instance_id"`
	Hostname   string   `json:"hostname"`
	ModelPath  string   `json:"model_path,omitempty"`
}
