package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/fine-tuning

// FineTuningJobRequest is the request body for POST /fine_tuning/jobs
type FineTuningJobRequest struct {
	Model           string                     `json:"model"`
	TrainingFile    string                     `json:"training_file"`
	ValidationFile  string                     `json:"validation_file,omitempty"`
	Suffix          string                     `json:"suffix,omitempty"`
	Seed            *int                       `json:"seed,omitempty"`
	Hyperparameters *FineTuningHyperparameters `json:"hyperparameters,omitempty"`
	Metadata        map[string]string          `json:"metadata,omitempty"`
}

// FineTuningHyperparameters are either "auto" or a number. Absent values
// are chosen by the service.
type FineTuningHyperparameters struct {
	NEpochs                any `json:"n_epochs,omitempty"`
	BatchSize              any `json:"batch_size,omitempty"`
	LearningRateMultiplier any `json:"learning_rate_multiplier,omitempty"`
}

// FineTuningJob is a fine-tuning job
type FineTuningJob struct {
	ID              string                     `json:"id"`
	Object          string                     `json:"object"`
	CreatedAt       int64                      `json:"created_at"`
	FinishedAt      int64                      `json:"finished_at,omitempty"`
	EstimatedFinish int64                      `json:"estimated_finish,omitempty"`
	Model           string                     `json:"model"`
	FineTunedModel  string                     `json:"fine_tuned_model,omitempty"`
	OrganizationID  string                     `json:"organization_id"`
	Status          string                     `json:"status"`
	Hyperparameters *FineTuningHyperparameters `json:"hyperparameters,omitempty"`
	TrainingFile    string                     `json:"training_file"`
	ValidationFile  string                     `json:"validation_file,omitempty"`
	ResultFiles     []string                   `json:"result_files"`
	TrainedTokens   int64                      `json:"trained_tokens,omitempty"`
	Seed            int                        `json:"seed"`
	Error           *FineTuningError           `json:"error,omitempty"`
	Metadata        map[string]string          `json:"metadata,omitempty"`
}

type FineTuningError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

// FineTuningEvent is a status update for a job
type FineTuningEvent struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// FineTuningCheckpoint is a model checkpoint saved during a job
type FineTuningCheckpoint struct {
	ID                       string             `json:"id"`
	Object                   string             `json:"object"`
	CreatedAt                int64              `json:"created_at"`
	FineTunedModelCheckpoint string             `json:"fine_tuned_model_checkpoint"`
	FineTuningJobID          string             `json:"fine_tuning_job_id"`
	StepNumber               int                `json:"step_number"`
	Metrics                  map[string]float64 `json:"metrics"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (j FineTuningJob) String() string {
	return Stringify(j)
}
