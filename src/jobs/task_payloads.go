package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeResponseReceived = "response:received"

type ResponsePayload struct {
	ResponseID string `json:"response_id"`
	FormID     string `json:"form_id"`
	Reference  string `json:"reference"`
}

func NewResponseReceivedTask(responseID, formID, reference string) (*asynq.Task, error) {
	payload, err := json.Marshal(ResponsePayload{ResponseID: responseID, FormID: formID, Reference: reference})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeResponseReceived, payload), nil
}
