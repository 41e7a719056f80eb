package notification

import (
	"encoding/json"

	"pawspa/models"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for outgoing email.
const TypeEmailSend = "email:send"

// NewEmailTask wraps an EmailPayload into an asynq task.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailSend, data, asynq.MaxRetry(3)), nil
}
