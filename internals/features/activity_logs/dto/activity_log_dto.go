package dto

import (
	"time"

	"github.com/bytedance/sonic"

	m "hrms_backend/internals/features/activity_logs/model"
)

type ActivityLogResponse struct {
	ID           string                 `json:"id"`
	UserName     string                 `json:"userName"`
	ActionType   string                 `json:"actionType"`
	ResourceType string                 `json:"resourceType"`
	ResourceID   string                 `json:"resourceId"`
	ResourceName string                 `json:"resourceName"`
	Description  string                 `json:"description"`
	IPAddress    string                 `json:"ipAddress"`
	Status       string                 `json:"status"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

func NewActivityLogResponse(mdl m.ActivityLogModel) ActivityLogResponse {
	var meta map[string]interface{}
	if len(mdl.ActivityLogMetadata) > 0 {
		_ = sonic.Unmarshal(mdl.ActivityLogMetadata, &meta)
	}
	return ActivityLogResponse{
		ID:           mdl.ActivityLogID.String(),
		UserName:     mdl.ActivityLogUserName,
		ActionType:   mdl.ActivityLogActionType,
		ResourceType: mdl.ActivityLogResourceType,
		ResourceID:   mdl.ActivityLogResourceID,
		ResourceName: mdl.ActivityLogResourceName,
		Description:  mdl.ActivityLogDescription,
		IPAddress:    mdl.ActivityLogIPAddress,
		Status:       mdl.ActivityLogStatus,
		Metadata:     meta,
		CreatedAt:    mdl.ActivityLogCreatedAt,
	}
}

func NewActivityLogResponses(models []m.ActivityLogModel) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, NewActivityLogResponse(mdl))
	}
	return out
}
