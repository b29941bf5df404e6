package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityLogModel struct {
	ActivityLogID uuid.UUID `gorm:"type:uuid;primaryKey;column:activity_log_id" json:"activity_log_id"`

	ActivityLogUserName   string `gorm:"size:150;not null;column:activity_log_user_name"    json:"activity_log_user_name"`
	ActivityLogActionType string `gorm:"size:20;not null;column:activity_log_action_type"   json:"activity_log_action_type"`

	ActivityLogResourceType string `gorm:"size:50;not null;column:activity_log_resource_type" json:"activity_log_resource_type"`
	ActivityLogResourceID   string `gorm:"size:64;column:activity_log_resource_id"            json:"activity_log_resource_id"`
	ActivityLogResourceName string `gorm:"size:200;column:activity_log_resource_name"         json:"activity_log_resource_name"`

	ActivityLogDescription string `gorm:"column:activity_log_description" json:"activity_log_description"`
	ActivityLogIPAddress   string `gorm:"size:45;column:activity_log_ip_address" json:"activity_log_ip_address"`
	ActivityLogStatus      string `gorm:"size:20;not null;default:success;column:activity_log_status" json:"activity_log_status"`

	ActivityLogMetadata datatypes.JSON `gorm:"column:activity_log_metadata" json:"activity_log_metadata,omitempty"`

	ActivityLogCreatedAt time.Time `gorm:"column:activity_log_created_at;autoCreateTime" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

func (m *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityLogID == uuid.Nil {
		m.ActivityLogID = uuid.New()
	}
	return nil
}
