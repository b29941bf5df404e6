package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/features/activity_logs/dto"
	"hrms_backend/internals/features/activity_logs/model"
	helper "hrms_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

/* ===================== LIST ===================== */
// GET /activity-logs
func (ctrl *ActivityLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ActivityLogModel{})
	if rt := c.Query("resourceType"); rt != "" {
		q = q.Where("activity_log_resource_type = ?", rt)
	}
	if at := c.Query("actionType"); at != "" {
		q = q.Where("activity_log_action_type = ?", at)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("Error counting activity logs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while fetching activity logs")
	}

	var rows []model.ActivityLogModel
	if err := q.
		Order("activity_log_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("Error fetching activity logs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Unexpected error while fetching activity logs")
	}

	return helper.SuccessList(c,
		dto.NewActivityLogResponses(rows),
		helper.BuildPagination(total, paging, len(rows)),
	)
}
