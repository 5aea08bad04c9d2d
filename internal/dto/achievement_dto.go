package dto

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
)

type AchievementDTO struct {
	ID            uint                `json:"id"`
	Name          string              `json:"name"`
	NameAr        string              `json:"name_ar,omitempty"`
	Description   string              `json:"description,omitempty"`
	DescriptionAr string              `json:"description_ar,omitempty"`
	Icon          string              `json:"icon,omitempty"`
	ConditionType model.ConditionType `json:"condition_type"`
	Threshold     int                 `json:"threshold"`
	Points        int                 `json:"points"`
}

type UserAchievementDTO struct {
	AchievementID uint           `json:"achievement_id"`
	Achievement   AchievementDTO `json:"achievement"`
	UnlockedAt    time.Time      `json:"unlocked_at"`
}
