package usecase

import (
	"context"
	"time"

	"levelup/dto"
	"levelup/model"
	"levelup/utils"

	"github.com/sirupsen/logrus"
)

type ActivitiesService struct {
	activities ActivityStore
	progress   *ProgressService
	clock      utils.Clock
}

func NewActivitiesService(activities ActivityStore, progress *ProgressService, clock utils.Clock) *ActivitiesService {
	return &ActivitiesService{
		activities: activities,
		progress:   progress,
		clock:      clock,
	}
}

// ListActivities returns activities newest date first. An inverted date range
// simply matches nothing.
func (svc *ActivitiesService) ListActivities(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error) {
	return svc.activities.FindActivities(ctx, filter)
}

// LogActivity stores the activity, then updates the profile and badges before
// returning. The stored activity is returned even when only the progress step
// failed, together with that error.
func (svc *ActivitiesService) LogActivity(ctx context.Context, req *dto.CreateActivityRequest) (*model.Activity, error) {
	activity := &model.Activity{
		ID:           utils.NewID(),
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Date:         req.Date,
		StartTime:    req.StartTime,
		Notes:        req.Notes,
		CreatedAt:    svc.clock.Now().UTC().Truncate(time.Millisecond),
	}
	if req.Duration != nil {
		activity.Duration = *req.Duration
	}

	if err := svc.activities.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	utils.TrackActivityLogged(activity.CategoryName)

	log := utils.WithContext(ctx).WithFields(logrus.Fields{
		"activity_id": activity.ID,
		"category_id": activity.CategoryID,
		"date":        activity.Date,
		"duration":    activity.Duration,
	})
	log.Info("Activity logged")

	if _, err := svc.progress.RecordActivity(ctx, activity.Date, activity.Duration); err != nil {
		log.WithError(err).Error("Failed to update progress for activity")
		return activity, err
	}

	return activity, nil
}

func (svc *ActivitiesService) DeleteActivity(ctx context.Context, activityID string) error {
	if err := svc.activities.DeleteActivity(ctx, activityID); err != nil {
		return err
	}
	utils.WithContext(ctx).WithField("activity_id", activityID).Info("Activity deleted")
	return nil
}
