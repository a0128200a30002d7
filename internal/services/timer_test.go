package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/epetrov2017/parkspot/internal/models"
	"github.com/epetrov2017/parkspot/internal/services"
)

func TestTimerService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTimerReader(ctrl)
	mockWriter := services.NewMockTimerWriter(ctrl)

	svc := services.NewTimerService(mockReader, mockWriter)

	timer := &models.TimerDataDB{ID: 1, UserID: 7, TimerEnd: "2026-01-02T16:00:00Z", TimerActive: true}

	tests := []struct {
		name      string
		timer     *models.TimerDataDB
		readerErr error
	}{
		{name: "timer exists", timer: timer},
		{name: "no timer", timer: nil},
		{name: "reader error", readerErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUserID(gomock.Any(), int64(7)).
				Return(tt.timer, tt.readerErr)

			got, err := svc.Get(context.Background(), 7)
			if tt.readerErr != nil {
				assert.EqualError(t, err, tt.readerErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.timer, got)
			}
		})
	}
}

func TestTimerService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTimerReader(ctrl)
	mockWriter := services.NewMockTimerWriter(ctrl)

	svc := services.NewTimerService(mockReader, mockWriter)

	notifID := "notif-42"

	tests := []struct {
		name      string
		timerEnd  string
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful save",
			timerEnd: "2026-01-02T16:00:00Z",
		},
		{
			name:    "missing timer end",
			wantErr: services.ErrMissingTimerEnd,
		},
		{
			name:      "writer error",
			timerEnd:  "2026-01-02T16:00:00Z",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timerEnd != "" {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, timer *models.TimerDataDB) (*models.TimerDataDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						assert.Equal(t, tt.timerEnd, timer.TimerEnd)
						assert.True(t, timer.TimerActive)
						saved := *timer
						saved.ID = 1
						return &saved, nil
					})
			}

			got, err := svc.Save(context.Background(), 7, tt.timerEnd, true, "1", "30", &notifID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.timerEnd, got.TimerEnd)
				assert.Equal(t, &notifID, got.NotificationID)
			}
		})
	}
}

func TestTimerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTimerReader(ctrl)
	mockWriter := services.NewMockTimerWriter(ctrl)

	svc := services.NewTimerService(mockReader, mockWriter)

	tests := []struct {
		name      string
		writerErr error
	}{
		{name: "successful delete"},
		{name: "writer error", writerErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Delete(gomock.Any(), int64(7)).
				Return(tt.writerErr)

			err := svc.Delete(context.Background(), 7)
			if tt.writerErr != nil {
				assert.EqualError(t, err, tt.writerErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
