package service

import (
	"testing"
	"time"

	"github.com/diegoclair/shift-cycle-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockSettingsRepo *mocks.MockSettingsRepo
	mockSlackClient  *mocks.MockSlackClient
	mockShiftService *mocks.MockShiftService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockSettingsRepo: settingsRepo,
		mockSlackClient:  mocks.NewMockSlackClient(ctrl),
		mockShiftService: mocks.NewMockShiftService(ctrl),
	}

	// validate store creation
	store := NewConfigStore(dm, time.UTC, zerolog.Nop())
	require.NotNil(t, store)

	return
}
