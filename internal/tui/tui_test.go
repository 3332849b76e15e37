package tui

import (
	"testing"

	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/mock"
	"github.com/MKhiriev/go-massage-link/internal/service"
	"github.com/MKhiriev/go-massage-link/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew_RequiresSessionService(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, "", logger.Nop())
	assert.Error(t, err)

	_, err = New(&service.ClientServices{}, models.AppBuildInfo{}, "", logger.Nop())
	assert.Error(t, err)
}

func TestTUI_SetConnection_BeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui, err := New(&service.ClientServices{SessionService: mock.NewMockClientSessionService(ctrl)},
		models.NewAppBuildInfo("1", "", ""), "http://localhost:8001", logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, connectionUnknown, ui.connection)
	ui.SetConnection(true)
	assert.Equal(t, connectionOnline, ui.connection)
	ui.SetConnection(false)
	assert.Equal(t, connectionOffline, ui.connection)
}

func TestConnectionState_String(t *testing.T) {
	assert.Equal(t, "unknown", connectionUnknown.String())
	assert.Equal(t, "online", connectionOnline.String())
	assert.Equal(t, "offline", connectionOffline.String())
}
