package daemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/controller/daemon/controllermock"
	"github.com/tyfind/tyfind/src/tyfind/factory"
	"github.com/tyfind/tyfind/src/tyfind/internal/rpcfx/rpcfxmock"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("registers the connection manager", func(t *testing.T) {
		rpcMock := rpcfxmock.NewMockRPCModule(ctrl)
		rpcMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)

		h, err := New(controllermock.NewMockController(ctrl), rpcMock, tally.NoopScope, zap.NewNop().Sugar())
		require.NoError(t, err)
		assert.NotNil(t, h.ConnectionManager())
	})

	t.Run("registration failure propagates", func(t *testing.T) {
		rpcMock := rpcfxmock.NewMockRPCModule(ctrl)
		rpcMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("duplicate"))

		_, err := New(controllermock.NewMockController(ctrl), rpcMock, tally.NoopScope, zap.NewNop().Sugar())
		assert.Error(t, err)
	})
}

func TestConnectionManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("new connection yields a router with the session id", func(t *testing.T) {
		id := factory.UUID()
		mockCtrl := controllermock.NewMockController(ctrl)
		mockCtrl.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(id, nil)

		manager := jsonRPCConnectionManager{ctrl: mockCtrl, stats: tally.NoopScope, logger: zap.NewNop().Sugar()}

		var conn jsonrpc2.Conn
		router, err := manager.NewConnection(ctx, &conn)
		require.NoError(t, err)
		assert.Equal(t, id, router.UUID())
	})

	t.Run("session failure propagates", func(t *testing.T) {
		mockCtrl := controllermock.NewMockController(ctrl)
		mockCtrl.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(factory.UUID(), errors.New("no session"))

		manager := jsonRPCConnectionManager{ctrl: mockCtrl, stats: tally.NoopScope, logger: zap.NewNop().Sugar()}

		var conn jsonrpc2.Conn
		_, err := manager.NewConnection(ctx, &conn)
		assert.Error(t, err)
	})

	t.Run("remove ends the session", func(t *testing.T) {
		id := factory.UUID()
		mockCtrl := controllermock.NewMockController(ctrl)
		mockCtrl.EXPECT().EndSession(gomock.Any(), id).Return(nil)

		manager := jsonRPCConnectionManager{ctrl: mockCtrl, stats: tally.NoopScope, logger: zap.NewNop().Sugar()}
		manager.RemoveConnection(ctx, id)
	})
}
