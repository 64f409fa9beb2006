package daemon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/tyfind/tyfind/src/tyfind/controller/daemon/controllermock"
	"github.com/tyfind/tyfind/src/tyfind/factory"
	"github.com/tyfind/tyfind/src/tyfind/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type capturedReply struct {
	result interface{}
	err    error
	called bool
}

func captureReplier(c *capturedReply) jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		c.result = result
		c.err = err
		c.called = true
		return nil
	}
}

func newTestRouter(ctrl *gomock.Controller) (*jsonRPCRouter, *controllermock.MockController) {
	mockCtrl := controllermock.NewMockController(ctrl)
	return &jsonRPCRouter{
		daemon: mockCtrl,
		uuid:   factory.UUID(),
		stats:  tally.NoopScope,
		logger: zap.NewNop().Sugar(),
	}, mockCtrl
}

func wireCode(t *testing.T, err error) jsonrpc2.Code {
	t.Helper()
	var wireErr *jsonrpc2.Error
	require.ErrorAs(t, err, &wireErr)
	return wireErr.Code
}

func TestHandleReqPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mockCtrl := newTestRouter(ctrl)
	mockCtrl.EXPECT().Ping(gomock.Any()).Return(&model.PingResult{Status: "running"}, nil)

	var reply capturedReply
	err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest(model.MethodPing, nil))
	require.NoError(t, err)
	require.True(t, reply.called)
	assert.NoError(t, reply.err)
	assert.Equal(t, "running", reply.result.(*model.PingResult).Status)
}

func TestHandleReqUnknownMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newTestRouter(ctrl)

	var reply capturedReply
	err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest("bogus", nil))
	require.NoError(t, err)
	assert.Equal(t, jsonrpc2.Code(-32601), wireCode(t, reply.err))
}

func TestHandleReqValidation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		params interface{}
	}{
		{
			name:   "hover without params",
			method: model.MethodHover,
			params: nil,
		},
		{
			name:   "hover without workspace",
			method: model.MethodHover,
			params: map[string]interface{}{"file": "/tmp/ws/a.py", "line": 0, "column": 4},
		},
		{
			name:   "hover without file",
			method: model.MethodHover,
			params: map[string]interface{}{"workspace": "/tmp/ws"},
		},
		{
			name:   "workspace symbols without workspace",
			method: model.MethodWorkspaceSymbols,
			params: map[string]interface{}{"query": "foo"},
		},
		{
			name:   "document symbols without file",
			method: model.MethodDocumentSymbols,
			params: map[string]interface{}{"workspace": "/tmp/ws"},
		},
		{
			name:   "references without workspace",
			method: model.MethodReferences,
			params: map[string]interface{}{"file": "/tmp/ws/a.py"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, _ := newTestRouter(ctrl)

			var reply capturedReply
			err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest(tt.method, tt.params))
			require.NoError(t, err)
			assert.Equal(t, jsonrpc2.Code(-32600), wireCode(t, reply.err))
		})
	}
}

func TestHandleReqTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mockCtrl := newTestRouter(ctrl)

	mockCtrl.EXPECT().RequestTimeout(uint32(0)).Return(50 * time.Millisecond)
	mockCtrl.EXPECT().Hover(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, params *model.HoverParams) (*model.HoverResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	params := map[string]interface{}{"workspace": "/tmp/ws", "file": "/tmp/ws/a.py"}

	start := time.Now()
	var reply capturedReply
	err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest(model.MethodHover, params))
	require.NoError(t, err)
	assert.Equal(t, jsonrpc2.Code(-32003), wireCode(t, reply.err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHandleReqTimeoutHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mockCtrl := newTestRouter(ctrl)

	mockCtrl.EXPECT().RequestTimeout(uint32(5000)).Return(5 * time.Second)
	mockCtrl.EXPECT().Hover(gomock.Any(), gomock.Any()).Return(&model.HoverResult{}, nil)

	params := map[string]interface{}{"workspace": "/tmp/ws", "file": "/tmp/ws/a.py", "timeout_ms": 5000}

	var reply capturedReply
	err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest(model.MethodHover, params))
	require.NoError(t, err)
	assert.NoError(t, reply.err)
}

func TestHandleReqPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mockCtrl := newTestRouter(ctrl)

	mockCtrl.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) (*model.PingResult, error) {
		panic("boom")
	})

	var reply capturedReply
	err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest(model.MethodPing, nil))
	require.NoError(t, err)
	assert.Equal(t, jsonrpc2.Code(-32603), wireCode(t, reply.err))
}

func TestHandleReqNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newTestRouter(ctrl)

	notification, err := jsonrpc2.NewNotification(model.MethodPing, nil)
	require.NoError(t, err)

	var reply capturedReply
	require.NoError(t, router.HandleReq(context.Background(), captureReplier(&reply), notification))
	assert.False(t, reply.called)
}

func TestHandleReqShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, mockCtrl := newTestRouter(ctrl)
	mockCtrl.EXPECT().Shutdown(gomock.Any()).Return(&model.ShutdownResult{Acknowledged: true}, nil)

	var reply capturedReply
	err := router.HandleReq(context.Background(), captureReplier(&reply), factory.JSONRPCRequest(model.MethodShutdown, nil))
	require.NoError(t, err)
	assert.True(t, reply.result.(*model.ShutdownResult).Acknowledged)
}
