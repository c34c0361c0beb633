package upload_test

import (
	"context"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	uploadhandler "github.com/ccheever/cho-upload/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/ccheever/cho-upload/internal/core/domain"
	"github.com/ccheever/cho-upload/internal/core/port"
	"github.com/ccheever/cho-upload/internal/core/service/notify"
	"github.com/ccheever/cho-upload/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventsV1(t *testing.T) {
	t.Run("pushes connected, then broadcasts, and deregisters on disconnect", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockNotifier := notify.NewMockChangeNotifier()

		id := uuid.New()
		pushCh := make(chan port.PushFunc, 1)
		mockNotifier.On("Subscribe", mock.Anything).
			Run(func(args mock.Arguments) {
				pushCh <- args.Get(0).(port.PushFunc)
			}).
			Return(id)
		mockNotifier.On("Unsubscribe", id).Return()

		handler := uploadhandler.NewUploadHandlerV1(mockService, mockNotifier, maxMultipartBytes, discardLogger)

		ctx, cancel := context.WithCancel(context.Background())
		req := httptest.NewRequest(http2.MethodGet, "/events", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		done := make(chan struct{})
		go func() {
			handler.EventsV1(w, req)
			close(done)
		}()

		// Act
		var push port.PushFunc
		select {
		case push = <-pushCh:
		case <-time.After(time.Second):
			t.Fatal("subscriber was never registered")
		}
		require.NoError(t, push(domain.EventRefresh))

		// Give the stream loop a moment to drain the event before the
		// context cancellation races it.
		time.Sleep(50 * time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler did not exit on disconnect")
		}

		// Assert
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "data: connected\n\n")
		assert.Contains(t, body, "data: refresh\n\n")
		mockNotifier.AssertExpectations(t)
	})

	t.Run("an overflowing queue closes the stream", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		mockNotifier := notify.NewMockChangeNotifier()

		id := uuid.New()
		pushCh := make(chan port.PushFunc, 1)
		mockNotifier.On("Subscribe", mock.Anything).
			Run(func(args mock.Arguments) {
				pushCh <- args.Get(0).(port.PushFunc)
			}).
			Return(id)
		mockNotifier.On("Unsubscribe", id).Return()

		handler := uploadhandler.NewUploadHandlerV1(mockService, mockNotifier, maxMultipartBytes, discardLogger)

		req := httptest.NewRequest(http2.MethodGet, "/events", nil)
		// The gate blocks the initial write, so the stream loop never
		// starts draining while the queue is being filled.
		w := &gatedRecorder{ResponseRecorder: httptest.NewRecorder(), gate: make(chan struct{})}

		done := make(chan struct{})
		go func() {
			handler.EventsV1(w, req)
			close(done)
		}()

		var push port.PushFunc
		select {
		case push = <-pushCh:
		case <-time.After(time.Second):
			t.Fatal("subscriber was never registered")
		}

		// Act
		var err error
		for i := 0; i < 32 && err == nil; i++ {
			err = push(domain.EventRefresh)
		}
		require.Error(t, err)
		close(w.gate)

		// Assert: the handler exits without a client disconnect.
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler kept the stream open after the queue overflowed")
		}
		mockNotifier.AssertExpectations(t)
	})
}

// gatedRecorder delays the first write until gate is closed.
type gatedRecorder struct {
	*httptest.ResponseRecorder
	gate chan struct{}
}

func (g *gatedRecorder) Write(p []byte) (int, error) {
	<-g.gate
	return g.ResponseRecorder.Write(p)
}
