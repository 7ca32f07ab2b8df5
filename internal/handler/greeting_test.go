package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/greeter/internal/greeting"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Resolve() greeting.Greeting {
	args := m.Called()
	return args.Get(0).(greeting.Greeting)
}

func (m *MockGreetingService) CustomGreetings() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

func (m *MockGreetingService) SetCustomGreeting(ctx context.Context, key, phrase string) error {
	args := m.Called(ctx, key, phrase)
	return args.Error(0)
}

func (m *MockGreetingService) RemoveCustomGreeting(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockGreetingService) SetLocale(ctx context.Context, locale string) error {
	args := m.Called(ctx, locale)
	return args.Error(0)
}

func (m *MockGreetingService) Locale() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGreetingService) Locales() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func TestHandleGetGreeting(t *testing.T) {
	svc := &MockGreetingService{}
	svc.On("Resolve").Return(greeting.Greeting{
		Text:   "今天是3月11日",
		Source: greeting.SourceDate,
		Locale: "zh-CN",
		Slot:   greeting.SlotMorning,
		Date:   "03-11",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/greeting", nil)
	w := httptest.NewRecorder()
	HandleGetGreeting(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got greeting.Greeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "今天是3月11日", got.Text)
	assert.Equal(t, greeting.SourceDate, got.Source)
	svc.AssertExpectations(t)
}

func TestHandleGetCustomGreetings(t *testing.T) {
	svc := &MockGreetingService{}
	svc.On("Locale").Return("en-US")
	svc.On("CustomGreetings").Return(map[string]string{"03-11": "Hello"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/greeting/custom", nil)
	w := httptest.NewRecorder()
	HandleGetCustomGreetings(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"locale":"en-US","greetings":{"03-11":"Hello"}}`, w.Body.String())
}

func TestHandleSetCustomGreeting(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *MockGreetingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "saved",
			body: `{"key":"03-11","phrase":"Hello"}`,
			setup: func(svc *MockGreetingService) {
				svc.On("SetCustomGreeting", mock.Anything, "03-11", "Hello").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   MsgCustomGreetingSaved,
		},
		{
			name:       "malformed json",
			body:       `{"key":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name:       "missing phrase",
			body:       `{"key":"morning"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "phrase",
		},
		{
			name: "blank key rejected by resolver",
			body: `{"key":"  ","phrase":"Hi"}`,
			setup: func(svc *MockGreetingService) {
				svc.On("SetCustomGreeting", mock.Anything, "  ", "Hi").
					Return(greeting.ErrInvalidKey)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidKey,
		},
		{
			name: "store failure",
			body: `{"key":"morning","phrase":"Hi"}`,
			setup: func(svc *MockGreetingService) {
				svc.On("SetCustomGreeting", mock.Anything, "morning", "Hi").
					Return(errors.New("disk full"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   ErrMsgStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockGreetingService{}
			if tt.setup != nil {
				tt.setup(svc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/greeting/custom", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			HandleSetCustomGreeting(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRemoveCustomGreeting(t *testing.T) {
	svc := &MockGreetingService{}
	svc.On("RemoveCustomGreeting", mock.Anything, "day_1").Return(nil)

	r := chi.NewRouter()
	r.Delete("/api/v1/greeting/custom/{key}", HandleRemoveCustomGreeting(svc))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/greeting/custom/day_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCustomGreetingRemoved)
	svc.AssertExpectations(t)
}

func TestHandleSetLocale(t *testing.T) {
	t.Run("switches locale", func(t *testing.T) {
		svc := &MockGreetingService{}
		svc.On("SetLocale", mock.Anything, "en-US").Return(nil)
		svc.On("Locale").Return("en-US")
		svc.On("Locales").Return([]string{"en-US", "zh-CN"})

		req := httptest.NewRequest(http.MethodPut, "/api/v1/greeting/locale", strings.NewReader(`{"locale":"en-US"}`))
		w := httptest.NewRecorder()
		HandleSetLocale(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"active":"en-US","available":["en-US","zh-CN"]}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("unknown locale is 404", func(t *testing.T) {
		svc := &MockGreetingService{}
		svc.On("SetLocale", mock.Anything, "fr-FR").
			Return(greeting.LocaleNotFoundError{Locale: "fr-FR"})

		req := httptest.NewRequest(http.MethodPut, "/api/v1/greeting/locale", strings.NewReader(`{"locale":"fr-FR"}`))
		w := httptest.NewRecorder()
		HandleSetLocale(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgLocaleNotFound)
		svc.AssertNotCalled(t, "Locale")
	})

	t.Run("missing locale field", func(t *testing.T) {
		svc := &MockGreetingService{}

		req := httptest.NewRequest(http.MethodPut, "/api/v1/greeting/locale", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		HandleSetLocale(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"locale":"This field is required"`)
		svc.AssertNotCalled(t, "SetLocale", mock.Anything, mock.Anything)
	})
}

func TestHandleGetLocales(t *testing.T) {
	svc := &MockGreetingService{}
	svc.On("Locale").Return("zh-CN")
	svc.On("Locales").Return([]string{"en-US", "zh-CN"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/greeting/locales", nil)
	w := httptest.NewRecorder()
	HandleGetLocales(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active":"zh-CN","available":["en-US","zh-CN"]}`, w.Body.String())
}
