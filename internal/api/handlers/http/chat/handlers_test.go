package chat_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"saheli/internal/api/handlers/http/chat"
	"saheli/internal/domain"
	"saheli/internal/middleware"
	mock_storage "saheli/internal/storage/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

// stubPublisher records published messages; fail makes every publish error.
type stubPublisher struct {
	published []domain.ChatMessage
	fail      bool
}

func (p *stubPublisher) Publish(ctx context.Context, msg domain.ChatMessage) error {
	if p.fail {
		return errors.New("pubsub down")
	}
	p.published = append(p.published, msg)
	return nil
}

func newChatRouter(h *chat.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.UserIdentity)
	r.Get("/chat/rooms", h.ListRooms)
	r.Get("/chat/rooms/{id}/messages", h.RoomMessages)
	r.Post("/chat/rooms/{id}/messages", h.PostMessage)
	return r
}

func TestListRooms_EmptyIsJSONArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_storage.NewMockRecordStore(ctrl)
	store.EXPECT().ListChatRooms(gomock.Any()).Return(nil, nil).Times(1)

	h := chat.NewHandler(newTestLogger(), store, &stubPublisher{})
	req := httptest.NewRequest(http.MethodGet, "/chat/rooms", http.NoBody)
	rr := httptest.NewRecorder()
	newChatRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if body := bytes.TrimSpace(rr.Body.Bytes()); !bytes.Equal(body, []byte("[]")) {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestRoomMessages_LimitForwarded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_storage.NewMockRecordStore(ctrl)
	roomID := uuid.New()
	store.EXPECT().
		ListRoomMessages(gomock.Any(), roomID, 10).
		Return([]domain.ChatMessage{{ID: uuid.New(), RoomID: roomID, Message: "hi"}}, nil).
		Times(1)

	h := chat.NewHandler(newTestLogger(), store, &stubPublisher{})
	url := fmt.Sprintf("/chat/rooms/%s/messages?limit=10", roomID)
	req := httptest.NewRequest(http.MethodGet, url, http.NoBody)
	rr := httptest.NewRecorder()
	newChatRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRoomMessages_LimitClamped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"negative falls back to default", "limit=-5", 50},
		{"zero falls back to default", "limit=0", 50},
		{"oversized is capped", "limit=100000", 200},
		{"garbage falls back to default", "limit=abc", 50},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_storage.NewMockRecordStore(ctrl)
			roomID := uuid.New()
			store.EXPECT().
				ListRoomMessages(gomock.Any(), roomID, tc.want).
				Return([]domain.ChatMessage{}, nil).
				Times(1)

			h := chat.NewHandler(newTestLogger(), store, &stubPublisher{})
			url := fmt.Sprintf("/chat/rooms/%s/messages?%s", roomID, tc.query)
			req := httptest.NewRequest(http.MethodGet, url, http.NoBody)
			rr := httptest.NewRecorder()
			newChatRouter(h).ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestRoomMessages_BadRoomID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_storage.NewMockRecordStore(ctrl)
	h := chat.NewHandler(newTestLogger(), store, &stubPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/chat/rooms/not-a-uuid/messages", http.NoBody)
	rr := httptest.NewRecorder()
	newChatRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestPostMessage_StoresThenPublishes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_storage.NewMockRecordStore(ctrl)
	roomID, userID := uuid.New(), uuid.New()
	store.EXPECT().
		SaveChatMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, m *domain.ChatMessage) error {
			if m.RoomID != roomID || m.UserID != userID || m.Message != "stay safe" || !m.IsAnonymous {
				t.Errorf("unexpected message: %+v", m)
			}
			return nil
		}).
		Times(1)

	pub := &stubPublisher{}
	h := chat.NewHandler(newTestLogger(), store, pub)

	body := `{"message":"stay safe","is_anonymous":true}`
	url := fmt.Sprintf("/chat/rooms/%s/messages", roomID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", userID.String())
	rr := httptest.NewRecorder()
	newChatRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", rr.Code, rr.Body.String())
	}
	if len(pub.published) != 1 || pub.published[0].Message != "stay safe" {
		t.Fatalf("message not published: %+v", pub.published)
	}
}

func TestPostMessage_PublishFailureStill201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_storage.NewMockRecordStore(ctrl)
	roomID, userID := uuid.New(), uuid.New()
	store.EXPECT().SaveChatMessage(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	h := chat.NewHandler(newTestLogger(), store, &stubPublisher{fail: true})

	url := fmt.Sprintf("/chat/rooms/%s/messages", roomID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(`{"message":"hi"}`))
	req.Header.Set("X-User-ID", userID.String())
	rr := httptest.NewRecorder()
	newChatRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("stored message must be acknowledged despite fan-out failure, got %d", rr.Code)
	}
	var got domain.ChatMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Message != "hi" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestPostMessage_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_storage.NewMockRecordStore(ctrl)
	h := chat.NewHandler(newTestLogger(), store, &stubPublisher{})

	url := fmt.Sprintf("/chat/rooms/%s/messages", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(`{"message":"hi"}`))
	rr := httptest.NewRecorder()
	newChatRouter(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}
