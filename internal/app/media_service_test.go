package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
	"github.com/jsamuelsen11/restaurant-api/mocks"
)

var imageTypes = []string{"image/jpeg", "image/png", "image/webp"}

func TestMediaService_Upload(t *testing.T) {
	t.Parallel()

	t.Run("forwards accepted upload", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockMediaClient(t)
		svc := NewMediaService(client, imageTypes, 1024, discardLogger())

		want := &ports.MediaObject{Key: "k1", URL: "http://media/k1", ContentType: "image/png", Size: 3}
		client.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(u ports.MediaUpload) bool {
			return u.Filename == "dish.png" && u.ContentType == "image/png"
		})).Return(want, nil)

		got, err := svc.Upload(context.Background(), ports.MediaUpload{
			Filename:    `C:\photos\dish.png`,
			ContentType: "image/png; charset=binary",
			Size:        3,
			Body:        strings.NewReader("png"),
		})
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if got != want {
			t.Errorf("Upload() = %+v, want %+v", got, want)
		}
	})

	tests := []struct {
		name      string
		upload    ports.MediaUpload
		wantField string
	}{
		{
			name:      "disallowed type",
			upload:    ports.MediaUpload{Filename: "a.gif", ContentType: "image/gif", Size: 3, Body: strings.NewReader("gif")},
			wantField: "content_type",
		},
		{
			name:      "malformed type",
			upload:    ports.MediaUpload{Filename: "a.png", ContentType: ";;", Size: 3, Body: strings.NewReader("png")},
			wantField: "content_type",
		},
		{
			name:      "too large",
			upload:    ports.MediaUpload{Filename: "a.png", ContentType: "image/png", Size: 2048, Body: strings.NewReader("png")},
			wantField: "file",
		},
		{
			name:      "empty",
			upload:    ports.MediaUpload{Filename: "a.png", ContentType: "image/png", Size: 0, Body: strings.NewReader("")},
			wantField: "file",
		},
		{
			name:      "missing filename",
			upload:    ports.MediaUpload{ContentType: "image/png", Size: 3, Body: strings.NewReader("png")},
			wantField: "filename",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := mocks.NewMockMediaClient(t)
			svc := NewMediaService(client, imageTypes, 1024, discardLogger())

			_, err := svc.Upload(context.Background(), tt.upload)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Upload() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}

	t.Run("client error is returned", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockMediaClient(t)
		svc := NewMediaService(client, nil, 0, discardLogger())

		client.EXPECT().Upload(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.Upload(context.Background(), ports.MediaUpload{
			Filename: "a.bin", ContentType: "application/octet-stream", Size: 1, Body: strings.NewReader("x"),
		})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Upload() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestMediaService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("requires key", func(t *testing.T) {
		t.Parallel()
		svc := NewMediaService(mocks.NewMockMediaClient(t), imageTypes, 0, discardLogger())

		if err := svc.Delete(context.Background(), " "); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Delete(blank) error = %v, want ErrValidation", err)
		}
	})

	t.Run("forwards to client", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockMediaClient(t)
		svc := NewMediaService(client, imageTypes, 0, discardLogger())

		client.EXPECT().Delete(mock.Anything, "k1").Return(domain.ErrNotFound)

		if err := svc.Delete(context.Background(), "k1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}
