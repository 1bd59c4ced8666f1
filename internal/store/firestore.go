package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"investwise-api/internal/models"
)

// FirestoreBackend stores one document per user in a collection per kind.
type FirestoreBackend struct {
	client *firestore.Client
}

type firestoreRecord struct {
	Payload   string    `firestore:"payload"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// NewFirestoreBackend connects to the given project. Credentials come from
// the environment the way every Google client resolves them.
func NewFirestoreBackend(ctx context.Context, projectID string) (*FirestoreBackend, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firestore: %w", err)
	}
	return &FirestoreBackend{client: client}, nil
}

func (f *FirestoreBackend) Put(ctx context.Context, kind Kind, userID string, payload []byte) error {
	_, err := f.client.Collection(string(kind)).Doc(userID).Set(ctx, firestoreRecord{
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	})
	return err
}

func (f *FirestoreBackend) Get(ctx context.Context, kind Kind, userID string) ([]byte, error) {
	doc, err := f.client.Collection(string(kind)).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec firestoreRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, err
	}
	return []byte(rec.Payload), nil
}

func (f *FirestoreBackend) Ping(ctx context.Context) error {
	iter := f.client.Collection(string(KindProfile)).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func (f *FirestoreBackend) Close() error {
	return f.client.Close()
}
