package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dormigo/pkg/errors"
)

// nextID allocates the next integer identifier for a collection using a
// counter document. Runs in a transaction so concurrent creates never hand
// out the same ID.
func nextID(ctx context.Context, client *firestore.Client, name string) (int64, error) {
	ref := client.Collection("counters").Doc(name)

	var id int64
	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		id = 1
		if err == nil && doc.Exists() {
			value, err := doc.DataAt("next")
			if err != nil {
				return err
			}
			if next, ok := value.(int64); ok {
				id = next
			}
		}

		return tx.Set(ref, map[string]interface{}{"next": id + 1})
	})
	if err != nil {
		return 0, errors.Internal("Failed to allocate identifier", err)
	}

	return id, nil
}
