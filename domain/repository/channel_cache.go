package repository

import (
	"context"

	"anime-hub/domain/model"
)

// IChannelCache is the persistent store for ChannelRecords, keyed uniquely by
// handle. Upsert and Delete are atomic at single-record granularity; no
// multi-record transactions are needed.
type IChannelCache interface {
	// GetByHandle returns the record for a handle, or (nil, nil) when absent.
	GetByHandle(ctx context.Context, handle string) (*model.ChannelRecord, error)
	// Upsert creates or fully replaces the record for record.Handle.
	Upsert(ctx context.Context, record *model.ChannelRecord) error
	// List returns all records, for administrative display.
	List(ctx context.Context) ([]model.ChannelRecord, error)
	// Delete removes a record by its storage id. Returns
	// model.ErrChannelNotFound when no record matches.
	Delete(ctx context.Context, id string) error
}
