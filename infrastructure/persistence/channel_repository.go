package persistence

import (
	"context"
	"errors"
	"fmt"

	"anime-hub/domain/model"
	"anime-hub/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const channelCollection = "youtube_channels"

// ChannelRepository stores ChannelRecords in MongoDB, keyed uniquely by
// channel handle.
type ChannelRepository struct {
	db *mongo.Database
}

func NewChannelRepository(client *mongo.Client, dbName string) *ChannelRepository {
	return &ChannelRepository{db: client.Database(dbName)}
}

// EnsureIndexes creates the unique handle index. Safe to call on every start.
func (r *ChannelRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(channelCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "channel_handle", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed creating channel_handle index: %w", err)
	}
	return nil
}

func (r *ChannelRepository) GetByHandle(ctx context.Context, handle string) (*model.ChannelRecord, error) {
	var record model.ChannelRecord
	err := r.db.Collection(channelCollection).FindOne(ctx, bson.M{"channel_handle": handle}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert creates or fully replaces the record for its handle. The replace is
// atomic at document granularity, which is all the coordinator requires.
func (r *ChannelRepository) Upsert(ctx context.Context, record *model.ChannelRecord) error {
	if record.ID.IsZero() {
		record.ID = bson.NewObjectID()
	}
	_, err := r.db.Collection(channelCollection).ReplaceOne(
		ctx,
		bson.M{"channel_handle": record.Handle},
		record,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *ChannelRepository) List(ctx context.Context) ([]model.ChannelRecord, error) {
	cursor, err := r.db.Collection(channelCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}(cursor, ctx)

	records := make([]model.ChannelRecord, 0)
	for cursor.Next(ctx) {
		var record model.ChannelRecord
		if err := cursor.Decode(&record); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding channel record")
			continue
		}
		records = append(records, record)
	}
	return records, cursor.Err()
}

func (r *ChannelRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrChannelNotFound
	}
	result, err := r.db.Collection(channelCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrChannelNotFound
	}
	return nil
}
