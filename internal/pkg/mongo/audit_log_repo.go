package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditLogRepo interface {
	CreateEntry(ctx context.Context, entry *AuditLogModel) error
	GetEntriesByUser(ctx context.Context, userID uint64, limit, offset int64) ([]*AuditLogModel, error)
	GetEntriesSince(ctx context.Context, since time.Time, limit, offset int64) ([]*AuditLogModel, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}

type auditLogRepoImpl struct {
	col *mongo.Collection
}

func NewAuditLogRepo(db *mongo.Database) AuditLogRepo {
	return &auditLogRepoImpl{
		col: db.Collection("audit_logs"),
	}
}

func (s *auditLogRepoImpl) CreateEntry(ctx context.Context, entry *AuditLogModel) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

func (s *auditLogRepoImpl) GetEntriesByUser(ctx context.Context, userID uint64, limit, offset int64) ([]*AuditLogModel, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*AuditLogModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *auditLogRepoImpl) GetEntriesSince(ctx context.Context, since time.Time, limit, offset int64) ([]*AuditLogModel, error) {
	filter := bson.M{"created_at": bson.M{"$gte": since}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*AuditLogModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *auditLogRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"user_id": userID})
}
