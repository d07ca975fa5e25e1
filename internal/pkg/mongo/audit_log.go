package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogModel is one recorded API mutation.
type AuditLogModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TraceID   string             `bson:"trace_id" json:"traceId"`
	UserID    uint64             `bson:"user_id" json:"userId"` // 0 for anonymous
	Method    string             `bson:"method" json:"method"`
	Path      string             `bson:"path" json:"path"`
	Query     string             `bson:"query,omitempty" json:"query,omitempty"`
	Status    int                `bson:"status" json:"status"`
	ClientIP  string             `bson:"client_ip" json:"clientIp"`
	LatencyMS int64              `bson:"latency_ms" json:"latencyMs"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
