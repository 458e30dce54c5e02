package db

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UUIDBinary encodes id as binData subtype 4, the storage form of every
// primary and foreign key.
func UUIDBinary(id uuid.UUID) bson.Binary {
	return bson.Binary{Subtype: bson.TypeBinaryUUID, Data: id[:]}
}

// UUIDFromBSON decodes a stored key back to uuid.UUID. It accepts the wire
// form and the Go form, since in-memory stores hand values back unencoded.
func UUIDFromBSON(val interface{}) (uuid.UUID, error) {
	switch v := val.(type) {
	case uuid.UUID:
		return v, nil
	case bson.Binary:
		if v.Subtype != bson.TypeBinaryUUID || len(v.Data) != 16 {
			return uuid.Nil, fmt.Errorf("binData is not a subtype-4 UUID (subtype %d, %d bytes)", v.Subtype, len(v.Data))
		}
		return uuid.FromBytes(v.Data)
	case nil:
		return uuid.Nil, fmt.Errorf("nil UUID value")
	default:
		return uuid.Nil, fmt.Errorf("unexpected UUID value type %T", val)
	}
}
