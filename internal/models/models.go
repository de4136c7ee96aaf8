package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. The stored document keeps the bcrypt hash
// under "password" and it is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
}

// Term is a name-bearing taxonomy entry. Cuisines and tags share this shape
// and live in separate collections. Duplicate names are permitted.
type Term struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// EntityRef is the denormalized snapshot of a referenced term, stored inline
// in a recipe at write time. Renaming a term later does not rewrite existing
// snapshots; the read path re-resolves names when configured to.
type EntityRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name,omitempty" json:"name,omitempty"`
}

// UnmarshalBSONValue accepts both the canonical {_id,name} snapshot and the
// legacy shape where only a raw ObjectID was stored, so historical documents
// normalize on read instead of being branched on ad hoc.
func (r *EntityRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeObjectID:
		id, ok := raw.ObjectIDOK()
		if !ok {
			return fmt.Errorf("malformed ObjectID reference")
		}
		r.ID = id
		r.Name = ""
		return nil
	case bson.TypeEmbeddedDocument:
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := raw.Unmarshal(&doc); err != nil {
			return err
		}
		r.ID = doc.ID
		r.Name = doc.Name
		return nil
	default:
		return fmt.Errorf("cannot decode %s into an entity reference", t)
	}
}

// Recipe is the primary resource. Cuisine and Tags hold write-time snapshots,
// not live references.
type Recipe struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	CookingDuration string             `bson:"cooking_duration" json:"cooking_duration"`
	Difficulty      string             `bson:"difficulty" json:"difficulty"`
	Cuisine         EntityRef          `bson:"cuisine" json:"cuisine"`
	Tags            []EntityRef        `bson:"tags" json:"tags"`
	Ingredients     []string           `bson:"ingredients" json:"ingredients"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Steps           []string           `bson:"steps,omitempty" json:"steps,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
}
