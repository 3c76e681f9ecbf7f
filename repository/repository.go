package repository

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

// objectID validates an identifier before any store access. Malformed IDs are
// reported to the caller as ErrNotFound so that format probes and genuinely
// missing resources are indistinguishable at the API, but they are logged
// apart so the two cases can be told apart operationally.
func objectID(id string) (bson.ObjectID, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("malformed object id %q: %v", id, err)
		return bson.ObjectID{}, types.ErrNotFound
	}
	return objID, nil
}

func mapFindErr(err error) error {
	if err == mongo.ErrNoDocuments {
		return types.ErrNotFound
	}
	return err
}
