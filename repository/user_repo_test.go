package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

func TestDupKeyErrorClassifiesIndex(t *testing.T) {
	emailErr := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: construction.users index: email_1 dup key: { email: "alice@example.com" }`,
	}}}
	usernameErr := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: construction.users index: username_1 dup key: { username: "alice" }`,
	}}}

	if !mongo.IsDuplicateKeyError(emailErr) || !mongo.IsDuplicateKeyError(usernameErr) {
		t.Fatal("synthesized write errors should report as duplicate key errors")
	}
	if got := dupKeyError(emailErr); !errors.Is(got, types.ErrDuplicateEmail) {
		t.Errorf("email index violation mapped to %v", got)
	}
	if got := dupKeyError(usernameErr); !errors.Is(got, types.ErrDuplicateUsername) {
		t.Errorf("username index violation mapped to %v", got)
	}
}
