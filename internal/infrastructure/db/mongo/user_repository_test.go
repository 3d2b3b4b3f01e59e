package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

func TestUserUpdate_EmptyEmailIsUnsetNotStored(t *testing.T) {
	// two accounts without e-mail, each getting a notify-only change; if
	// either update wrote email:"" the second would collide with the
	// first on the sparse unique index
	for _, u := range []*domain.User{
		{ID: "1", Username: "first", PasswordHash: "$2a$x", Notify: true, UpdatedAt: time.Now()},
		{ID: "2", Username: "second", PasswordHash: "$2a$y", Notify: false, UpdatedAt: time.Now()},
	} {
		update := userUpdate(u)

		set, ok := update["$set"].(bson.M)
		if !ok {
			t.Fatalf("user %s: update has no $set: %v", u.Username, update)
		}
		if _, present := set["email"]; present {
			t.Fatalf("user %s: empty email was written to the document", u.Username)
		}

		unset, ok := update["$unset"].(bson.M)
		if !ok {
			t.Fatalf("user %s: empty email must be unset, got %v", u.Username, update)
		}
		if _, present := unset["email"]; !present {
			t.Fatalf("user %s: $unset does not cover email: %v", u.Username, unset)
		}

		if set["notify"] != u.Notify || set["password_hash"] != u.PasswordHash {
			t.Fatalf("user %s: $set dropped unrelated fields: %v", u.Username, set)
		}
	}
}

func TestUserUpdate_EmailSetWhenPresent(t *testing.T) {
	now := time.Now()
	update := userUpdate(&domain.User{
		ID:           "1",
		Username:     "first",
		Email:        "first@example.com",
		PasswordHash: "$2a$x",
		UpdatedAt:    now,
	})

	set := update["$set"].(bson.M)
	if set["email"] != "first@example.com" {
		t.Fatalf("email not written: %v", set)
	}
	if _, present := update["$unset"]; present {
		t.Fatalf("unexpected $unset alongside a real email: %v", update)
	}
	if ts, ok := set["updated_at"].(time.Time); !ok || !ts.Equal(now) {
		t.Fatalf("updated_at must be stored as a native timestamp, got %v", set["updated_at"])
	}
}
