package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

const (
	settingsCollection = "settings"
	settingsDocID      = "site"
)

// MongoSettingsRepository keeps the single site settings document.
type MongoSettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{coll: db.Collection(settingsCollection)}
}

type settingsDoc struct {
	ID              string          `bson:"_id"`
	domain.Settings `bson:",inline"`
}

// Get returns nil without error when settings were never saved.
func (r *MongoSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var doc settingsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &doc.Settings, nil
}

func (r *MongoSettingsRepository) Put(ctx context.Context, settings *domain.Settings) error {
	doc := settingsDoc{ID: settingsDocID, Settings: *settings}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
