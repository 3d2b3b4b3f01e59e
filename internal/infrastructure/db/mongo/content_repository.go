package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// MongoCatalogRepository stores one kind of ordered site content. The
// element type carries its own bson mapping; setID stamps the generated
// identifier before writes.
type MongoCatalogRepository[T any] struct {
	coll  *mongo.Collection
	setID func(*T, string)
}

func NewCatalogRepository[T any](db *mongo.Database, collection string, setID func(*T, string)) *MongoCatalogRepository[T] {
	return &MongoCatalogRepository[T]{coll: db.Collection(collection), setID: setID}
}

func NewServiceRepository(db *mongo.Database) *MongoCatalogRepository[domain.Service] {
	return NewCatalogRepository(db, "services", func(s *domain.Service, id string) { s.ID = id })
}

func NewAdvantageRepository(db *mongo.Database) *MongoCatalogRepository[domain.Advantage] {
	return NewCatalogRepository(db, "advantages", func(a *domain.Advantage, id string) { a.ID = id })
}

func NewTeamRepository(db *mongo.Database) *MongoCatalogRepository[domain.TeamMember] {
	return NewCatalogRepository(db, "team_members", func(m *domain.TeamMember, id string) { m.ID = id })
}

func NewReviewRepository(db *mongo.Database) *MongoCatalogRepository[domain.Review] {
	return NewCatalogRepository(db, "reviews", func(r *domain.Review, id string) { r.ID = id })
}

func (r *MongoCatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return items, nil
}

func (r *MongoCatalogRepository[T]) Create(ctx context.Context, item T) (T, error) {
	r.setID(&item, primitive.NewObjectID().Hex())
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		var zero T
		return zero, fmt.Errorf("insert into %s: %w", r.coll.Name(), err)
	}
	return item, nil
}

func (r *MongoCatalogRepository[T]) Update(ctx context.Context, id string, item T) (T, error) {
	var zero T
	r.setID(&item, id)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, item)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return zero, domain.ErrNotFound
	}
	return item, nil
}

func (r *MongoCatalogRepository[T]) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
