package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"product_catalog_backend/internal/products/domain"
)

// MongoRepo implements Repository on a MongoDB collection.
type MongoRepo struct {
	coll *mongo.Collection
}

// NewMongo creates a repository reading from coll.
func NewMongo(coll *mongo.Collection) *MongoRepo {
	return &MongoRepo{coll: coll}
}

// Compile-time check that MongoRepo implements Repository.
var _ Repository = (*MongoRepo)(nil)

var excludeInternalID = bson.M{"_id": 0}

// EnsureIndexes creates the uuid lookup and creation-time sort indexes.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: FieldUUID, Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uuid_unique"),
		},
		{
			Keys:    bson.D{{Key: FieldCreatedAt, Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure product indexes: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by uuid.
func (r *MongoRepo) GetProduct(ctx context.Context, uuid string) (domain.Base, error) {
	var doc Document
	err := r.coll.FindOne(ctx, bson.M{FieldUUID: uuid}, options.FindOne().SetProjection(excludeInternalID)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Base{}, domain.ProductNotFound(uuid)
		}
		return domain.Base{}, fmt.Errorf("get product by uuid: %w", err)
	}
	return doc.ToBase(), nil
}

// FindProducts lists products matching predicate, newest first.
func (r *MongoRepo) FindProducts(ctx context.Context, predicate Predicate, opts FindOptions) ([]domain.Base, error) {
	cursor, err := r.coll.Find(ctx, toBSON(predicate), mongoFindOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	items := make([]domain.Base, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.ToBase())
	}
	return items, nil
}

// CountProducts counts products matching predicate.
func (r *MongoRepo) CountProducts(ctx context.Context, predicate Predicate) (int, error) {
	total, err := r.coll.CountDocuments(ctx, toBSON(predicate))
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return int(total), nil
}

// Ping checks the deployment is reachable.
func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.PrimaryPreferred())
}

func toBSON(predicate Predicate) bson.M {
	filter := bson.M{}
	for field, cond := range predicate {
		switch cond.Op {
		case OpIn:
			filter[field] = bson.M{"$in": cond.Value}
		default:
			filter[field] = cond.Value
		}
	}
	return filter
}

func mongoFindOptions(opts FindOptions) *options.FindOptions {
	return options.Find().
		SetProjection(excludeInternalID).
		SetSort(bson.D{{Key: FieldCreatedAt, Value: -1}}).
		SetSkip(int64(opts.Skip)).
		SetLimit(int64(opts.Limit))
}
