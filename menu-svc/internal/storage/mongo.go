package storage

import (
	"context"
	"errors"
	"fmt"

	"desi-beats/menu-svc/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Catalog documents keep ObjectID keys, so sorting on _id after "order"
// reproduces insertion order. Orders are keyed by random UUID strings since
// their id doubles as the customer's lookup token.

type categoryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Order       int                `bson:"order"`
}

func (d categoryDoc) toDomain() domain.Category {
	return domain.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		Image:       d.Image,
		Order:       d.Order,
	}
}

type menuItemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID  string             `bson:"categoryId"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	Available   bool               `bson:"available"`
	Featured    bool               `bson:"featured"`
	Order       int                `bson:"order"`
}

func (d menuItemDoc) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:          d.ID.Hex(),
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		Available:   d.Available,
		Featured:    d.Featured,
		Order:       d.Order,
	}
}

type MongoRepository struct {
	categories *mongo.Collection
	menuItems  *mongo.Collection
	orders     *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		categories: db.Collection("categories"),
		menuItems:  db.Collection("menu_items"),
		orders:     db.Collection("orders"),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("categories slug index: %w", err)
	}
	if _, err := r.menuItems.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "order", Value: 1}},
	}); err != nil {
		return fmt.Errorf("menu items category index: %w", err)
	}
	if _, err := r.orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}); err != nil {
		return fmt.Errorf("orders createdAt index: %w", err)
	}
	return nil
}

var catalogSort = bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}

func (r *MongoRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cur, err := r.categories.Find(ctx, bson.M{}, options.Find().SetSort(catalogSort))
	if err != nil {
		return nil, err
	}
	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findCategory(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.findCategory(ctx, bson.M{"slug": slug})
}

func (r *MongoRepository) findCategory(ctx context.Context, filter bson.M) (*domain.Category, error) {
	var doc categoryDoc
	if err := r.categories.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateMongo(err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *MongoRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	doc := categoryDoc{
		ID:          primitive.NewObjectID(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		Order:       c.Order,
	}
	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return translateMongo(err)
	}
	c.ID = doc.ID.Hex()
	return nil
}

func (r *MongoRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.categories.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"image":       c.Image,
		"order":       c.Order,
	}})
	if err != nil {
		return translateMongo(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteCategory(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.categories.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) ListMenuItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, error) {
	query := bson.M{}
	switch {
	case filter.CategoryID != "":
		query["categoryId"] = filter.CategoryID
	case filter.FeaturedOnly:
		query["featured"] = true
	}

	cur, err := r.menuItems.Find(ctx, query, options.Find().SetSort(catalogSort))
	if err != nil {
		return nil, err
	}
	var docs []menuItemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.MenuItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var doc menuItemDoc
	if err := r.menuItems.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongo(err)
	}
	m := doc.toDomain()
	return &m, nil
}

func (r *MongoRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	doc := menuItemDoc{
		ID:          primitive.NewObjectID(),
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Available:   item.Available,
		Featured:    item.Featured,
		Order:       item.Order,
	}
	if _, err := r.menuItems.InsertOne(ctx, doc); err != nil {
		return translateMongo(err)
	}
	item.ID = doc.ID.Hex()
	return nil
}

func (r *MongoRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.menuItems.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"categoryId":  item.CategoryID,
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"image":       item.Image,
		"available":   item.Available,
		"featured":    item.Featured,
		"order":       item.Order,
	}})
	if err != nil {
		return translateMongo(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.menuItems.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	_, err := r.orders.InsertOne(ctx, order)
	return translateMongo(err)
}

func (r *MongoRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, translateMongo(err)
	}
	return &o, nil
}

func (r *MongoRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	cur, err := r.orders.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	var o domain.Order
	err := r.orders.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		return nil, translateMongo(err)
	}
	return &o, nil
}

func (r *MongoRepository) DeleteOrder(ctx context.Context, id string) (int64, error) {
	res, err := r.orders.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func translateMongo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%v: %w", err, domain.ErrConflict)
	default:
		return err
	}
}
