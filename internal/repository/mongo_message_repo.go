package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"personal-site/internal/domain"
)

type messageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d messageDocument) toDomain() domain.Message {
	return domain.Message{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Message:   d.Message,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// MongoMessageRepository implementa MessageRepository sobre una colección de MongoDB.
type MongoMessageRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoMessageRepository(client *mongo.Client, dbName string) *MongoMessageRepository {
	return &MongoMessageRepository{
		client: client,
		coll:   client.Database(dbName).Collection(domain.MessagesCollection),
	}
}

func (r *MongoMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoMessageRepository) FindByID(ctx context.Context, id string) ([]domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *MongoMessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	message = stamp(message, time.Now())
	oid, err := primitive.ObjectIDFromHex(message.ID)
	if err != nil {
		return domain.Message{}, ErrInvalidID
	}

	doc := messageDocument{
		ID:        oid,
		Name:      message.Name,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Message{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoMessageRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *MongoMessageRepository) find(ctx context.Context, filter bson.D) ([]domain.Message, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []messageDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, d.toDomain())
	}
	return messages, nil
}
