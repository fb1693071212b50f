package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittrack-be/internal/entities"
)

// Collection names in the document store. Entries live in the collection the
// existing FitnessData documents already use.
const (
	UsersCollection          = "users"
	FitnessEntriesCollection = "fitnessdatas"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type fitnessDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Type      string             `bson:"type"`
	Value     float64            `bson:"value"`
	Date      string             `bson:"date"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *fitnessDocument) toEntity() *entities.FitnessEntry {
	return &entities.FitnessEntry{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Type:      d.Type,
		Value:     d.Value,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
	}
}

// ObjectIDs grow monotonically per process, so _id desc approximates insertion order.
var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}

// EnsureMongoIndexes creates the unique email index and the entry lookup index
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = db.Collection(FitnessEntriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "type", Value: 1},
			{Key: "date", Value: -1},
		},
		Options: options.Index().SetName("email_type_date"),
	})
	if err != nil {
		return fmt.Errorf("failed to create fitness entries index: %w", err)
	}
	return nil
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a document-store user repository
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	doc := userDocument{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}

	return doc.toEntity(), nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.toEntity(), nil
}

type mongoFitnessRepository struct {
	coll *mongo.Collection
}

// NewMongoFitnessRepository creates a document-store fitness repository
func NewMongoFitnessRepository(db *mongo.Database) FitnessRepository {
	return &mongoFitnessRepository{coll: db.Collection(FitnessEntriesCollection)}
}

func (r *mongoFitnessRepository) Insert(ctx context.Context, entry *entities.FitnessEntry) (*entities.FitnessEntry, error) {
	doc := fitnessDocument{
		Email:     entry.Email,
		Type:      entry.Type,
		Value:     entry.Value,
		Date:      entry.Date,
		CreatedAt: entry.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fitness entry: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}

	return doc.toEntity(), nil
}

func (r *mongoFitnessRepository) ListByEmail(ctx context.Context, email string) ([]*entities.FitnessEntry, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to list fitness entries: %w", err)
	}

	var docs []fitnessDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode fitness entries: %w", err)
	}

	entries := make([]*entities.FitnessEntry, 0, len(docs))
	for i := range docs {
		entries = append(entries, docs[i].toEntity())
	}
	return entries, nil
}

func (r *mongoFitnessRepository) FindLatest(ctx context.Context, email, entryType string) (*entities.FitnessEntry, error) {
	var doc fitnessDocument
	err := r.coll.FindOne(ctx,
		bson.M{"email": email, "type": entryType},
		options.FindOne().SetSort(newestFirst),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest fitness entry: %w", err)
	}
	return doc.toEntity(), nil
}
