package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/garage-service/internal/models"
)

const mongoDocumentID = "garage"

// ConnectMongo connects to MongoDB at the given URI and verifies the
// connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// mongoDocument wraps the application document for storage as a single
// Mongo document, preserving the load/save-whole-document contract.
type mongoDocument struct {
	ID  string          `bson:"_id"`
	Doc models.Document `bson:"doc"`
}

// MongoStore persists the whole application document as one document in a
// Mongo collection, replaced wholesale on every save.
type MongoStore struct {
	collection *mongo.Collection
	mu         sync.Mutex
}

// NewMongoStore creates a Mongo-backed document store on the given
// database and collection.
func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{collection: client.Database(database).Collection(collection)}
}

// Load reads the full document. An empty collection yields an empty
// initialized document.
func (s *MongoStore) Load(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the full document.
func (s *MongoStore) Save(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, doc)
}

// Update serializes mutations behind the store mutex, mirroring FileStore.
func (s *MongoStore) Update(ctx context.Context, mutate func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.save(ctx, doc)
}

func (s *MongoStore) load(ctx context.Context) (*models.Document, error) {
	var wrapper mongoDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": mongoDocumentID}).Decode(&wrapper)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NewDocument(), nil
		}
		return nil, storeErr("find document", err)
	}
	return &wrapper.Doc, nil
}

func (s *MongoStore) save(ctx context.Context, doc *models.Document) error {
	wrapper := mongoDocument{ID: mongoDocumentID, Doc: *doc}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": mongoDocumentID}, wrapper, opts); err != nil {
		return storeErr("replace document", err)
	}
	return nil
}
