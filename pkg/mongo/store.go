package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// entry is one stored session attribute; the storage key is the document id.
type entry struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Client implements the session store contract on a MongoDB collection.
type Client struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewClient wraps coll.
func NewClient(coll *mongo.Collection) *Client {
	return &Client{coll: coll, now: time.Now}
}

// Get returns nil, nil when no document has the key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var doc entry
	err := c.coll.FindOne(ctx, keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Value == nil {
		return []byte{}, nil
	}
	return doc.Value, nil
}

// Set upserts the document for key.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	doc := newEntry(key, value, c.now())
	_, err := c.coll.ReplaceOne(ctx, keyFilter(key), doc, options.Replace().SetUpsert(true))
	return err
}

// Delete removes the document for key and reports whether it existed.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	res, err := c.coll.DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeletePrefix removes every document whose key starts with prefix.
func (c *Client) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	if prefix == "" {
		return 0, ErrEmptyPrefix
	}
	res, err := c.coll.DeleteMany(ctx, prefixFilter(prefix))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func newEntry(key string, value []byte, now time.Time) entry {
	if value == nil {
		value = []byte{}
	}
	return entry{Key: key, Value: value, UpdatedAt: now.UTC()}
}

func keyFilter(key string) bson.D {
	return bson.D{{Key: "_id", Value: key}}
}

// prefixFilter matches ids starting with prefix. An anchored, quoted regex
// lets the server use the _id index.
func prefixFilter(prefix string) bson.D {
	return bson.D{{Key: "_id", Value: bson.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}}
}
