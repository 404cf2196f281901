// Package mongo stores session entries in a MongoDB collection.
//
// Each session attribute is one document whose _id is the storage key:
//
//	{ "_id": "session:abc:cart", "value": BinData(...), "updated_at": ISODate(...) }
//
// Client implements session.Client and session.PrefixDeleter. Set is an
// upsert via ReplaceOne, Delete uses DeleteOne and DeletePrefix issues a
// DeleteMany with an anchored, quoted regex on _id so the default index is used.
//
// New connects with retries using Config, which is populated from
// environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	coll, err := mongo.NewCollection(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer coll.Database().Client().Disconnect(context.Background())
//
//	client := mongo.NewClient(coll)
//	health := mongo.Healthcheck(coll.Database().Client())
//
// Connection failures are joined with ErrFailedToConnectToMongo so callers can
// match them with errors.Is.
package mongo
