package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoIDField     = "_id"
	mongoParentField = "_parent"
)

// MongoStore mapeia cada coleção pelo último segmento do caminho;
// _id guarda o caminho completo e _parent a coleção de origem.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Close desconecta o cliente dono do database
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.db.Client().Disconnect(ctx)
}

func (s *MongoStore) collectionFor(docPath string) *mongo.Collection {
	return s.db.Collection(CollectionName(docPath))
}

func (s *MongoStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	var raw bson.M
	err := s.collectionFor(path).FindOne(ctx, bson.M{mongoIDField: path}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: erro ao ler %s: %w", path, err)
	}

	return fromBSON(raw), nil
}

func (s *MongoStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	if err := ValidateCollectionPath(collection); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: mongoIDField, Value: 1}})
	cursor, err := s.db.Collection(ID(collection)).Find(ctx, bson.M{mongoParentField: collection}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: erro ao listar %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("mongo: erro ao decodificar %s: %w", collection, err)
	}

	out := make([]Snapshot, 0, len(rows))
	for _, row := range rows {
		path, _ := row[mongoIDField].(string)
		out = append(out, Snapshot{Path: path, ID: ID(path), Data: fromBSON(row)})
	}
	return out, nil
}

func (s *MongoStore) NewBatch() Batch {
	return newOpBatch(s.commit)
}

func (s *MongoStore) commit(ctx context.Context, ops []op) error {
	models := make(map[string][]mongo.WriteModel)
	order := make([]string, 0)

	for _, o := range ops {
		name := CollectionName(o.path)
		if _, ok := models[name]; !ok {
			order = append(order, name)
		}
		models[name] = append(models[name], toWriteModel(o))
	}

	failed := 0
	var errs []error
	for _, name := range order {
		batch := models[name]
		_, err := s.db.Collection(name).BulkWrite(ctx, batch, options.BulkWrite().SetOrdered(false))
		if err == nil {
			continue
		}

		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) && len(bulkErr.WriteErrors) > 0 {
			failed += len(bulkErr.WriteErrors)
		} else {
			failed += len(batch)
		}
		errs = append(errs, fmt.Errorf("mongo: %s: %w", name, err))
	}

	if failed > 0 {
		return &CommitError{Failed: failed, Total: len(ops), Err: errors.Join(errs...)}
	}
	return nil
}

func toWriteModel(o op) mongo.WriteModel {
	filter := bson.M{mongoIDField: o.path}

	switch o.kind {
	case opSet:
		doc := bson.M(materialize(o.data))
		doc[mongoIDField] = o.path
		doc[mongoParentField] = Parent(o.path)
		return mongo.NewReplaceOneModel().SetFilter(filter).SetReplacement(doc).SetUpsert(true)
	case opDelete:
		return mongo.NewDeleteOneModel().SetFilter(filter)
	default:
		sets := bson.M{}
		incs := bson.M{}
		flatten("", o.data, sets, incs)

		update := bson.M{"$setOnInsert": bson.M{mongoParentField: Parent(o.path)}}
		if len(sets) > 0 {
			update["$set"] = sets
		}
		if len(incs) > 0 {
			update["$inc"] = incs
		}
		return mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true)
	}
}

// fromBSON remove os campos de controle e converte tipos do driver
func fromBSON(raw bson.M) Document {
	out := make(Document, len(raw))
	for k, v := range raw {
		if k == mongoIDField || k == mongoParentField {
			continue
		}
		out[k] = normalizeBSON(v)
	}
	return out
}

func normalizeBSON(v any) any {
	switch val := v.(type) {
	case bson.M:
		return map[string]any(fromBSON(val))
	case bson.D:
		return map[string]any(fromBSON(val.Map()))
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeBSON(item)
		}
		return out
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return val
	}
}
