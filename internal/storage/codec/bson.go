package codec

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type bsonDocument[R any] struct {
	Header  `bson:",inline"`
	Records []R `bson:"records"`
}

func encodeBSON[R any](h Header, records []R) ([]byte, error) {
	if records == nil {
		records = []R{}
	}
	data, err := bson.Marshal(bsonDocument[R]{Header: h, Records: records})
	if err != nil {
		return nil, fmt.Errorf("encode bson: %w", err)
	}
	return data, nil
}

func decodeBSON[R any](data []byte) ([]R, Header, error) {
	var doc bsonDocument[R]
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return doc.Records, doc.Header, nil
}
