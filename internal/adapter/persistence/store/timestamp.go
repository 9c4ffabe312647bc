package store

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Timestamps are stored as UTC RFC 3339 strings with fixed nine-digit
// fractional seconds. The width is fixed so that string comparison matches
// chronological order: RFC3339Nano trims trailing zeros, and a trimmed
// "…00.5Z" sorts before "…00Z" even though it is half a second later. Range
// filters and ordering rely on this, in DynamoDB and in memory alike. The
// encoder/decoder options below apply the conversion to every time.Time
// field, flat or nested, in both directions.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// epochDefault is substituted when a stored document predates the base
// timestamp fields. Reads must tolerate such legacy documents; writes never
// produce them.
const epochDefault = "1970-01-01T00:00:00Z"

func timeAttr(t time.Time) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: t.UTC().Format(timeLayout)}
}

func encoderOptions(o *attributevalue.EncoderOptions) {
	o.EncodeTime = func(t time.Time) (types.AttributeValue, error) {
		return timeAttr(t), nil
	}
}

func decoderOptions(o *attributevalue.DecoderOptions) {
	o.DecodeTime = attributevalue.DecodeTimeAttributes{
		S: func(v string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, v)
		},
		N: func(v string) (time.Time, error) {
			// Epoch-seconds fallback for documents written by older tooling.
			sec, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return time.Time{}, err
			}
			return time.Unix(sec, 0).UTC(), nil
		},
	}
}

func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, encoderOptions)
}

func unmarshalItem(item map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(item, out, decoderOptions)
}

// ensureBaseTimestamps substitutes the epoch default for missing createdAt or
// updatedAt on a document read back from the store. This is a deliberate
// leniency for historical data and always logs a diagnostic.
func (s *Store) ensureBaseTimestamps(item map[string]types.AttributeValue, collection, id string) {
	for _, field := range []string{fieldCreatedAt, fieldUpdatedAt} {
		if _, ok := item[field]; ok {
			continue
		}
		s.log.Warn().
			Str("collection", collection).
			Str("id", id).
			Str("field", field).
			Msg("stored document missing base timestamp, substituting epoch default")
		item[field] = &types.AttributeValueMemberS{Value: epochDefault}
	}
}
