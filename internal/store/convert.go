package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fromBSON rewrites driver-decoded values into plain maps and slices
// so the rest of the pipeline sees the same shapes as parsed YAML.
// The driver decodes embedded documents as primitive.D and arrays as
// primitive.A when the target is interface{}.
func fromBSON(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.D:
		out := make(map[string]interface{}, len(v))
		for _, elem := range v {
			out[elem.Key] = fromBSON(elem.Value)
		}
		return out
	case primitive.M:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = fromBSON(item)
		}
		return out
	case primitive.A:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = fromBSON(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = fromBSON(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = fromBSON(item)
		}
		return out
	default:
		return value
	}
}
