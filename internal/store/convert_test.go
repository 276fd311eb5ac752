package store

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromBSON(t *testing.T) {
	in := map[string]interface{}{
		"name": "Hotel Lakeside",
		"rooms": primitive.A{
			primitive.D{
				{Key: "number", Value: int32(101)},
				{Key: "available", Value: true},
			},
		},
		"meta": bson.M{"stars": int32(4)},
	}

	got := fromBSON(in)
	want := map[string]interface{}{
		"name": "Hotel Lakeside",
		"rooms": []interface{}{
			map[string]interface{}{"number": int32(101), "available": true},
		},
		"meta": map[string]interface{}{"stars": int32(4)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fromBSON mismatch:\ngot:  %#v\nwant: %#v", got, want)
	}
}

func TestFromBSON_Scalars(t *testing.T) {
	for _, v := range []interface{}{"text", int64(7), 2.5, false, nil} {
		if got := fromBSON(v); !reflect.DeepEqual(got, v) {
			t.Errorf("fromBSON(%v) = %v, want unchanged", v, got)
		}
	}
}
