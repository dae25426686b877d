// Package gallery implements tile-space geometry: converting pixel
// coordinates to tile indices, building per-query bounding boxes, and
// decoding a client's predicted-viewing-distribution payload into a
// prob.Oracle ready for a planner to consume.
package gallery

import "encoding/json"

// Query identifies a tile by its integer grid coordinates. Serialized
// form is {"x":...,"y":...}.
type Query struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Index returns the canonical scalar tile index q = x*factor + y.
func (q Query) Index(factor uint32) int {
	return int(q.X*factor + q.Y)
}

// ParseQuery deserializes a single JSON-encoded query.
func ParseQuery(s string) (Query, error) {
	var q Query
	if err := json.Unmarshal([]byte(s), &q); err != nil {
		return Query{}, err
	}
	return q, nil
}
