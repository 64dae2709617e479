package models

import (
	"encoding/json"
	"fmt"
)

// PartitionKey is the attribute every project item is addressed by.
const PartitionKey = "user"

// SortKey orders items within a partition in the local stores.
const SortKey = "projectId"

// Project is a single item returned by the store. The handler treats it as
// opaque and passes it through unchanged.
type Project map[string]interface{}

// User returns the partition key value, or "" when it is missing or not a string.
func (p Project) User() string {
	u, _ := p[PartitionKey].(string)
	return u
}

// ProjectKey returns the sort key in a form usable as an index. Strings are
// returned as is and any other value uses its JSON encoding. ok is false
// when the key is absent or null.
func (p Project) ProjectKey() (key string, ok bool) {
	v, present := p[SortKey]
	if !present || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), true
	}
	return string(raw), true
}

// ProjectList is the success payload for a project query.
type ProjectList struct {
	Projects []Project `json:"projects"`
	Count    int       `json:"count"`
}

// NewProjectList wraps the items in store order. A nil slice becomes an empty
// one so the payload never encodes "projects": null.
func NewProjectList(items []Project) *ProjectList {
	if items == nil {
		items = []Project{}
	}
	return &ProjectList{
		Projects: items,
		Count:    len(items),
	}
}
