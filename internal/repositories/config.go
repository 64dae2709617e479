package repositories

import "strings"

// StoreType selects the ProjectRepository implementation
type StoreType string

const (
	StoreTypeDynamoDB StoreType = "dynamodb"
	StoreTypeSQLite   StoreType = "sqlite"
	StoreTypeMemory   StoreType = "memory"
)

// ParseStoreType normalises a configured store type name
func ParseStoreType(s string) StoreType {
	return StoreType(strings.ToLower(strings.TrimSpace(s)))
}
