package common

import (
	"encoding/json"

	"github.com/google/uuid"
)

// GenerateUUIDv7 generate a new uuid v7 using google/uuid package and return it. It panics if the generator fails.
func GenerateUUIDv7() uuid.UUID {
	u := uuid.Must(uuid.NewV7())

	return u
}

// StructToJSONString convert a struct to json string
func StructToJSONString(s any) (string, error) {
	jsonByte, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	return string(jsonByte), nil
}
