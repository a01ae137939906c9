package formats

import (
	"encoding/json"
	"fmt"
)

// JSON renders payloads as indented JSON.
var JSON = &Format{
	Name: "json",
	Render: func(v interface{}) (string, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("json format: %w", err)
		}
		return string(data) + "\n", nil
	},
}

func init() {
	if err := Register(JSON); err != nil {
		panic(fmt.Sprintf("failed to register json format: %v", err))
	}
}
