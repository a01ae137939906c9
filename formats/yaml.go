package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML renders payloads as YAML documents.
var YAML = &Format{
	Name: "yaml",
	Render: func(v interface{}) (string, error) {
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("yaml format: %w", err)
		}
		return string(data), nil
	},
}

func init() {
	if err := Register(YAML); err != nil {
		panic(fmt.Sprintf("failed to register yaml format: %v", err))
	}
}
