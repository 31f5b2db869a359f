package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed tools.json
var defaultToolsConfig []byte

type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type ToolsConfig struct {
	Tools []ToolDefinition `json:"tools"`
}

// LoadToolsConfig parses the tool definitions. With an empty path the
// embedded defaults are used; TOOLS_CONFIG_PATH or an explicit path loads
// an override file instead.
func LoadToolsConfig(configPath string) (*ToolsConfig, error) {
	if configPath == "" {
		configPath = GetEnvOrDefault("TOOLS_CONFIG_PATH", "")
	}

	data := defaultToolsConfig
	if configPath != "" {
		fileData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read tools config: %w", err)
		}
		data = fileData
	}

	var config ToolsConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tools config: %w", err)
	}

	return &config, nil
}
