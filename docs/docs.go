// Package docs registers the OpenAPI document served under /swagger.
package docs

import (
	_ "embed"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/swaggo/swag"
)

//go:embed swagger.yaml
var swaggerYAML []byte

type document struct {
	json string
}

func (d document) ReadDoc() string {
	return d.json
}

// JSON returns the embedded document converted from YAML.
func JSON() ([]byte, error) {
	data, err := yaml.YAMLToJSON(swaggerYAML)
	if err != nil {
		return nil, fmt.Errorf("convert swagger spec: %w", err)
	}
	return data, nil
}

func init() {
	data, err := JSON()
	if err != nil {
		panic(err)
	}
	swag.Register(swag.Name, document{json: string(data)})
}
