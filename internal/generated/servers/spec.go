package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger returns the parsed API document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading swagger spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating swagger spec: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves the API document to echo-swagger.
type swaggerDoc struct {
	json []byte
}

func (d swaggerDoc) ReadDoc() string {
	return string(d.json)
}

// RegisterSwagger publishes the API document under swag.Name. swag panics on
// a second registration, so only the first call registers.
func RegisterSwagger() error {
	return registerOnce()
}

var registerOnce = sync.OnceValue(func() error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode swagger spec: %w", err)
	}
	swag.Register(swag.Name, swaggerDoc{json: data})
	return nil
})
