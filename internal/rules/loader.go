package rules

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/landforms.json
var landformsSchemaText string

//go:embed schema/rockstrata.json
var strataSchemaText string

//go:embed schema/provinces.json
var provincesSchemaText string

//go:embed schema/blocklayers.json
var blockLayersSchemaText string

//go:embed schema/ores.json
var oresSchemaText string

var (
	landformsSchema   = jsonschema.MustCompileString("deepbound://rules/landforms.json", landformsSchemaText)
	strataSchema      = jsonschema.MustCompileString("deepbound://rules/rockstrata.json", strataSchemaText)
	provincesSchema   = jsonschema.MustCompileString("deepbound://rules/provinces.json", provincesSchemaText)
	blockLayersSchema = jsonschema.MustCompileString("deepbound://rules/blocklayers.json", blockLayersSchemaText)
	oresSchema        = jsonschema.MustCompileString("deepbound://rules/ores.json", oresSchemaText)
)

// Load reads the rule tables from JSON files in dir. Each table lives in
// its own file (landforms.json, rockstrata.json, provinces.json,
// blocklayers.json, ores.json); a missing file leaves that table empty.
// Every present file is schema-checked before decoding.
func Load(dir string) (*Tables, error) {
	t := &Tables{}
	if err := loadTable(dir, "landforms.json", landformsSchema, &t.Landforms); err != nil {
		return nil, err
	}
	if err := loadTable(dir, "rockstrata.json", strataSchema, &t.Strata); err != nil {
		return nil, err
	}
	if err := loadTable(dir, "provinces.json", provincesSchema, &t.Provinces); err != nil {
		return nil, err
	}
	if err := loadTable(dir, "blocklayers.json", blockLayersSchema, &t.BlockLayers); err != nil {
		return nil, err
	}
	if err := loadTable(dir, "ores.json", oresSchema, &t.Ores); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}
	return t, nil
}

func loadTable(dir, name string, schema *jsonschema.Schema, out any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
