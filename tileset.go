package citytiles

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// tilesetFile is the YAML layout of a tileset:
//
//	ground:
//	  grass: [ground, 0, 0]
//	  road: [ground, 1, 0]
//	  sidewalk: [ground, 2, 0]
//	archetypes:
//	  - id: house
//	    size: [2, 2]            # width, height
//	    category: residential
//	    tiles:                  # height rows of width fragments
//	      - [[buildings, 0, 0], [buildings, 1, 0]]
//	      - [[buildings, 0, 1], [buildings, 1, 1]]
//
// A fragment is either [sheet, col, row] or {sheet: s, col: c, row: r}.
type tilesetFile struct {
	Ground     map[string]fragmentRecord `yaml:"ground"`
	Archetypes []archetypeRecord         `yaml:"archetypes"`
}

type archetypeRecord struct {
	ID       string             `yaml:"id"`
	Size     []int              `yaml:"size"`
	Category string             `yaml:"category"`
	Tiles    [][]fragmentRecord `yaml:"tiles"`
}

type fragmentRecord Fragment

// UnmarshalYAML accepts both the sequence & mapping forms of a fragment
func (f *fragmentRecord) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != 3 {
			return errors.Wrapf(ErrSchemaViolation, "line %d: fragment needs [sheet, col, row], got %d values", value.Line, len(value.Content))
		}
		var out Fragment
		if err := value.Content[0].Decode(&out.Sheet); err != nil {
			return errors.Wrapf(err, "line %d: fragment sheet", value.Line)
		}
		if err := value.Content[1].Decode(&out.Col); err != nil {
			return errors.Wrapf(err, "line %d: fragment col", value.Line)
		}
		if err := value.Content[2].Decode(&out.Row); err != nil {
			return errors.Wrapf(err, "line %d: fragment row", value.Line)
		}
		if out.Sheet == "" {
			return errors.Wrapf(ErrSchemaViolation, "line %d: fragment needs a sheet", value.Line)
		}
		*f = fragmentRecord(out)
		return nil
	case yaml.MappingNode:
		var out Fragment
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			var err error
			switch key.Value {
			case "sheet":
				err = val.Decode(&out.Sheet)
			case "col":
				err = val.Decode(&out.Col)
			case "row":
				err = val.Decode(&out.Row)
			default:
				return errors.Wrapf(ErrSchemaViolation, "line %d: unknown fragment key %q", key.Line, key.Value)
			}
			if err != nil {
				return errors.Wrapf(err, "line %d: fragment %s", key.Line, key.Value)
			}
		}
		if out.Sheet == "" {
			return errors.Wrapf(ErrSchemaViolation, "line %d: fragment needs a sheet", value.Line)
		}
		*f = fragmentRecord(out)
		return nil
	}
	return errors.Wrapf(ErrSchemaViolation, "line %d: fragment must be a sequence or mapping", value.Line)
}

// LoadTileset reads a YAML tileset file (see ParseTileset).
func LoadTileset(fpath string) (*Catalog, GroundTiles, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read tileset file")
	}
	return ParseTileset(data)
}

// ParseTileset decodes a YAML tileset into a catalog & ground tiles.
// If the file has no ground section DefaultGroundTiles is used.
// Any shape problem is an ErrSchemaViolation; nothing is truncated or padded.
func ParseTileset(data []byte) (*Catalog, GroundTiles, error) {
	var file tilesetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse tileset YAML")
	}

	ground, err := file.groundTiles()
	if err != nil {
		return nil, nil, err
	}

	if len(file.Archetypes) == 0 {
		return nil, nil, errors.Wrap(ErrSchemaViolation, "archetypes cannot be empty")
	}

	archetypes := make([]*Archetype, 0, len(file.Archetypes))
	for i, rec := range file.Archetypes {
		a, err := rec.archetype()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "archetype %d", i)
		}
		archetypes = append(archetypes, a)
	}

	cat, err := NewCatalog(archetypes...)
	if err != nil {
		return nil, nil, err
	}
	return cat, ground, nil
}

// groundTiles converts the ground section, falling back to the defaults
func (t *tilesetFile) groundTiles() (GroundTiles, error) {
	if len(t.Ground) == 0 {
		return DefaultGroundTiles(), nil
	}

	out := GroundTiles{}
	for name, rec := range t.Ground {
		k, ok := parseKind(name)
		if !ok {
			return nil, errors.Wrapf(ErrSchemaViolation, "unknown ground kind %q", name)
		}
		out[k] = Fragment(rec)
	}
	return out, out.validate()
}

// archetype converts a record, the shape itself is checked by NewCatalog
func (r *archetypeRecord) archetype() (*Archetype, error) {
	if len(r.Size) != 2 {
		return nil, errors.Wrapf(ErrSchemaViolation, "%s: size needs [width, height], got %v", r.ID, r.Size)
	}

	tiles := make([][]Fragment, len(r.Tiles))
	for dy, row := range r.Tiles {
		tiles[dy] = make([]Fragment, len(row))
		for dx, f := range row {
			tiles[dy][dx] = Fragment(f)
		}
	}

	return &Archetype{
		ID:       r.ID,
		Width:    r.Size[0],
		Height:   r.Size[1],
		Category: Category(r.Category),
		Tiles:    tiles,
	}, nil
}
