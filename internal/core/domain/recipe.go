package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Recipe is a single recipe stored in a folder.
type Recipe struct {
	Ingredients  IngredientList `json:"ingredients"`
	Instructions string         `json:"instructions"`
	Notes        string         `json:"notes"`
}

// Ingredient is one line of a recipe's ingredient list.
// Amount is nil and Unit is empty when the user did not give them.
type Ingredient struct {
	Name   string
	Amount *float64
	Unit   string
}

// Quantity returns the amount, or 0 when none was given.
func (i Ingredient) Quantity() float64 {
	if i.Amount == nil {
		return 0
	}
	return *i.Amount
}

// HasAmount reports whether the ingredient has a non-zero amount.
func (i Ingredient) HasAmount() bool {
	return i.Amount != nil && *i.Amount != 0
}

// String renders the ingredient the way it is typed in: "name amount unit".
func (i Ingredient) String() string {
	parts := []string{i.Name}
	if i.Amount != nil {
		parts = append(parts, strconv.FormatFloat(*i.Amount, 'f', -1, 64))
	}
	if i.Unit != "" {
		parts = append(parts, i.Unit)
	}
	return strings.Join(parts, " ")
}

// IngredientList is the ordered ingredient list of a recipe.
//
// It is stored as a JSON object keyed by ingredient name:
//
//	{"Shrimp": {"amount": 1, "unit": "lb"}}
//
// The legacy form, an array of free-text lines, is still accepted on decode and turned into
// name-only ingredients.
type IngredientList []Ingredient

// ingredientFields is the stored shape of a single ingredient.
type ingredientFields struct {
	Amount *float64 `json:"amount,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// MarshalJSON encodes the list as an object, keeping the list order.
func (l IngredientList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ing := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ing.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(ingredientFields{Amount: ing.Amount, Unit: ing.Unit})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either the object form or the legacy array form.
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*l = nil
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var lines []string
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return zerr.Wrap(err, "invalid legacy ingredient list")
		}
		list := make(IngredientList, 0, len(lines))
		for _, line := range lines {
			list = append(list, Ingredient{Name: line})
		}
		*l = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := expectDelim(dec, '{'); err != nil {
		return err
	}

	var list IngredientList
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return zerr.Wrap(err, "invalid ingredient list")
		}
		name, ok := tok.(string)
		if !ok {
			return zerr.New("invalid ingredient list: expected ingredient name")
		}

		var fields ingredientFields
		if err := dec.Decode(&fields); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid ingredient"), "ingredient", name)
		}
		list = append(list, Ingredient{Name: name, Amount: fields.Amount, Unit: fields.Unit})
	}
	if _, err := expectDelim(dec, '}'); err != nil {
		return err
	}

	*l = list
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) (json.Delim, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, zerr.Wrap(err, "invalid ingredient list")
	}
	got, ok := tok.(json.Delim)
	if !ok || got != want {
		return 0, zerr.With(zerr.New("invalid ingredient list: unexpected token"), "want", want.String())
	}
	return got, nil
}

// ParseIngredientLine parses a typed ingredient line.
//
// One token is a name. Two tokens are "name amount" when the second one is a number, otherwise
// "name unit". With three or more tokens the last two are amount and unit and everything
// before them is the name; when the amount is not a number the whole line is the name.
// The second return value is false for a blank line, which ends ingredient entry.
func ParseIngredientLine(line string) (Ingredient, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Ingredient{}, false
	}

	parts := strings.Fields(line)
	switch len(parts) {
	case 1:
		return Ingredient{Name: parts[0]}, true
	case 2:
		if amount, err := strconv.ParseFloat(parts[1], 64); err == nil {
			return Ingredient{Name: parts[0], Amount: &amount}, true
		}
		return Ingredient{Name: parts[0], Unit: parts[1]}, true
	default:
		amount, err := strconv.ParseFloat(parts[len(parts)-2], 64)
		if err != nil {
			return Ingredient{Name: strings.Join(parts, " ")}, true
		}
		return Ingredient{
			Name:   strings.Join(parts[:len(parts)-2], " "),
			Amount: &amount,
			Unit:   parts[len(parts)-1],
		}, true
	}
}
