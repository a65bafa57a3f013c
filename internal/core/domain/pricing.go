package domain

import (
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// validate is the validator instance for domain records.
var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("finite", validateFinite); err != nil {
		panic("failed to register finite validator: " + err.Error())
	}
}

func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Price is the price of one measurement unit of an ingredient.
type Price struct {
	Price       float64 `json:"price" validate:"finite,gte=0"`
	Measurement string  `json:"measurement" validate:"required"`
}

// PriceBook maps case-folded ingredient names to their prices.
type PriceBook map[string]Price

// FoldCase lowers s the same way for price keys and searches.
// A cases.Caser is stateful, so each call gets its own.
func FoldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// PriceKey returns the key an ingredient's price is stored under.
func PriceKey(name string) string {
	return FoldCase(name)
}

// Lookup returns the price of the named ingredient.
func (b PriceBook) Lookup(name string) (Price, bool) {
	p, ok := b[PriceKey(name)]
	return p, ok
}

// Set validates and stores the price of an ingredient, replacing any previous one.
func (b PriceBook) Set(name string, price float64, measurement string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	p := Price{Price: price, Measurement: measurement}
	if err := validate.Struct(p); err != nil {
		wrapped := zerr.Wrap(err, ErrInvalidPrice.Error())
		wrapped = zerr.With(wrapped, "ingredient", name)
		return zerr.With(wrapped, "price", strconv.FormatFloat(price, 'g', -1, 64))
	}
	b[PriceKey(name)] = p
	return nil
}

// ConvertFunc converts value from one unit to another.
type ConvertFunc func(value float64, from, to string) (float64, error)

// IngredientCost is the estimated cost of one ingredient.
type IngredientCost struct {
	Name  string
	Cost  float64
	Known bool
	// Err is set when the ingredient has a price but its amount could not be converted into
	// the price's measurement unit.
	Err error
}

// RecipeCost is the estimated cost of a whole recipe.
type RecipeCost struct {
	Total float64
	// Missing lists the ingredients whose cost is unknown, in recipe order.
	Missing []string
	Known   bool
	Items   []IngredientCost
}

// Estimator computes ingredient and recipe costs from a price book.
type Estimator struct {
	Prices  PriceBook
	Convert ConvertFunc
}

// NewEstimator creates a new Estimator.
func NewEstimator(prices PriceBook, convert ConvertFunc) *Estimator {
	return &Estimator{Prices: prices, Convert: convert}
}

// Ingredient estimates the cost of a single ingredient.
//
// The cost is unknown when the ingredient has no price. A missing amount counts as 0. When the
// ingredient unit and the price unit are both set and differ, the amount is converted into the
// price unit first; a failed conversion makes the cost unknown and is reported in Err.
func (e *Estimator) Ingredient(ing Ingredient) IngredientCost {
	result := IngredientCost{Name: ing.Name}

	price, ok := e.Prices.Lookup(ing.Name)
	if !ok {
		return result
	}

	amount := ing.Quantity()
	if ing.Unit != "" && price.Measurement != "" && ing.Unit != price.Measurement {
		converted, err := e.Convert(amount, ing.Unit, price.Measurement)
		if err != nil {
			result.Err = err
			return result
		}
		amount = converted
	}

	result.Cost = amount * price.Price
	result.Known = true
	return result
}

// Recipe estimates the cost of a recipe.
//
// The cost is unknown when none of the ingredients has a known cost. A recipe with at least
// one known cost is priced even when the known costs add up to zero.
func (e *Estimator) Recipe(r *Recipe) RecipeCost {
	var result RecipeCost
	if r == nil || len(r.Ingredients) == 0 {
		return result
	}

	for _, ing := range r.Ingredients {
		cost := e.Ingredient(ing)
		result.Items = append(result.Items, cost)
		if cost.Known {
			result.Total += cost.Cost
			continue
		}
		result.Missing = append(result.Missing, ing.Name)
	}

	result.Known = len(result.Missing) < len(r.Ingredients)
	return result
}
