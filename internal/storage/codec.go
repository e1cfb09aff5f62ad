package storage

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// The JSON schema uses a "type" discriminator for the polymorphic
// quantity and ingredient values, mirroring the variant set the domain
// defines: exact | fractional | range, measured | vague. Units travel
// by canonical name.

type recipeDTO struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Servings     *servingsDTO     `json:"servings,omitempty"`
	Ingredients  []ingredientDTO  `json:"ingredients"`
	Instructions []instructionDTO `json:"instructions"`
	Rules        []ruleDTO        `json:"conversionRules,omitempty"`
}

type servingsDTO struct {
	Amount      int    `json:"amount"`
	Description string `json:"description,omitempty"`
}

type instructionDTO struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

type ingredientDTO struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Quantity    *quantityDTO `json:"quantity,omitempty"`
	Description string       `json:"description,omitempty"`
	Preparation string       `json:"preparation,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

type quantityDTO struct {
	Type        string  `json:"type"`
	Unit        string  `json:"unit"`
	Amount      float64 `json:"amount,omitempty"`
	Whole       int     `json:"whole,omitempty"`
	Numerator   int     `json:"numerator,omitempty"`
	Denominator int     `json:"denominator,omitempty"`
	Min         float64 `json:"min,omitempty"`
	Max         float64 `json:"max,omitempty"`
}

type ruleDTO struct {
	From       string  `json:"fromUnit"`
	To         string  `json:"toUnit"`
	Factor     float64 `json:"factor"`
	Ingredient string  `json:"ingredientName,omitempty"`
}

// EncodeRecipe renders a recipe as indented JSON.
func EncodeRecipe(r *domain.Recipe) ([]byte, error) {
	dto := recipeDTO{
		ID:    r.ID,
		Title: r.Title,
	}
	if r.Servings != nil {
		dto.Servings = &servingsDTO{Amount: r.Servings.Amount, Description: r.Servings.Description}
	}
	dto.Ingredients = make([]ingredientDTO, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		d, err := encodeIngredient(ing)
		if err != nil {
			return nil, err
		}
		dto.Ingredients = append(dto.Ingredients, d)
	}
	dto.Instructions = make([]instructionDTO, 0, len(r.Instructions))
	for _, inst := range r.Instructions {
		dto.Instructions = append(dto.Instructions, instructionDTO{Step: inst.Step, Text: inst.Text})
	}
	for _, rule := range r.Rules {
		dto.Rules = append(dto.Rules, ruleDTO{
			From:       rule.From().Name(),
			To:         rule.To().Name(),
			Factor:     rule.Factor(),
			Ingredient: rule.Ingredient(),
		})
	}
	return sonic.MarshalIndent(dto, "", "  ")
}

// DecodeRecipe parses JSON produced by EncodeRecipe (or any document
// following the same schema) back into a recipe.
func DecodeRecipe(data []byte) (*domain.Recipe, error) {
	var dto recipeDTO
	if err := sonic.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decoding recipe: %w", err)
	}
	if dto.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	var servings *domain.Servings
	if dto.Servings != nil {
		s, err := domain.NewServings(dto.Servings.Amount, dto.Servings.Description)
		if err != nil {
			return nil, fmt.Errorf("decoding servings: %w", err)
		}
		servings = &s
	}

	ingredients := make([]domain.Ingredient, 0, len(dto.Ingredients))
	for _, d := range dto.Ingredients {
		ing, err := decodeIngredient(d)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}

	instructions := make([]domain.Instruction, 0, len(dto.Instructions))
	for _, d := range dto.Instructions {
		instructions = append(instructions, domain.Instruction{Step: d.Step, Text: d.Text})
	}

	var rules []domain.Rule
	for _, d := range dto.Rules {
		rule, err := decodeRule(d)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	recipe, err := domain.NewRecipe(dto.Title, servings, ingredients, instructions, rules)
	if err != nil {
		return nil, err
	}
	if dto.ID != "" {
		recipe.ID = dto.ID
	}
	return recipe, nil
}

func encodeIngredient(ing domain.Ingredient) (ingredientDTO, error) {
	switch v := ing.(type) {
	case domain.Measured:
		q, err := encodeQuantity(v.Quantity())
		if err != nil {
			return ingredientDTO{}, err
		}
		return ingredientDTO{
			Type:        "measured",
			Name:        v.Name(),
			Quantity:    &q,
			Preparation: v.Preparation(),
			Notes:       v.Notes(),
		}, nil
	case domain.Vague:
		return ingredientDTO{
			Type:        "vague",
			Name:        v.Name(),
			Description: v.Description(),
			Preparation: v.Preparation(),
			Notes:       v.Notes(),
		}, nil
	default:
		return ingredientDTO{}, fmt.Errorf("encoding ingredient: unknown variant %T", ing)
	}
}

func decodeIngredient(d ingredientDTO) (domain.Ingredient, error) {
	switch d.Type {
	case "measured":
		if d.Quantity == nil {
			return nil, fmt.Errorf("decoding ingredient %q: measured ingredient has no quantity", d.Name)
		}
		q, err := decodeQuantity(*d.Quantity)
		if err != nil {
			return nil, fmt.Errorf("decoding ingredient %q: %w", d.Name, err)
		}
		return domain.NewMeasured(d.Name, q, d.Preparation, d.Notes)
	case "vague":
		return domain.NewVague(d.Name, d.Description, d.Preparation, d.Notes), nil
	default:
		return nil, fmt.Errorf("decoding ingredient %q: unknown type %q", d.Name, d.Type)
	}
}

func encodeQuantity(q domain.Quantity) (quantityDTO, error) {
	switch v := q.(type) {
	case domain.Exact:
		return quantityDTO{Type: "exact", Unit: v.Unit().Name(), Amount: v.Amount()}, nil
	case domain.Fractional:
		return quantityDTO{
			Type:        "fractional",
			Unit:        v.Unit().Name(),
			Whole:       v.Whole(),
			Numerator:   v.Numerator(),
			Denominator: v.Denominator(),
		}, nil
	case domain.Range:
		return quantityDTO{Type: "range", Unit: v.Unit().Name(), Min: v.Min(), Max: v.Max()}, nil
	default:
		return quantityDTO{}, fmt.Errorf("encoding quantity: unknown variant %T", q)
	}
}

func decodeQuantity(d quantityDTO) (domain.Quantity, error) {
	unit, ok := domain.ResolveUnit(d.Unit)
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", d.Unit)
	}
	switch d.Type {
	case "exact":
		return domain.NewExact(d.Amount, unit)
	case "fractional":
		return domain.NewFractional(d.Whole, d.Numerator, d.Denominator, unit)
	case "range":
		return domain.NewRange(d.Min, d.Max, unit)
	default:
		return nil, fmt.Errorf("unknown quantity type %q", d.Type)
	}
}

func decodeRule(d ruleDTO) (domain.Rule, error) {
	from, ok := domain.ResolveUnit(d.From)
	if !ok {
		return domain.Rule{}, fmt.Errorf("decoding rule: unknown unit %q", d.From)
	}
	to, ok := domain.ResolveUnit(d.To)
	if !ok {
		return domain.Rule{}, fmt.Errorf("decoding rule: unknown unit %q", d.To)
	}
	return domain.NewIngredientRule(from, to, d.Factor, d.Ingredient)
}
