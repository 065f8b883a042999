package inventory

// Recipe maps an ingredient multiset to its crafted result
type Recipe struct {
	Ingredients Multiset
	Result      Type
}

// DefaultRecipes is the built-in recipe list
var DefaultRecipes = []Recipe{
	{Ingredients: NewMultiset(Ingredient{Square, 2}), Result: Rect},
	{Ingredients: NewMultiset(Ingredient{Circle, 2}, Ingredient{Triangle, 1}), Result: Heart},
	{Ingredients: NewMultiset(Ingredient{Heart, 2}), Result: Rust},
}

// RecipeTable is the read-only lookup from canonical multiset to result
type RecipeTable struct {
	byKey   map[string]Type
	recipes []Recipe
}

// NewRecipeTable builds the table once from a static recipe list
// Ingredients are re-canonicalized; recipes with an Empty result or no ingredients are skipped
// Later duplicates of the same key replace earlier ones
func NewRecipeTable(recipes []Recipe) *RecipeTable {
	rt := &RecipeTable{
		byKey:   make(map[string]Type, len(recipes)),
		recipes: make([]Recipe, 0, len(recipes)),
	}
	for _, r := range recipes {
		ings := NewMultiset(r.Ingredients...)
		if ings.Empty() || !r.Result.Valid() {
			continue
		}
		key := ings.Key()
		if _, dup := rt.byKey[key]; dup {
			for i := range rt.recipes {
				if rt.recipes[i].Ingredients.Key() == key {
					rt.recipes[i].Result = r.Result
				}
			}
		} else {
			rt.recipes = append(rt.recipes, Recipe{Ingredients: ings, Result: r.Result})
		}
		rt.byKey[key] = r.Result
	}
	return rt
}

// Lookup returns the result for an exact canonical match
func (rt *RecipeTable) Lookup(m Multiset) (Type, bool) {
	if m.Empty() {
		return Empty, false
	}
	t, ok := rt.byKey[m.Key()]
	return t, ok
}

// Recipes returns the table contents in declaration order
func (rt *RecipeTable) Recipes() []Recipe {
	out := make([]Recipe, len(rt.recipes))
	copy(out, rt.recipes)
	return out
}

func (rt *RecipeTable) Len() int {
	return len(rt.recipes)
}
