package command

import (
	"context"
	"errors"

	"github.com/glo0ml34f/fauxterm/internal/recipe"
	"github.com/glo0ml34f/fauxterm/internal/session"
)

// MealSource returns a random meal.
type MealSource interface {
	Random(ctx context.Context) (*recipe.Meal, error)
}

// Cracco prints a random recipe.
type Cracco struct {
	Source MealSource
}

func (c *Cracco) Info() Info {
	return Info{Name: "cracco", Usage: "cracco", Desc: "cook up something fancy (random recipe)", Remote: true}
}

func (c *Cracco) Execute(ctx *Context) ([]session.Line, error) {
	meal, err := c.Source.Random(ctx)
	if errors.Is(err, recipe.ErrNoMeal) {
		return []session.Line{session.Text("No recipe found.")}, nil
	}
	if err != nil {
		return nil, requestFailure(err)
	}
	return []session.Line{
		session.Text("Dish: " + meal.Name),
		session.Text("Category: " + meal.Category),
		session.Text("Area: " + meal.Area),
		session.Text("Instructions: " + meal.Instructions),
	}, nil
}
