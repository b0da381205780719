package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/alembic/internal/model"
)

// maxDescriptionWidth truncates descriptions in one-line table rows.
const maxDescriptionWidth = 60

// WriteRecipes prints recipes as an aligned table of ID, key, ingredients,
// title, and the first line of the description.
func WriteRecipes(w io.Writer, recipes []model.Recipe) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("ID"),
		TableHeaderStyle.Render("Key"),
		TableHeaderStyle.Render("Ingredients"),
		TableHeaderStyle.Render("Title"),
		TableHeaderStyle.Render("Description"))

	for _, r := range recipes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Key(),
			strings.Join(r.IngredientNames(), " + "),
			r.Title,
			summarize(r.Description))
	}

	return tw.Flush()
}

// WriteIngredients prints every ingredient kind with its weight and asset.
func WriteIngredients(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Index"),
		TableHeaderStyle.Render("Short"),
		TableHeaderStyle.Render("Name"),
		TableHeaderStyle.Render("Weight"),
		TableHeaderStyle.Render("Asset"))

	for _, ing := range model.AllIngredients() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			int(ing), ing.ShortName(), ing.Name(), ing.Weight(), ing.AssetPath())
	}

	return tw.Flush()
}

// summarize keeps the first line of a description and truncates it.
func summarize(description string) string {
	line, _, more := strings.Cut(description, "\n")
	runes := []rune(line)
	if len(runes) > maxDescriptionWidth {
		return string(runes[:maxDescriptionWidth-1]) + "…"
	}
	if more {
		return line + " …"
	}
	if line == "" {
		return SubtleStyle.Render("(no description)")
	}
	return line
}
