package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "http://localhost:5000"

func recipes() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Title: "Soup", Description: "Hot", Ingredients: models.Ingredients{"water", "salt"}, Instructions: "Boil", CreatorID: 10, CreatorEmail: "me@x", Likes: 2, ImageFilename: "soup.png"},
		{ID: 2, Title: "Cake", Description: "Sweet", CreatorID: 20, Likes: 0},
	}
}

func loggedInStore() *state.Store {
	s := state.NewStore()
	s.SetCurrentUser(&models.User{ID: 10, Email: "me@x"})
	s.SetSavedIDs([]int64{2})
	s.SetLikedIDs([]int64{1})
	return s
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestBuildCard_FromStore(t *testing.T) {
	cards := Cards(recipes(), loggedInStore(), base)
	require.Len(t, cards, 2)

	soup, cake := cards[0], cards[1]
	assert.True(t, soup.Liked)
	assert.False(t, soup.Saved)
	assert.True(t, soup.ShowToggles)
	assert.True(t, soup.ShowOwnerControls)
	assert.Equal(t, base+"/uploads/soup.png", soup.ImageURL)

	assert.True(t, cake.Saved)
	assert.False(t, cake.ShowOwnerControls)
	assert.Equal(t, UnknownCreator, cake.CreatorEmail)
	assert.Equal(t, common.PlaceholderImageURL, cake.ImageURL)
}

func TestBuildCard_LoggedOutHidesControls(t *testing.T) {
	for _, c := range Cards(recipes(), state.NewStore(), base) {
		assert.False(t, c.ShowToggles)
		assert.False(t, c.ShowOwnerControls)
	}
}

func TestCard_Labels(t *testing.T) {
	c := Card{Likes: 3}
	assert.Equal(t, "Save", c.SaveLabel())
	assert.Equal(t, "Like", c.LikeLabel())
	assert.Equal(t, "View Details", c.DetailsLabel())
	assert.Equal(t, "Likes: 3", c.LikesText())

	c.ApplySave(true)
	c.ApplyLike(true, 4)
	c.ToggleDetails()
	assert.Equal(t, "Unsave", c.SaveLabel())
	assert.Equal(t, "Unlike", c.LikeLabel())
	assert.Equal(t, "Unlike recipe", c.LikeAriaLabel())
	assert.Equal(t, "Hide Details", c.DetailsLabel())
	assert.Equal(t, "Likes: 4", c.LikesText())

	c.ToggleDetails()
	assert.Equal(t, "View Details", c.DetailsLabel())
}

func TestFind(t *testing.T) {
	cards := Cards(recipes(), state.NewStore(), base)
	assert.Equal(t, 1, Find(cards, 2))
	assert.Equal(t, -1, Find(cards, 99))
}

func TestHTML_OwnerControlsOnlyForCreator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Cards(recipes(), loggedInStore(), base), NoRecipes))
	doc := parse(t, buf.String())

	assert.Equal(t, 2, doc.Find(".recipe-card").Length())

	soup := doc.Find(`.recipe-card[data-id="1"]`)
	assert.Equal(t, 1, soup.Find(".edit-recipe-btn").Length())
	assert.Equal(t, 1, soup.Find(".delete-recipe-btn").Length())
	assert.Equal(t, "Save", strings.TrimSpace(soup.Find(".save-recipe-btn").Text()))
	pressed, _ := soup.Find(".like-recipe-btn").Attr("aria-pressed")
	assert.Equal(t, "true", pressed)
	assert.Equal(t, "Likes: 2", soup.Find(`[data-likes-count="1"]`).Text())
	assert.Equal(t, 2, soup.Find(".recipe-card-details li").Length())
	assert.True(t, soup.Find(".recipe-card-details").HasClass("hidden"))

	cake := doc.Find(`.recipe-card[data-id="2"]`)
	assert.Zero(t, cake.Find(".edit-recipe-btn").Length())
	assert.Zero(t, cake.Find(".delete-recipe-btn").Length())
	assert.Equal(t, "Unsave", strings.TrimSpace(cake.Find(".save-recipe-btn").Text()))
	assert.Equal(t, NoIngredients, cake.Find(".recipe-card-details li").Text())
	assert.Equal(t, "By: Unknown", cake.Find(".creator").Text())
}

func TestHTML_LoggedOutHasNoToggles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Cards(recipes(), state.NewStore(), base), NoRecipes))
	doc := parse(t, buf.String())

	assert.Zero(t, doc.Find(".save-recipe-btn").Length())
	assert.Zero(t, doc.Find(".like-recipe-btn").Length())
	assert.Zero(t, doc.Find(".edit-recipe-btn").Length())
	assert.Equal(t, 2, doc.Find(".view-details-btn").Length())
}

func TestHTML_EscapesAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	cards := []Card{{ID: 5, Title: `<script>alert(1)</script>`}}
	require.NoError(t, HTML(&buf, cards, NoRecipes))
	assert.NotContains(t, buf.String(), "<script>")

	buf.Reset()
	require.NoError(t, HTML(&buf, nil, NoSavedRecipes))
	doc := parse(t, buf.String())
	assert.Equal(t, NoSavedRecipes, doc.Find(".empty-message").Text())
}

func TestHTML_ExpandedCardShowsDetails(t *testing.T) {
	cards := Cards(recipes()[:1], state.NewStore(), base)
	cards[0].ToggleDetails()

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, cards, NoRecipes))
	doc := parse(t, buf.String())
	assert.False(t, doc.Find(".recipe-card-details").HasClass("hidden"))
	assert.Equal(t, "Hide Details", doc.Find(".view-details-btn").Text())
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	cards := Cards(recipes(), loggedInStore(), base)
	cards[0].ToggleDetails()
	require.NoError(t, Text(&buf, cards, NoRecipes))

	out := buf.String()
	for _, want := range []string{"Soup", "By: me@x", "Likes: 2", "Hide Details", "Unlike", "Edit", "Delete", "[ ] water", "Boil", "Cake", "Unsave"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, Text(&buf, nil, NoRecipes))
	assert.Contains(t, buf.String(), NoRecipes)
}

func TestMarkdownAndDetails(t *testing.T) {
	c := BuildCard(recipes()[0], state.NewStore(), base)

	md := Markdown(c)
	assert.Contains(t, md, "# Soup")
	assert.Contains(t, md, "- [ ] water")
	assert.Contains(t, md, "## Instructions")

	out, err := Details(c, 60, "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Soup")
	assert.Contains(t, out, "water")
	assert.Contains(t, out, "Boil")

	empty := Markdown(Card{Title: "Bare"})
	assert.Contains(t, empty, NoIngredients)
}
