package state

import (
	"sync"
	"testing"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Title: "Soup", CreatorID: 10, Likes: 2},
		{ID: 2, Title: "Cake", CreatorID: 20, Likes: 0},
		{ID: 3, Title: "Stew", CreatorID: 10, Likes: 5},
	}
}

func TestStore_UserLifecycle(t *testing.T) {
	s := NewStore()

	_, ok := s.CurrentUser()
	require.False(t, ok)
	require.False(t, s.LoggedIn())

	u := &models.User{ID: 10, Email: "a@b.c"}
	s.SetCurrentUser(u)
	u.Email = "mutated"

	got, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "a@b.c", got.Email, "store keeps its own copy")

	s.SetCurrentUser(nil)
	assert.False(t, s.LoggedIn())
}

func TestStore_IsCreator(t *testing.T) {
	s := NewStore()
	r := sampleRecipes()

	assert.False(t, s.IsCreator(r[0]), "nobody logged in")

	s.SetCurrentUser(&models.User{ID: 10})
	assert.True(t, s.IsCreator(r[0]))
	assert.False(t, s.IsCreator(r[1]))
}

func TestStore_RecipesAreCopies(t *testing.T) {
	s := NewStore()
	in := sampleRecipes()
	s.SetRecipes(in)
	in[0].Title = "changed"

	out := s.Recipes()
	assert.Equal(t, "Soup", out[0].Title)
	out[1].Title = "changed too"
	r, ok := s.Recipe(2)
	require.True(t, ok)
	assert.Equal(t, "Cake", r.Title)
}

func TestStore_SetLikesAndRemove(t *testing.T) {
	s := NewStore()
	s.SetRecipes(sampleRecipes())
	s.SetSavedIDs([]int64{1, 3})
	s.SetLikedIDs([]int64{3})

	s.SetLikes(3, 6)
	r, _ := s.Recipe(3)
	assert.Equal(t, 6, r.Likes)

	s.SetLikes(99, 1) // unknown id is ignored

	s.RemoveRecipe(3)
	_, ok := s.Recipe(3)
	assert.False(t, ok)
	assert.Len(t, s.Recipes(), 2)
	assert.False(t, s.IsSaved(3))
	assert.False(t, s.IsLiked(3))
	assert.Equal(t, []int64{1}, s.SavedIDs())
}

func TestStore_MarkToggleTwiceRestoresMembership(t *testing.T) {
	s := NewStore()
	s.SetSavedIDs([]int64{2})

	before := s.IsSaved(1)
	s.MarkSaved(1, !before)
	s.MarkSaved(1, before)
	assert.Equal(t, before, s.IsSaved(1))
	assert.Equal(t, []int64{2}, s.SavedIDs())

	s.MarkLiked(5, true)
	assert.True(t, s.IsLiked(5))
	s.MarkLiked(5, false)
	assert.Empty(t, s.LikedIDs())
}

func TestStore_ResetClearsUserScopedState(t *testing.T) {
	s := NewStore()
	s.SetCurrentUser(&models.User{ID: 10})
	s.SetRecipes(sampleRecipes())
	s.SetSavedIDs([]int64{1, 2})
	s.SetLikedIDs([]int64{3})
	s.SetRecipeToDelete(1)

	s.Reset()

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.SavedIDs())
	assert.Empty(t, s.LikedIDs())
	_, pending := s.RecipeToDelete()
	assert.False(t, pending)
	assert.Len(t, s.Recipes(), 3, "public recipe cache survives logout")
	for _, r := range s.Recipes() {
		assert.False(t, s.IsCreator(r))
	}
}

func TestStore_PendingDeleteAndAuthMode(t *testing.T) {
	s := NewStore()
	assert.Equal(t, AuthModeLogin, s.AuthMode())
	s.SetAuthMode(AuthModeRegister)
	assert.Equal(t, AuthModeRegister, s.AuthMode())

	s.SetRecipeToDelete(4)
	id, ok := s.RecipeToDelete()
	assert.True(t, ok)
	assert.Equal(t, int64(4), id)
	s.ClearRecipeToDelete()
	_, ok = s.RecipeToDelete()
	assert.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	s.SetRecipes(sampleRecipes())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.MarkLiked(int64(j%3+1), i%2 == 0)
				s.SetLikes(int64(j%3+1), j)
				_ = s.Recipes()
				_ = s.LikedIDs()
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Recipes(), 3)
}
