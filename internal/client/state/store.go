// Package state holds the client's in-memory view of the backend: the
// current user, the cached recipe list and the user's liked/saved sets.
//
// A Store is created once and injected into the services and views that
// need it. There are no transactions: every setter replaces what was there
// and readers always get copies, so a consumer re-renders after mutating.
package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

// AuthMode is the variant of the auth form.
type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

type Store struct {
	mu sync.RWMutex

	user     *models.User
	recipes  []models.Recipe
	saved    map[int64]struct{}
	liked    map[int64]struct{}
	toDelete int64
	authMode AuthMode
}

func NewStore() *Store {
	return &Store{
		saved:    map[int64]struct{}{},
		liked:    map[int64]struct{}{},
		authMode: AuthModeLogin,
	}
}

// CurrentUser returns the logged-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// SetCurrentUser replaces the current user; nil logs the user out locally.
func (s *Store) SetCurrentUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

func (s *Store) LoggedIn() bool {
	_, ok := s.CurrentUser()
	return ok
}

// IsCreator reports whether the current user created r. It is false when
// nobody is logged in.
func (s *Store) IsCreator(r models.Recipe) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.ID == r.CreatorID
}

func (s *Store) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recipes)
}

func (s *Store) SetRecipes(recipes []models.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = slices.Clone(recipes)
}

func (s *Store) Recipe(id int64) (models.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Recipe{}, false
	}
	return s.recipes[i], true
}

// RemoveRecipe drops a recipe from the cache and from both id sets.
func (s *Store) RemoveRecipe(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.recipes = slices.Delete(s.recipes, i, i+1)
	}
	delete(s.saved, id)
	delete(s.liked, id)
}

// SetLikes stores the like count reported by the backend.
func (s *Store) SetLikes(id int64, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.recipes[i].Likes = likes
	}
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.recipes, func(r models.Recipe) bool { return r.ID == id })
}

func (s *Store) SavedIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.saved)
}

func (s *Store) LikedIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.liked)
}

func (s *Store) SetSavedIDs(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = toSet(ids)
}

func (s *Store) SetLikedIDs(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = toSet(ids)
}

func (s *Store) IsSaved(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.saved[id]
	return ok
}

func (s *Store) IsLiked(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.liked[id]
	return ok
}

// MarkSaved records the saved state returned by a successful toggle.
func (s *Store) MarkSaved(id int64, saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mark(s.saved, id, saved)
}

// MarkLiked records the liked state returned by a successful toggle.
func (s *Store) MarkLiked(id int64, liked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mark(s.liked, id, liked)
}

func (s *Store) SetRecipeToDelete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toDelete = id
}

func (s *Store) RecipeToDelete() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toDelete, s.toDelete != 0
}

func (s *Store) ClearRecipeToDelete() {
	s.SetRecipeToDelete(0)
}

func (s *Store) AuthMode() AuthMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authMode
}

func (s *Store) SetAuthMode(m AuthMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authMode = m
}

// Reset forgets everything scoped to the user: the user itself, both id sets
// and a pending delete. The recipe cache is kept; it is public data.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.saved = map[int64]struct{}{}
	s.liked = map[int64]struct{}{}
	s.toDelete = 0
}

func toSet(ids []int64) map[int64]struct{} {
	m := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func mark(set map[int64]struct{}, id int64, on bool) {
	if on {
		set[id] = struct{}{}
		return
	}
	delete(set, id)
}

func sortedKeys(m map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
