// Package fakeapi is an in-memory recipe backend served over httptest. It
// follows the real backend's routes, cookie session, payloads and messages
// closely enough for the client, services and REPL tests to run end to end.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/google/uuid"
)

const SessionCookieName = "session"

type user struct {
	id       int64
	email    string
	password string
	saved    map[int64]bool
	liked    map[int64]bool
}

type recipe struct {
	models.Recipe
	creator *user
}

// Request is one request seen by the server.
type Request struct {
	Method string
	Path   string
	// RequestID is the X-Request-ID header value.
	RequestID string
	// Form holds multipart values for recipe create and update.
	Form map[string]string
	// ImageName is the uploaded file name, if any.
	ImageName string
}

type override struct {
	status      int
	contentType string
	body        string
}

type Server struct {
	mu        sync.Mutex
	users     map[int64]*user
	sessions  map[string]int64
	recipes   map[int64]*recipe
	nextUser  int64
	nextRecp  int64
	requests  []Request
	overrides map[string]override

	ts *httptest.Server
}

// New starts a fake backend. Close it when done.
func New() *Server {
	s := &Server{
		users:     map[int64]*user{},
		sessions:  map[string]int64{},
		recipes:   map[int64]*recipe{},
		overrides: map[string]override{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/status", s.status)
	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("POST /api/auth/logout", s.requireUser(s.logout))
	mux.HandleFunc("GET /api/recipes", s.listRecipes)
	mux.HandleFunc("POST /api/recipes", s.requireUser(s.createRecipe))
	mux.HandleFunc("GET /api/recipes/{id}", s.getRecipe)
	mux.HandleFunc("PUT /api/recipes/{id}", s.requireUser(s.updateRecipe))
	mux.HandleFunc("DELETE /api/recipes/{id}", s.requireUser(s.deleteRecipe))
	mux.HandleFunc("POST /api/recipes/{id}/like", s.requireUser(s.toggleLike))
	mux.HandleFunc("POST /api/recipes/{id}/save", s.requireUser(s.toggleSave))
	mux.HandleFunc("GET /api/my-saved-recipes", s.requireUser(s.savedRecipes))
	mux.HandleFunc("GET /api/my-liked-recipes-status", s.requireUser(s.likedStatus))
	mux.HandleFunc("GET /api/my-saved-recipes-status", s.requireUser(s.savedStatus))

	s.ts = httptest.NewServer(s.record(mux))
	return s
}

func (s *Server) URL() string { return s.ts.URL }

func (s *Server) Close() { s.ts.Close() }

// AddUser creates an account and returns its id.
func (s *Server) AddUser(email, password string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(email, password).id
}

func (s *Server) addUserLocked(email, password string) *user {
	s.nextUser++
	u := &user{
		id:       s.nextUser,
		email:    email,
		password: password,
		saved:    map[int64]bool{},
		liked:    map[int64]bool{},
	}
	s.users[u.id] = u
	return u
}

// AddRecipe stores r as created by creatorID and returns its id.
func (s *Server) AddRecipe(creatorID int64, r models.Recipe) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRecp++
	r.ID = s.nextRecp
	if r.CreatedAt == "" {
		r.CreatedAt = time.Now().UTC().Format("2006-01-02T15:04:05")
	}
	s.recipes[r.ID] = &recipe{Recipe: r, creator: s.users[creatorID]}
	return r.ID
}

// Recipe returns the stored recipe as the backend would serialize it.
func (s *Server) Recipe(id int64) (models.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok {
		return models.Recipe{}, false
	}
	return r.dto(), true
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// RequestCount returns how many requests were received.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Override makes "METHOD /path" answer with a canned response from now on.
func (s *Server) Override(method, path string, status int, contentType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = override{status: status, contentType: contentType, body: body}
}

// ClearOverrides removes all canned responses.
func (s *Server) ClearOverrides() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = map[string]override{}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: r.Header.Get(common.RequestIDHeaderName),
		}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(8 << 20); err == nil {
				req.Form = map[string]string{}
				for k, v := range r.MultipartForm.Value {
					req.Form[k] = v[0]
				}
				if fh := r.MultipartForm.File["image"]; len(fh) > 0 {
					req.ImageName = fh[0].Filename
				}
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		o, ok := s.overrides[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			if o.contentType != "" {
				w.Header().Set("Content-Type", o.contentType)
			}
			w.WriteHeader(o.status)
			_, _ = w.Write([]byte(o.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) currentUser(r *http.Request) *user {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[c.Value]
	if !ok {
		return nil
	}
	return s.users[id]
}

type userHandler func(w http.ResponseWriter, r *http.Request, u *user)

func (s *Server) requireUser(h userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := s.currentUser(r)
		if u == nil {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized: Please log in.")
			return
		}
		h(w, r, u)
	}
}

func (s *Server) startSession(w http.ResponseWriter, u *user) {
	token := uuid.NewString()
	s.sessions[token] = u.id
	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: token, Path: "/", HttpOnly: true})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	u := s.currentUser(r)
	if u == nil {
		writeJSON(w, http.StatusOK, map[string]any{"loggedIn": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loggedIn": true, "userId": u.id, "userEmail": u.email})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decodeCredentials(r *http.Request) credentials {
	var c credentials
	_ = json.NewDecoder(r.Body).Decode(&c)
	return c
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	c := decodeCredentials(r)
	if c.Email == "" || c.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.email == c.Email {
			writeMessage(w, http.StatusConflict, "User with that email already exists.")
			return
		}
	}
	u := s.addUserLocked(c.Email, c.Password)
	s.startSession(w, u)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "User registered and logged in successfully!",
		"userId":    u.id,
		"userEmail": u.email,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	c := decodeCredentials(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.email == c.Email && u.password == c.Password {
			s.startSession(w, u)
			writeJSON(w, http.StatusOK, map[string]any{
				"message":   "Logged in successfully!",
				"userId":    u.id,
				"userEmail": u.email,
			})
			return
		}
	}
	writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request, _ *user) {
	if c, err := r.Cookie(SessionCookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "", Path: "/", MaxAge: -1})
	writeMessage(w, http.StatusOK, "Logged out successfully!")
}

func (r *recipe) dto() models.Recipe {
	out := r.Recipe
	out.Ingredients = slices.Clone(r.Ingredients)
	if out.Ingredients == nil {
		out.Ingredients = models.Ingredients{}
	}
	if r.creator != nil {
		out.CreatorID = r.creator.id
		out.CreatorEmail = r.creator.email
	}
	return out
}

func (s *Server) sortedRecipes(filter func(*recipe) bool) []models.Recipe {
	ids := make([]int64, 0, len(s.recipes))
	for id, r := range s.recipes {
		if filter == nil || filter(r) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	out := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.recipes[id].dto())
	}
	return out
}

func (s *Server) listRecipes(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.sortedRecipes(nil))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*recipe, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	rec, ok := s.recipes[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, "Recipe not found.")
		return nil, false
	}
	return rec, true
}

func (s *Server) getRecipe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec.dto())
}

func allowedImage(name string) bool {
	return slices.Contains(common.AllowedImageExtensions, strings.ToLower(filepath.Ext(name)))
}

func storedName(name string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + filepath.Base(name)
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request, u *user) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required fields.")
		return
	}
	title, desc := r.FormValue("title"), r.FormValue("description")
	ingr, instr := r.FormValue("ingredients"), r.FormValue("instructions")
	if title == "" || desc == "" || ingr == "" || instr == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	_, fh, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No image file was uploaded.")
		return
	}
	if !allowedImage(fh.Filename) {
		writeMessage(w, http.StatusBadRequest, "Invalid image file type. Allowed: png, jpg, jpeg, gif.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRecp++
	rec := &recipe{
		Recipe: models.Recipe{
			ID:            s.nextRecp,
			Title:         title,
			Description:   desc,
			Ingredients:   common.SplitList(ingr),
			Instructions:  instr,
			ImageFilename: storedName(fh.Filename),
			CreatedAt:     time.Now().UTC().Format("2006-01-02T15:04:05"),
		},
		creator: u,
	}
	s.recipes[rec.ID] = rec
	dto := rec.dto()
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Recipe added successfully!", "recipe": dto})
}

func (s *Server) updateRecipe(w http.ResponseWriter, r *http.Request, u *user) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("Error updating recipe: %v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if rec.creator != u {
		writeMessage(w, http.StatusForbidden, "Unauthorized: You can only update your own recipes.")
		return
	}

	if v, ok := r.MultipartForm.Value["title"]; ok {
		rec.Title = v[0]
	}
	if v, ok := r.MultipartForm.Value["description"]; ok {
		rec.Description = v[0]
	}
	if v, ok := r.MultipartForm.Value["ingredients"]; ok {
		rec.Ingredients = common.SplitList(v[0])
	}
	if v, ok := r.MultipartForm.Value["instructions"]; ok {
		rec.Instructions = v[0]
	}
	if _, fh, err := r.FormFile("image"); err == nil && fh.Filename != "" {
		if !allowedImage(fh.Filename) {
			writeMessage(w, http.StatusBadRequest, "Invalid image file type. Allowed: png, jpg, jpeg, gif.")
			return
		}
		rec.ImageFilename = storedName(fh.Filename)
	}
	if r.FormValue("image_removed") == "true" {
		rec.ImageFilename = ""
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Recipe updated successfully!", "recipe": rec.dto()})
}

func (s *Server) deleteRecipe(w http.ResponseWriter, r *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if rec.creator != u {
		writeMessage(w, http.StatusForbidden, "Unauthorized: You can only delete your own recipes.")
		return
	}
	for _, other := range s.users {
		delete(other.saved, rec.ID)
		delete(other.liked, rec.ID)
	}
	delete(s.recipes, rec.ID)
	writeMessage(w, http.StatusOK, "Recipe deleted successfully!")
}

func (s *Server) toggleLike(w http.ResponseWriter, r *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if u.liked[rec.ID] {
		delete(u.liked, rec.ID)
		rec.Likes = max(0, rec.Likes-1)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Recipe unliked!", "liked": false, "likes": rec.Likes})
		return
	}
	u.liked[rec.ID] = true
	rec.Likes++
	writeJSON(w, http.StatusOK, map[string]any{"message": "Recipe liked!", "liked": true, "likes": rec.Likes})
}

func (s *Server) toggleSave(w http.ResponseWriter, r *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if u.saved[rec.ID] {
		delete(u.saved, rec.ID)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Recipe unsaved!", "saved": false})
		return
	}
	u.saved[rec.ID] = true
	writeJSON(w, http.StatusOK, map[string]any{"message": "Recipe saved!", "saved": true})
}

func (s *Server) savedRecipes(w http.ResponseWriter, _ *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.sortedRecipes(func(r *recipe) bool { return u.saved[r.ID] }))
}

func idsOf(set map[int64]bool) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *Server) likedStatus(w http.ResponseWriter, _ *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"likedRecipeIds": idsOf(u.liked)})
}

func (s *Server) savedStatus(w http.ResponseWriter, _ *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"savedRecipeIds": idsOf(u.saved)})
}
