// Package fakecatalog is an in-memory stand-in for the remote catalog
// service, used by tests. It implements the service's HTTP surface with
// Spring-style page and slice responses, enforces child-before-parent
// deletion, and emits Server-Timing headers on paginated reads.
package fakecatalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type user struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	UserID      int64           `json:"userId"`
	CategoryIDs []int64         `json:"categoryIds"`
	CreatedAt   string          `json:"createdAt"`
}

// Server is the fake service. Zero value is not usable; call New.
type Server struct {
	mu         sync.Mutex
	categories []category
	users      []user
	products   []product
	nextID     int64
	clock      time.Time

	// FailCreates, when set, makes creates of the given kind ("category",
	// "user", "product") answer 500. Used to exercise failure counting.
	FailCreates func(kind string) bool
}

// New returns an empty fake catalog.
func New() *Server {
	return &Server{
		nextID: 1,
		clock:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Counts returns the number of stored categories, users and products.
func (s *Server) Counts() (categories, users, products int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.categories), len(s.users), len(s.products)
}

func (s *Server) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// timestamp hands out strictly increasing creation times so createdAt
// ordering is well defined.
func (s *Server) timestamp() string {
	s.clock = s.clock.Add(time.Second)
	return s.clock.Format("2006-01-02T15:04:05")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ServeHTTP routes the fake service's endpoints.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == "/categories":
		s.handleCategories(w, r)
	case strings.HasPrefix(path, "/categories/"):
		s.handleCategory(w, r, strings.TrimPrefix(path, "/categories/"))
	case path == "/users":
		s.handleUsers(w, r)
	case strings.HasPrefix(path, "/users/"):
		s.handleUser(w, r, strings.TrimPrefix(path, "/users/"))
	case path == "/products" && r.Method == http.MethodPost:
		s.handleCreateProduct(w, r)
	case path == "/products":
		s.handlePagedProducts(w, r)
	case path == "/products/all":
		s.handleAllProducts(w, r)
	case path == "/products/slice":
		s.handleSliceProducts(w, r)
	case path == "/products/search":
		s.handleSearchProducts(w, r)
	case strings.HasPrefix(path, "/products/user/"):
		s.handleOwnerProducts(w, r, strings.TrimPrefix(path, "/products/user/"))
	case strings.HasPrefix(path, "/products/"):
		s.handleProduct(w, r, strings.TrimPrefix(path, "/products/"))
	default:
		writeError(w, http.StatusNotFound, "no such endpoint")
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, append([]category(nil), s.categories...))
	case http.MethodPost:
		if s.FailCreates != nil && s.FailCreates("category") {
			writeError(w, http.StatusInternalServerError, "injected failure")
			return
		}
		var c category
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeError(w, http.StatusBadRequest, "bad payload")
			return
		}
		for _, existing := range s.categories {
			if existing.Name == c.Name {
				writeError(w, http.StatusConflict, "duplicate category name")
				return
			}
		}
		c.ID = s.id()
		s.categories = append(s.categories, c)
		writeJSON(w, http.StatusCreated, c)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request, raw string) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		for _, cid := range p.CategoryIDs {
			if cid == id {
				writeError(w, http.StatusConflict, "category still referenced by products")
				return
			}
		}
	}
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "category not found")
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, append([]user(nil), s.users...))
	case http.MethodPost:
		if s.FailCreates != nil && s.FailCreates("user") {
			writeError(w, http.StatusInternalServerError, "injected failure")
			return
		}
		var u struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			writeError(w, http.StatusBadRequest, "bad payload")
			return
		}
		for _, existing := range s.users {
			if existing.Email == u.Email {
				writeError(w, http.StatusConflict, "duplicate email")
				return
			}
		}
		created := user{ID: s.id(), Name: u.Name, Email: u.Email, Password: u.Password}
		s.users = append(s.users, created)
		writeJSON(w, http.StatusCreated, created)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request, raw string) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.UserID == id {
			writeError(w, http.StatusConflict, "user still referenced by products")
			return
		}
	}
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "user not found")
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreates != nil && s.FailCreates("product") {
		writeError(w, http.StatusInternalServerError, "injected failure")
		return
	}
	var p product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	if p.Name == "" || len(p.CategoryIDs) == 0 {
		writeError(w, http.StatusBadRequest, "name and categoryIds are required")
		return
	}
	if !s.userExists(p.UserID) {
		writeError(w, http.StatusBadRequest, "unknown userId")
		return
	}
	for _, cid := range p.CategoryIDs {
		if !s.categoryExists(cid) {
			writeError(w, http.StatusBadRequest, "unknown categoryId")
			return
		}
	}
	for _, existing := range s.products {
		if existing.Name == p.Name {
			writeError(w, http.StatusConflict, "duplicate product name")
			return
		}
	}
	p.ID = s.id()
	p.CreatedAt = s.timestamp()
	s.products = append(s.products, p)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) userExists(id int64) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) categoryExists(id int64) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) handleAllProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]product(nil), s.products...))
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request, raw string) {
	id, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		for _, p := range s.products {
			if p.ID == id {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeError(w, http.StatusNotFound, "product not found")
	case http.MethodDelete:
		for i, p := range s.products {
			if p.ID == id {
				s.products = append(s.products[:i], s.products[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeError(w, http.StatusNotFound, "product not found")
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// pageParams reads page/size/sort with the service's defaults.
func pageParams(r *http.Request) (page, size int, sortSpec string) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	return page, size, r.URL.Query().Get("sort")
}

// sortProducts orders items by a "field,direction" spec. Unknown fields
// leave the order untouched, mirroring lenient real-world services.
func sortProducts(items []product, spec string) {
	if spec == "" {
		return
	}
	field := spec
	desc := false
	if i := strings.IndexByte(spec, ','); i >= 0 {
		field = spec[:i]
		desc = spec[i+1:] == "desc"
	}
	less := func(a, b product) bool {
		switch field {
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case "price":
			return a.Price.LessThan(b.Price)
		case "stock":
			return a.Stock < b.Stock
		case "createdAt":
			return a.CreatedAt < b.CreatedAt
		case "id":
			return a.ID < b.ID
		default:
			return false
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// paginate slices items for the requested page.
func paginate(items []product, page, size int) (content []product, total int) {
	total = len(items)
	start := page * size
	if start >= total {
		return []product{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], total
}

type pageResponse struct {
	Content          []product `json:"content"`
	TotalElements    int64     `json:"totalElements"`
	TotalPages       int       `json:"totalPages"`
	NumberOfElements int       `json:"numberOfElements"`
	Number           int       `json:"number"`
	Size             int       `json:"size"`
	First            bool      `json:"first"`
	Last             bool      `json:"last"`
}

type sliceResponse struct {
	Content          []product `json:"content"`
	NumberOfElements int       `json:"numberOfElements"`
	Number           int       `json:"number"`
	Size             int       `json:"size"`
	First            bool      `json:"first"`
	Last             bool      `json:"last"`
	HasNext          bool      `json:"hasNext"`
	HasPrevious      bool      `json:"hasPrevious"`
}

func buildPage(items []product, page, size int) pageResponse {
	content, total := paginate(items, page, size)
	totalPages := (total + size - 1) / size
	last := totalPages == 0 || page >= totalPages-1
	return pageResponse{
		Content:          content,
		TotalElements:    int64(total),
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		Number:           page,
		Size:             size,
		First:            page == 0,
		Last:             last,
	}
}

func buildSlice(items []product, page, size int) sliceResponse {
	content, total := paginate(items, page, size)
	hasNext := (page+1)*size < total
	return sliceResponse{
		Content:          content,
		NumberOfElements: len(content),
		Number:           page,
		Size:             size,
		First:            page == 0,
		Last:             !hasNext,
		HasNext:          hasNext,
		HasPrevious:      page > 0,
	}
}

func (s *Server) snapshotProducts() []product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]product(nil), s.products...)
}

func (s *Server) handlePagedProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	page, size, sortSpec := pageParams(r)
	items := s.snapshotProducts()
	sortProducts(items, sortSpec)
	w.Header().Set("Server-Timing", "query;dur=1.4, count;dur=0.6")
	writeJSON(w, http.StatusOK, buildPage(items, page, size))
}

func (s *Server) handleSliceProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	page, size, sortSpec := pageParams(r)
	items := s.snapshotProducts()
	sortProducts(items, sortSpec)
	w.Header().Set("Server-Timing", "query;dur=1.4")
	writeJSON(w, http.StatusOK, buildSlice(items, page, size))
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	page, size, sortSpec := pageParams(r)
	q := r.URL.Query()

	items := s.snapshotProducts()
	filtered := make([]product, 0, len(items))
	name := strings.ToLower(q.Get("name"))
	var minPrice, maxPrice *decimal.Decimal
	if raw := q.Get("minPrice"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			minPrice = &d
		} else {
			writeError(w, http.StatusBadRequest, "bad minPrice")
			return
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			maxPrice = &d
		} else {
			writeError(w, http.StatusBadRequest, "bad maxPrice")
			return
		}
	}
	for _, p := range items {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if minPrice != nil && p.Price.LessThan(*minPrice) {
			continue
		}
		if maxPrice != nil && p.Price.GreaterThan(*maxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}
	sortProducts(filtered, sortSpec)
	writeJSON(w, http.StatusOK, buildPage(filtered, page, size))
}

func (s *Server) handleOwnerProducts(w http.ResponseWriter, r *http.Request, raw string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ownerID, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}
	page, size, sortSpec := pageParams(r)
	items := s.snapshotProducts()
	owned := make([]product, 0, len(items))
	for _, p := range items {
		if p.UserID == ownerID {
			owned = append(owned, p)
		}
	}
	sortProducts(owned, sortSpec)
	writeJSON(w, http.StatusOK, buildPage(owned, page, size))
}

// Seed bulk-loads the fake store directly, bypassing HTTP. Handy for
// harness tests that only exercise reads.
func (s *Server) Seed(categories int, users int, products int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < categories; i++ {
		s.categories = append(s.categories, category{
			ID:   s.id(),
			Name: fmt.Sprintf("Category %d", i+1),
		})
	}
	for i := 0; i < users; i++ {
		s.users = append(s.users, user{
			ID:    s.id(),
			Name:  fmt.Sprintf("User %d", i+1),
			Email: fmt.Sprintf("user%d@example.com", i+1),
		})
	}
	for i := 0; i < products; i++ {
		cat := s.categories[i%len(s.categories)]
		owner := s.users[i%len(s.users)]
		s.products = append(s.products, product{
			ID:          s.id(),
			Name:        fmt.Sprintf("Product %04d", i+1),
			Description: fmt.Sprintf("Product %04d. Synthetic test record.", i+1),
			Price:       decimal.NewFromInt(int64(10 + i%1990)).Add(decimal.NewFromFloat(0.5)),
			Stock:       5 + i%196,
			UserID:      owner.ID,
			CategoryIDs: []int64{cat.ID},
			CreatedAt:   s.timestamp(),
		})
	}
}
