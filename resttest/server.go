package resttest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/restree/logger"
)

// collection holds the models of one concrete collection path in insertion
// order.
type collection struct {
	order []string
	items map[string]map[string]any
}

// Server is an in-memory REST API backed by gin and httptest.
type Server struct {
	engine *gin.Engine
	srv    *httptest.Server
	log    *logger.Logger

	mu   sync.Mutex
	data map[string]*collection
}

// Option configures a Server.
type Option func(*Server)

// WithLogger enables request logging.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New starts a server exposing CRUD routes for each declared resource path
// (slash-delimited, e.g. "users/posts"). Close must be called when done.
func New(paths []string, opts ...Option) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		engine: gin.New(),
		log:    logger.Nop(),
		data:   make(map[string]*collection),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine.Use(s.logRequests())

	registered := make(map[string]bool)
	for _, path := range paths {
		s.register(path, registered)
	}

	s.srv = httptest.NewServer(s.engine)
	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// Seed inserts a model into the collection at the given concrete path
// (e.g. "/users/9000/posts"). An empty id generates one. Returns the id.
func (s *Server) Seed(path, id string, model map[string]any) string {
	if id == "" {
		id = uuid.New().String()
	}
	copied := make(map[string]any, len(model)+1)
	for k, v := range model {
		copied[k] = v
	}
	copied["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(path).insert(id, copied)
	return id
}

// register wires the CRUD routes for one declared path. Identifier params
// are named by depth so sibling declarations agree on wildcard names.
func (s *Server) register(path string, registered map[string]bool) {
	pattern := ""
	for depth, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		pattern += "/" + seg
		if !registered[pattern] {
			registered[pattern] = true
			s.engine.POST(pattern, s.create)
			s.engine.GET(pattern, s.list)
			// Configured clients may create with put on the collection route.
			s.engine.PUT(pattern, s.create)
		}
		pattern += fmt.Sprintf("/:id%d", depth)
		if !registered[pattern] {
			registered[pattern] = true
			s.engine.GET(pattern, s.get)
			s.engine.PUT(pattern, s.replace)
			s.engine.PATCH(pattern, s.patch)
			s.engine.DELETE(pattern, s.delete)
		}
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Debug("handled", logger.Fields(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		))
	}
}

// collection returns the collection at path, creating it if needed.
// Callers must hold mu.
func (s *Server) collection(path string) *collection {
	if c, ok := s.data[path]; ok {
		return c
	}
	c := &collection{items: make(map[string]map[string]any)}
	s.data[path] = c
	return c
}

func (c *collection) insert(id string, model map[string]any) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = model
}

func (c *collection) remove(id string) {
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// splitItemPath splits a concrete item path into its collection path and id.
func splitItemPath(path string) (string, string) {
	idx := strings.LastIndex(path, "/")
	return path[:idx], path[idx+1:]
}

func (s *Server) create(c *gin.Context) {
	var model map[string]any
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, _ := model["id"].(string)
	if id == "" {
		id = uuid.New().String()
		model["id"] = id
	}

	s.mu.Lock()
	s.collection(c.Request.URL.Path).insert(id, model)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, model)
}

func (s *Server) list(c *gin.Context) {
	s.mu.Lock()
	col := s.collection(c.Request.URL.Path)
	models := make([]map[string]any, 0, len(col.order))
	for _, id := range col.order {
		models = append(models, col.items[id])
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, models)
}

func (s *Server) get(c *gin.Context) {
	path, id := splitItemPath(c.Request.URL.Path)

	s.mu.Lock()
	model, ok := s.collection(path).items[id]
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, model)
}

func (s *Server) replace(c *gin.Context) {
	var model map[string]any
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	path, id := splitItemPath(c.Request.URL.Path)
	model["id"] = id

	s.mu.Lock()
	col := s.collection(path)
	_, existed := col.items[id]
	col.insert(id, model)
	s.mu.Unlock()

	if !existed {
		c.JSON(http.StatusCreated, model)
		return
	}
	c.JSON(http.StatusOK, model)
}

func (s *Server) patch(c *gin.Context) {
	var changes map[string]any
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	path, id := splitItemPath(c.Request.URL.Path)

	s.mu.Lock()
	model, ok := s.collection(path).items[id]
	if ok {
		for k, v := range changes {
			if k == "id" {
				continue
			}
			model[k] = v
		}
	}
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, model)
}

func (s *Server) delete(c *gin.Context) {
	path, id := splitItemPath(c.Request.URL.Path)

	s.mu.Lock()
	col := s.collection(path)
	_, ok := col.items[id]
	col.remove(id)
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
