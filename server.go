package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/detoxlab/detox/cleaner"
	"github.com/detoxlab/detox/db"
	"github.com/detoxlab/detox/svm"
)

type Server struct {
	snap   *svm.Snapshot
	clean  *cleaner.Cleaner
	d      *db.DBManager
	router *gin.Engine
}

// NewServer wires the classify API around a loaded snapshot. The db
// manager may be nil, in which case the runs endpoint reports that no
// database is configured.
func NewServer(snap *svm.Snapshot, d *db.DBManager) *Server {
	s := Server{
		snap:   snap,
		clean:  cleaner.NewCleaner(),
		d:      d,
		router: gin.Default(),
	}
	s.router.Use(cors.Default())

	api := s.router.Group("/api")
	{
		api.POST("/classify", s.classifyHandler)
		api.GET("/report", s.reportHandler)
		api.GET("/runs", s.returnRunsHandler)
	}
	return &s
}

func (s *Server) startServer() error {
	return s.router.Run(":3100")
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

type classifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// classifyHandler answers one ad-hoc query. Input passes through the
// same normalization as training text, preceded by emoji slugging.
func (s *Server) classifyHandler(c *gin.Context) {
	var input classifyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	normalized := s.clean.Normalize(s.clean.SlugEmoji(input.Text))
	c.JSON(http.StatusOK, gin.H{
		"attack": s.snap.Classify(normalized)[0],
		"score":  s.snap.Score(normalized),
	})
}

// reportHandler describes the loaded model.
func (s *Server) reportHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"vocabulary": len(s.snap.Vectorizer.Vocabulary),
		"documents":  s.snap.Vectorizer.NumDocs,
		"c":          s.snap.Model.C,
		"max_iter":   s.snap.Model.MaxIter,
		"epochs":     s.snap.Model.Iters,
		"seed":       s.snap.Model.Seed,
	})
}

func (s *Server) returnRunsHandler(c *gin.Context) {
	if s.d == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}
	c.JSON(http.StatusOK, s.d.ReturnRuns())
}
