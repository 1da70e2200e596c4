package grader

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EvaluateResponse is the body of a successful POST /evaluate.
type EvaluateResponse struct {
	IsCorrect      bool   `json:"isCorrect"`
	Grade          *int   `json:"grade,omitempty"`
	NextHint       string `json:"nextHint,omitempty"`
	FullEvaluation string `json:"fullEvaluation,omitempty"`
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the body of a successful POST /ask.
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"model":  s.provider.ModelID(),
	})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question and answer are required"})
		return
	}

	content, err := s.generate(c.Request.Context(), gradingSystemPrompt, buildGradingPrompt(req.Question, req.Answer))
	if err != nil {
		s.logger.Warn("evaluation failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "evaluation failed"})
		return
	}

	res := parseGrading(content)
	c.JSON(http.StatusOK, EvaluateResponse{
		IsCorrect:      res.IsCorrect,
		Grade:          res.Grade,
		NextHint:       res.NextHint,
		FullEvaluation: res.FullEvaluation,
	})
}

func (s *Server) handleAsk(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question is required"})
		return
	}

	content, err := s.generate(c.Request.Context(), askSystemPrompt, req.Question)
	if err != nil {
		s.logger.Warn("ask failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to answer question"})
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Question: req.Question,
		Answer:   strings.TrimSpace(content),
	})
}
