package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/irdecode/internal/auth"
	"github.com/danmuck/irdecode/internal/observability"
	"github.com/danmuck/irdecode/internal/protocol"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type decodeRequest struct {
	Sequence string `json:"sequence"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) RegisterRoutes() {
	observability.RegisterMetrics()

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.started).String(),
			"service": s.name,
			"version": Version,
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.POST("/decode", s.requireToken(), s.handleDecode)
}

func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if err := s.validator.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleDecode(c *gin.Context) {
	sequence, err := s.readSequence(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	res, err := protocol.DecodeResult(sequence)
	code := protocol.Code(err)
	observability.RecordDecode(code)
	if err != nil {
		s.logger.Debug().
			Str("request_id", observability.RequestIDFrom(c)).
			Str("code", code).
			Err(err).
			Msg("decode rejected")
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: code})
		return
	}
	c.JSON(http.StatusOK, res)
}

// readSequence accepts either a raw text line or {"sequence": "..."}.
func (s *Server) readSequence(c *gin.Context) (string, error) {
	limit := int64(s.limits.MaxLineBytes)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, limit+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > limit {
		return "", errors.New("request body too large")
	}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req decodeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return "", err
		}
		return req.Sequence, nil
	}
	return strings.TrimRight(string(body), "\r\n"), nil
}
