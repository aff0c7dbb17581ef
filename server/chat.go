package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/advisor"
)

// chatMarkdown renders model replies for the web client. Models answer in
// Markdown with tables, so GFM is on.
var chatMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type chatRequest struct {
	Messages []advisor.Message `json:"messages" binding:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	HTML  string `json:"html"`
}

// chat answers one conversation turn. The caller sends the whole running
// conversation; the server injects the current financial snapshot into the
// first user message before handing it to the model chain.
func (s *Server) chat(c *gin.Context) {
	if s.cfg.Advisor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "advisor not configured"})
		return
	}
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sess.mu.Lock()
	view := sess.book.Settings.View
	ref := finsight.CurrentRef(view)
	sum := finsight.NewSummary(sess.book, view, ref)
	fctx := advisor.BuildContext(sess.book, sum)
	sess.mu.Unlock()

	reply, err := s.cfg.Advisor.Ask(c.Request.Context(), advisor.WithContext(req.Messages, fctx))
	if err != nil {
		var exhausted *advisor.ExhaustedError
		if errors.As(err, &exhausted) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": exhausted.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := chatMarkdown.Convert([]byte(reply), &buf); err != nil {
		// Plain text is still a usable answer.
		buf.Reset()
		buf.WriteString(reply)
	}
	c.JSON(http.StatusOK, chatResponse{Reply: reply, HTML: buf.String()})
}

// listPrompts returns the quick-start questions the chat surface offers.
func (s *Server) listPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": advisor.QuickPrompts})
}
