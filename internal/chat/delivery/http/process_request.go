package http

import (
	"github.com/gin-gonic/gin"
)

// processProcessReq binds and validates the chat request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processConfidenceReq binds and validates the confidence request body.
func (h *handler) processConfidenceReq(c *gin.Context) (confidenceReq, error) {
	var req confidenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
