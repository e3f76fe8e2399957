package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rahalah/pkg/response"
)

// Process godoc
// @Summary     Process a chat message
// @Description Routes the message through the responder registry and returns the consolidated reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Chat message"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID, d := h.sessions.Resolve(req.SessionID)
	h.l.Infof(ctx, "chat: processing turn for session %s", sessionID)

	reply := d.Process(ctx, req.Message, req.Context)

	response.OK(c, newProcessResp(sessionID, reply))
}

// Confidence godoc
// @Summary     Score a message against every responder
// @Description Returns the raw confidence breakdown without running a turn. Debugging aid.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body confidenceReq true "Message to score"
// @Success     200  {object} confidenceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/confidence [POST]
func (h *handler) Confidence(c *gin.Context) {
	req, err := h.processConfidenceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, confidenceResp{Scores: h.scorer.ConfidenceBreakdown(req.Message)})
}

// History godoc
// @Summary     Get a session's conversation history
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/{session_id}/history [GET]
func (h *handler) History(c *gin.Context) {
	sessionID := c.Param("session_id")

	d, ok := h.sessions.Lookup(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	response.OK(c, historyResp{SessionID: sessionID, Messages: d.History()})
}

// Preferences godoc
// @Summary     Get a session's extracted travel preferences
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} preferencesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/{session_id}/preferences [GET]
func (h *handler) Preferences(c *gin.Context) {
	sessionID := c.Param("session_id")

	d, ok := h.sessions.Lookup(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	response.OK(c, preferencesResp{SessionID: sessionID, Preferences: d.Preferences()})
}
