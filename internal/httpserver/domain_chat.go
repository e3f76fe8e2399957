package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "rahalah/internal/chat/delivery/http"
	"rahalah/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.sessions, srv.scorer)

	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
