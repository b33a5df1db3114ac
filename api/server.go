package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hnamzia/silent-auction-BE/internal/bid"
	"github.com/hnamzia/silent-auction-BE/internal/db"
	"github.com/hnamzia/silent-auction-BE/internal/event"
	"github.com/hnamzia/silent-auction-BE/internal/util"
	"github.com/hnamzia/silent-auction-BE/internal/watch"
)

type Server struct {
	router     *gin.Engine
	dbStore    db.Store
	config     *util.Config
	registry   *event.Registry
	membership *watch.MembershipManager
	bidGateway *bid.Gateway
	upgrader   websocket.Upgrader
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, config *util.Config, registry *event.Registry, membership *watch.MembershipManager, bidGateway *bid.Gateway) *Server {
	server := &Server{
		dbStore:    store,
		config:     config,
		registry:   registry,
		membership: membership,
		bidGateway: bidGateway,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     allowOrigin(config.AllowedOrigins),
		},
	}

	server.setupRouter()
	return server
}

// allowOrigin admits browser connections from the configured frontend
// origins. Requests without an Origin header (non-browser clients, tests)
// are allowed; origin-based access control is not a security boundary here.
func allowOrigin(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == "*" || strings.EqualFold(allowed, origin) {
				return true
			}
		}
		return false
	}
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.GET("/health", server.healthCheck)
	v1.GET("/ws", server.serveWebSocket)
	v1.POST("/auction-items/:itemID/bids", server.createAuctionItemBid)

	server.router = router
	return router
}

func (server *Server) healthCheck(c *gin.Context) {
	if err := server.dbStore.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
