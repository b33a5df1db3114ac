package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hnamzia/silent-auction-BE/internal/bid"
	"github.com/hnamzia/silent-auction-BE/internal/db"
)

type createBidRequest struct {
	// UserID comes from the session layer fronting this service; bid
	// business rules (monotonic increase, ownership) are enforced by the
	// persistence side before the broadcast happens.
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// @Summary		Place a bid on an auction item
// @Description	Persists an already-validated bid and broadcasts it to every watcher of the item
// @Tags			bids
// @Accept			json
// @Produce		json
// @Param			itemID	path		string				true	"Auction item ID"
// @Param			request	body		createBidRequest	true	"Bid details"
// @Success		200		{object}	object				"Bid accepted and broadcast"
// @Failure		400		{object}	object				"Invalid request body"
// @Router			/auction-items/{itemID}/bids [post]
func (server *Server) createAuctionItemBid(c *gin.Context) {
	auctionItemID := c.Param("itemID")

	var req createBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	result, err := server.bidGateway.SubmitBid(c.Request.Context(), bid.SubmitBidParams{
		UserID:        req.UserID,
		AuctionItemID: auctionItemID,
		Amount:        req.Amount,
	})
	if err != nil {
		// A bid on a nonexistent item surfaces as a foreign-key violation
		// from the bids insert, not as a missing-row read.
		if errCode, _ := db.ErrorDescription(err); errCode == db.ForeignKeyViolationCode {
			c.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("auction item %s not found", auctionItemID)))
			return
		}

		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "ok",
		"item_name": result.ItemName,
	})
}
