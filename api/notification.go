package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/store"
)

// listMessages returns a user's in-app feed, newest first.
func (s *Server) listMessages(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.store.GetUser(userID); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	messages, err := s.store.ListNotificationsByUser(userID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// markMessageRead flips a single feed item to read. Marking an already
// read item again is a no-op success.
func (s *Server) markMessageRead(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("messageID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.MarkNotificationRead(messageID); err != nil {
		if err == store.ErrNotificationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorNotificationNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
