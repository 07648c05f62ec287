package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "user already exists"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()

	pair, user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			// Deliberately the same body for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user":          user,
	})
}

func (s *Server) refresh(c *gin.Context) {
	ctx := c.Request.Context()

	pair, err := s.users.Refresh(ctx, currentUserID(c))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (s *Server) logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.users.Logout(ctx, currentUserID(c)); err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) profile(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	records, err := s.records.List(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	if records == nil {
		records = []*models.Record{}
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "records": records})
}

type createRecordRequest struct {
	Title      string `json:"title" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
	Site       string `json:"site"`
	Username   string `json:"username"`
	LoginEmail string `json:"login_email"`
	Category   string `json:"category"`
	Notes      string `json:"notes"`
}

func (s *Server) createRecord(c *gin.Context) {
	var req createRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()

	record := &models.Record{
		Title:      req.Title,
		Secret:     req.Secret,
		Site:       req.Site,
		Username:   req.Username,
		LoginEmail: req.LoginEmail,
		Category:   req.Category,
		Notes:      req.Notes,
	}

	created, err := s.records.Create(ctx, currentUserID(c), record)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "record added successfully", "record": created})
}

func (s *Server) getRecord(c *gin.Context) {
	ctx := c.Request.Context()

	record, err := s.records.Get(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

type updateRecordRequest struct {
	Secret string `json:"secret" binding:"required"`
}

func (s *Server) updateRecord(c *gin.Context) {
	var req updateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if err := s.records.UpdateSecret(ctx, currentUserID(c), c.Param("id"), req.Secret); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "record updated successfully"})
}

func (s *Server) deleteRecord(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.records.Delete(ctx, currentUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "record deleted successfully"})
}
