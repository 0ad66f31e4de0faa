package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techhive/userdir/internal/logger"
	"github.com/techhive/userdir/internal/model"
)

// UserDirectory defines the store operations the HTTP layer consumes.
type UserDirectory interface {
	Get(id int64) (model.User, error)
	List() []model.StoredUser
	Create(user model.User) (int64, error)
	Update(id int64, user model.User) (model.User, error)
	Delete(id int64) error
}

// ErrorResponse is the body shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Users handles the /users CRUD endpoints.
type Users struct {
	directory UserDirectory
	logger    *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(directory UserDirectory, logger *logger.Logger) *Users {
	return &Users{
		directory: directory,
		logger:    logger,
	}
}

// List returns all stored users
//
//	@Summary		List users
//	@Description	Returns every stored user with its id, ordered by id
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		model.StoredUser	"Stored users"
//	@Failure		401	{object}	handler.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/users [get]
func (h *Users) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.List())
}

// Get returns a single user by id
//
//	@Summary		Get user by ID
//	@Description	Returns the user stored under the given id
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int					true	"User ID"
//	@Success		200	{object}	model.StoredUser	"Stored user"
//	@Failure		401	{object}	handler.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	handler.ErrorResponse	"Unknown id"
//	@Security		BearerAuth
//	@Router			/users/{id} [get]
func (h *Users) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	user, err := h.directory.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StoredUser{ID: id, User: user})
}

// Create stores a new user
//
//	@Summary		Create user
//	@Description	Validates the candidate, enforces email uniqueness and assigns the next id
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		model.User			true	"Candidate user"
//	@Success		201		{object}	model.StoredUser	"Created user"
//	@Header			201		{string}	Location			"Path of the created user"
//	@Failure		400		{object}	handler.ErrorResponse	"Validation failure or duplicate email"
//	@Failure		401		{object}	handler.ErrorResponse	"Missing or invalid token"
//	@Failure		500		{object}	handler.ErrorResponse	"Record insert failed"
//	@Security		BearerAuth
//	@Router			/users [post]
func (h *Users) Create(c *gin.Context) {
	var u model.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Request body must be a valid user object."})
		return
	}
	h.logger.Debug("Users handler: processing create request", "email", u.Email)

	id, err := h.directory.Create(u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/users/%d", id))
	c.JSON(http.StatusCreated, model.StoredUser{ID: id, User: u})
}

// Update replaces the user stored under an id
//
//	@Summary		Update user
//	@Description	Validates the candidate and replaces the record, re-pointing the email index if the address changed
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"User ID"
//	@Param			user	body		model.User			true	"Replacement user"
//	@Success		200		{object}	model.StoredUser	"Updated user"
//	@Failure		400		{object}	handler.ErrorResponse	"Validation failure or duplicate email"
//	@Failure		401		{object}	handler.ErrorResponse	"Missing or invalid token"
//	@Failure		404		{object}	handler.ErrorResponse	"Unknown id"
//	@Security		BearerAuth
//	@Router			/users/{id} [put]
func (h *Users) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var u model.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Request body must be a valid user object."})
		return
	}
	h.logger.Debug("Users handler: processing update request", "id", id)

	updated, err := h.directory.Update(id, u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StoredUser{ID: id, User: updated})
}

// Delete removes the user stored under an id
//
//	@Summary		Delete user
//	@Description	Removes the record and its email index entry together
//	@Tags			users
//	@Param			id	path	int	true	"User ID"
//	@Success		204	"Removed"
//	@Failure		401	{object}	handler.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	handler.ErrorResponse	"Unknown id"
//	@Security		BearerAuth
//	@Router			/users/{id} [delete]
func (h *Users) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	if err := h.directory.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// userID parses the id path parameter. A non-integer id behaves like a
// missing record, matching the integer route constraint of the API.
func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found."})
		return 0, false
	}
	return id, true
}
