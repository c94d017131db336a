package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/finpercent/finpercent/internal/rest"
	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid         string      `json:"uid"`
	Username    string      `json:"username"`
	Email       string      `json:"email,omitempty"`
	DisplayName string      `json:"displayName"`
	Password    string      `json:"password,omitempty"`
	Settings    SettingsDTO `json:"settings"`
}

type SettingsDTO struct {
	ActiveMethod string `json:"activeMethod"`
	TaxRegime    string `json:"taxRegime"`
}

type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

// CreateUser godoc
// @Summary Create a new user
// @Description Register a new user in the system
// @Tags User
// @Accept json
// @Produce json
// @Param user body UserDTO true "User"
// @Success 201 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 409 {object} rest.ErrorResponse "Username taken"
// @Router /api/user [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating user")

	var user UserDTO
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Tracef("Creating new user: %s", user.Username)

	if len(user.Username) == 0 {
		rest.WriteError(w, http.StatusBadRequest, "Username is required", "")
		return
	}

	if len(user.DisplayName) == 0 {
		rest.WriteError(w, http.StatusBadRequest, "Display name is required", "")
		return
	}

	createdUser, err := h.userService.CreateUser(r.Context(), dtoToUser(user), user.Password)
	if err != nil {
		if errors.Is(err, ErrUserDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid user data", err.Error())
			return
		}
		if errors.Is(err, ErrUsernameTaken) {
			rest.WriteError(w, http.StatusConflict, "Username is already taken", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Tracef("Created user: %d", createdUser.Id)

	rest.WriteJSON(w, http.StatusCreated, UserToDTO(&createdUser))
}

// Login godoc
// @Summary Log in
// @Description Exchange a username and password for a bearer token
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body LoginRequestDTO true "Credentials"
// @Success 200 {object} LoginResponseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 401 {object} rest.ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log.Debug("Logging in")

	var credentials LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		rest.WriteError(w, http.StatusBadRequest, "Username and password are required", "")
		return
	}

	result, err := h.userService.Login(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			rest.WriteError(w, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, LoginResponseDTO{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      UserToDTO(&result.User),
	})
}

// CurrentUser godoc
// @Summary Get current user
// @Description Retrieve the currently authenticated user's information
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 403 {string} string "User not found"
// @Failure 404 {string} string "User Not Found"
// @Router /api/user/current [get]
// @Security XUserId
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting current user")

	currentUser, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, UserToDTO(&currentUser))
}

// UpdateUser godoc
// @Summary Update current user
// @Description Update the display name, email and settings of the current user
// @Tags User
// @Accept json
// @Produce json
// @Param user body UserDTO true "User"
// @Success 200 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 403 {string} string "User not found"
// @Router /api/user/current [put]
// @Security XUserId
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Updating user")

	var user UserDTO
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	if len(user.DisplayName) == 0 {
		rest.WriteError(w, http.StatusBadRequest, "Display name is required", "")
		return
	}

	updatedUser, err := h.userService.UpdateUser(r.Context(), dtoToUser(user))
	if err != nil {
		if errors.Is(err, ErrUserDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid user data", err.Error())
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			rest.WriteError(w, http.StatusNotFound, "User not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("Updated user: %d", updatedUser.Id)

	rest.WriteJSON(w, http.StatusOK, UserToDTO(&updatedUser))
}

// IsUsernameAvailable godoc
// @Summary Check username availability
// @Description Check if a username is available for registration
// @Tags User
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} object{available=bool}
// @Failure 400 {object} rest.ErrorResponse "Username is required"
// @Router /api/user/name-availability [get]
func (h *Handler) IsUsernameAvailable(w http.ResponseWriter, r *http.Request) {
	log.Trace("Checking if username is available")

	username := r.URL.Query().Get("username")
	if len(username) == 0 {
		rest.WriteError(w, http.StatusBadRequest, "Username is required", "")
		return
	}

	isAvailable, err := h.userService.IsUsernameAvailable(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, map[string]bool{"available": isAvailable})
}

// GetAvailableUsers godoc
// @Summary Get all users
// @Description Retrieve a list of all registered users
// @Tags User
// @Produce json
// @Success 200 {array} UserDTO
// @Router /api/user [get]
func (h *Handler) GetAvailableUsers(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting available users")

	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	usersDTO := make([]UserDTO, 0, len(users))
	for _, user := range users {
		usersDTO = append(usersDTO, UserToDTO(&user))
	}
	rest.WriteJSON(w, http.StatusOK, usersDTO)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user by UID
// @Tags User
// @Param userUid path string true "User UID"
// @Success 204 "No Content"
// @Failure 404 {object} rest.ErrorResponse "User not found"
// @Router /api/user/{userUid} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Deleting user")

	userUid := mux.Vars(r)["userUid"]
	user, err := h.userService.GetUserByUid(r.Context(), userUid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			rest.WriteError(w, http.StatusNotFound, "User not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debug("Deleting user with id: ", user.Id)
	err = h.userService.DeleteUser(r.Context(), user.Id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func UserToDTO(user *User) UserDTO {
	return UserDTO{
		Uid:         user.Uid,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Settings: SettingsDTO{
			ActiveMethod: string(user.Settings.ActiveMethod),
			TaxRegime:    string(user.Settings.TaxRegime),
		},
	}
}

func dtoToUser(userDTO UserDTO) User {
	return User{
		Uid:         userDTO.Uid,
		Username:    userDTO.Username,
		Email:       userDTO.Email,
		DisplayName: userDTO.DisplayName,
		Settings: Settings{
			ActiveMethod: allocation.Method(userDTO.Settings.ActiveMethod),
			TaxRegime:    tax.Regime(userDTO.Settings.TaxRegime),
		},
	}
}
