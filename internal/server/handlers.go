package server

import (
	"github.com/gin-gonic/gin"

	"github.com/veridia/identity/api"
	"github.com/veridia/identity/internal/access"
	"github.com/veridia/identity/internal/server/redis"
)

type API struct {
	server *Server
}

func (a *API) Signup(c *gin.Context, r *api.SignupRequest) (*api.User, error) {
	user, err := access.CreateUser(getDB(c), r.Email, r.Password)
	if err != nil {
		return nil, err
	}

	return user.ToAPI(), nil
}

func (a *API) Login(c *gin.Context, r *api.LoginRequest) (*api.LoginResponse, error) {
	if err := redis.LoginOK(a.server.redis, r.Email); err != nil {
		return nil, err
	}

	user, token, expires, err := access.LoginWithPasswordCredential(getDB(c), r.Email, r.Password, a.server.options.SessionDuration)
	if err != nil {
		redis.LoginBad(a.server.redis, r.Email, 10)
		return nil, err
	}

	redis.LoginGood(a.server.redis, r.Email)

	return &api.LoginResponse{
		UserID:  user.ID,
		Name:    user.Name,
		Token:   token,
		Expires: expires,
	}, nil
}
