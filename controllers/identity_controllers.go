package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyzrestro/food-billing-app/utils"
)

type IdentityController struct{}

func NewIdentityController() *IdentityController {
	return &IdentityController{}
}

// Me -> GET /api/me
// Decodes the name/email pair from the Bearer identity token. The token is
// issued and verified by the external identity provider; the server only
// decodes it, mirroring what the browser does after sign-in.
func (ic *IdentityController) Me(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("missing identity token"))
		return
	}

	identity, err := utils.DecodeIdentityToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Signed-in identity", identity)
}
