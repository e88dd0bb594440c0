package v1

import (
	"net/http"

	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/response"
	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(v1 *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	v1.GET("/projects", handler.List)
}

// List godoc
// @Summary      List portfolio projects
// @Description  Filter by category; "all" or no filter returns every project.
// @Tags         projects
// @Produce      json
// @Param        filter  query     string  false  "Category"
// @Success      200     {object}  response.Response{data=[]domain.Project}
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}
