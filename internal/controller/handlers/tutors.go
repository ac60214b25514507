package handlers

import (
	"net/http"

	"github.com/Haedeel-Basel/My-Tutor/internal/catalog"
	"github.com/gin-gonic/gin"
)

// ListSubjects отдаёт список предметов для фильтра каталога
func (h *Handler) ListSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subjects": catalog.Subjects})
}

// ListTutors отдаёт объединённый каталог с фильтром по предмету
// и поисковой строке.
func (h *Handler) ListTutors(c *gin.Context) {
	subject := c.DefaultQuery("subject", catalog.SubjectAll)
	search := c.Query("q")

	tutors := h.directory.List(c.Request.Context(), subject, search)
	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

// GetTutor отдаёт одного репетитора по id
func (h *Handler) GetTutor(c *gin.Context) {
	tutor, err := h.resolver.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tutor)
}
